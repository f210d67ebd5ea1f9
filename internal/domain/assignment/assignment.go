package assignment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Method tags how an assignment was made. Closed set — the store layer
// rejects anything else via a CHECK constraint.
type Method string

const (
	MethodAuto   Method = "auto"
	MethodManual Method = "manual"
)

func (m Method) Valid() bool {
	return m == MethodAuto || m == MethodManual
}

// SystemActorID is the well-known actor recorded on audit entries produced by
// scheduled runs, as opposed to an authenticated admin's id.
var SystemActorID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

var (
	ErrCallerNotFound   = errors.New("caller not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAlreadyAssigned  = errors.New("caller already assigned")
)

// LogEntry is one immutable audit record: who assigned what, when, and how.
// Created exactly once per successful commit; deleted only by cascade when
// its caller is deleted.
type LogEntry struct {
	ID         uuid.UUID `json:"id"`
	CallerID   uuid.UUID `json:"caller_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	Method     Method    `json:"method"`
	AssignedAt time.Time `json:"assigned_at"`
}

type LogFilters struct {
	CallerID   *uuid.UUID
	EmployeeID *uuid.UUID
	Method     *Method
	Limit      int
}
