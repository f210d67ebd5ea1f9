package assignment

import (
	"context"

	"github.com/google/uuid"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
)

//go:generate mockgen -source=assignment.go -destination=../../mocks/assignment.go -package=mocks

// Committer is the shared commit primitive behind both the automatic and the
// manual assignment paths.
//
// The implementation must set assigned_to only if it is still NULL at commit
// time (atomic check-and-set) and append exactly one audit entry in the same
// transaction. Zero rows affected is a domainassignment.ErrAlreadyAssigned,
// never a silent success — this CAS is the sole guard against two concurrent
// writers double-assigning the same caller.
type Committer interface {
	AssignCallerToEmployee(ctx context.Context, callerID, employeeID, actorID uuid.UUID, method domainassignment.Method) error
}

// LogReader exposes the append-only audit trail.
type LogReader interface {
	ListLog(ctx context.Context, filters domainassignment.LogFilters) ([]domainassignment.LogEntry, error)
}

// Repository is the full assignment store surface.
type Repository interface {
	Committer
	LogReader
}
