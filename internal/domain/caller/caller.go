package caller

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateContact marks a create that collides with an existing caller's
// email or phone.
var ErrDuplicateContact = errors.New("caller with this email or phone already exists")

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Caller is one contact record representing outreach work to be done.
// A caller is owned by at most one employee at a time; assigned_to = NULL
// marks it unassigned and, while active, eligible for auto-assignment.
type Caller struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Status     Status     `json:"status"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	BatchID    *uuid.UUID `json:"batch_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func New(name, email, phone string, batchID *uuid.UUID) Caller {
	return Caller{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Status:    StatusActive,
		BatchID:   batchID,
		CreatedAt: time.Now().UTC(),
	}
}

// Assignable reports whether the caller is in the auto-assignment pool.
func (c Caller) Assignable() bool {
	return c.Status == StatusActive && c.AssignedTo == nil
}

type ListFilters struct {
	Status     *Status
	AssignedTo *uuid.UUID
	BatchID    *uuid.UUID
	Unassigned bool // WHERE assigned_to IS NULL
}
