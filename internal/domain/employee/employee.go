package employee

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = errors.New("employee with this email already exists")

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// Employee is a worker eligible to receive callers. Admin accounts share the
// table but never appear in the engine's candidate list.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func New(name, email, phone string, role Role) Employee {
	return Employee{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// Load annotates an employee with its current number of active assigned
// callers. Computed by the store at read time; never persisted.
type Load struct {
	Employee
	ActiveCallerCount int `json:"active_caller_count"`
}

// Idle reports whether the employee qualifies for a new auto-assignment batch.
func (l Load) Idle() bool {
	return l.ActiveCallerCount == 0
}

type ListFilters struct {
	Role *Role
}
