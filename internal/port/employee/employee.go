package employee

import (
	"context"

	"github.com/google/uuid"

	domainemployee "github.com/alanyang/caller-hub/internal/domain/employee"
)

//go:generate mockgen -source=employee.go -destination=../../mocks/employee.go -package=mocks

// Repository manages employee records. The engine never writes employees —
// they are read-only inputs to assignment.
type Repository interface {
	Create(ctx context.Context, e domainemployee.Employee) (domainemployee.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainemployee.Employee, error)
	List(ctx context.Context, filters domainemployee.ListFilters) ([]domainemployee.Load, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByLoad returns all non-admin employees annotated with their active
	// caller count, ordered ascending by count then name so ties break
	// deterministically.
	ListByLoad(ctx context.Context) ([]domainemployee.Load, error)
}

// LoadReader is the narrow interface the engine depends on.
type LoadReader interface {
	ListByLoad(ctx context.Context) ([]domainemployee.Load, error)
}
