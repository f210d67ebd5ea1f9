package caller

import (
	"context"

	"github.com/google/uuid"

	domaincaller "github.com/alanyang/caller-hub/internal/domain/caller"
)

//go:generate mockgen -source=caller.go -destination=../../mocks/caller.go -package=mocks

// Repository manages caller state in the database.
type Repository interface {
	Create(ctx context.Context, c domaincaller.Caller) (domaincaller.Caller, error)
	GetByID(ctx context.Context, id uuid.UUID) (domaincaller.Caller, error)
	List(ctx context.Context, filters domaincaller.ListFilters) ([]domaincaller.Caller, error)

	// ListUnassigned returns up to limit active, unassigned callers ordered by
	// created_at ascending — the FIFO pool the engine consumes.
	ListUnassigned(ctx context.Context, limit int) ([]domaincaller.Caller, error)

	// Complete marks the caller inactive and clears its assignment in one
	// statement. Zero rows affected means the caller does not exist.
	Complete(ctx context.Context, id uuid.UUID) error

	// Unassign explicitly returns the caller to the unassigned pool.
	Unassign(ctx context.Context, id uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// UnassignedReader is the narrow slice of Repository the engine needs.
type UnassignedReader interface {
	ListUnassigned(ctx context.Context, limit int) ([]domaincaller.Caller, error)
}
