package caller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	domaincaller "github.com/alanyang/caller-hub/internal/domain/caller"
)

const uniqueViolation = "23505"

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
	query := `
		INSERT INTO callers (id, name, email, phone, status, assigned_to, assigned_at, batch_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, name, email, phone, status, assigned_to, assigned_at, batch_id, created_at`

	var created domaincaller.Caller
	err := r.pool.QueryRow(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Status, c.AssignedTo, c.AssignedAt, c.BatchID, c.CreatedAt,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.Phone, &created.Status,
		&created.AssignedTo, &created.AssignedAt, &created.BatchID, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domaincaller.Caller{}, domaincaller.ErrDuplicateContact
		}
		return domaincaller.Caller{}, fmt.Errorf("inserting caller: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domaincaller.Caller, error) {
	query := `
		SELECT id, name, email, phone, status, assigned_to, assigned_at, batch_id, created_at
		FROM callers WHERE id = $1`

	var c domaincaller.Caller
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Status,
		&c.AssignedTo, &c.AssignedAt, &c.BatchID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domaincaller.Caller{}, domainassignment.ErrCallerNotFound
		}
		return domaincaller.Caller{}, fmt.Errorf("querying caller: %w", err)
	}
	return c, nil
}

func (r *Repository) List(ctx context.Context, filters domaincaller.ListFilters) ([]domaincaller.Caller, error) {
	query := `
		SELECT id, name, email, phone, status, assigned_to, assigned_at, batch_id, created_at
		FROM callers WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filters.Status))
		argIdx++
	}
	if filters.AssignedTo != nil {
		query += fmt.Sprintf(" AND assigned_to = $%d", argIdx)
		args = append(args, *filters.AssignedTo)
		argIdx++
	}
	if filters.BatchID != nil {
		query += fmt.Sprintf(" AND batch_id = $%d", argIdx)
		args = append(args, *filters.BatchID)
		argIdx++
	}
	if filters.Unassigned {
		query += " AND assigned_to IS NULL"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing callers: %w", err)
	}
	defer rows.Close()

	return scanCallers(rows)
}

// ListUnassigned returns the engine's FIFO pool: active, unassigned callers,
// oldest first, capped at limit.
func (r *Repository) ListUnassigned(ctx context.Context, limit int) ([]domaincaller.Caller, error) {
	query := `
		SELECT id, name, email, phone, status, assigned_to, assigned_at, batch_id, created_at
		FROM callers
		WHERE assigned_to IS NULL AND status = 'active'
		ORDER BY created_at
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing unassigned callers: %w", err)
	}
	defer rows.Close()

	return scanCallers(rows)
}

// Complete marks the caller inactive and clears its assignment — the terminal
// transition when an employee finishes the work item.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE callers SET status = 'inactive', assigned_to = NULL, assigned_at = NULL
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("completing caller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainassignment.ErrCallerNotFound
	}
	return nil
}

func (r *Repository) Unassign(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE callers SET assigned_to = NULL, assigned_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unassigning caller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainassignment.ErrCallerNotFound
	}
	return nil
}

// Delete removes the caller; its audit entries go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM callers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting caller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainassignment.ErrCallerNotFound
	}
	return nil
}

func scanCallers(rows pgx.Rows) ([]domaincaller.Caller, error) {
	var callers []domaincaller.Caller
	for rows.Next() {
		var c domaincaller.Caller
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Status,
			&c.AssignedTo, &c.AssignedAt, &c.BatchID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning caller row: %w", err)
		}
		callers = append(callers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating caller rows: %w", err)
	}
	return callers, nil
}
