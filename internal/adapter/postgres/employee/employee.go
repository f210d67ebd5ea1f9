package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	domainemployee "github.com/alanyang/caller-hub/internal/domain/employee"
)

const uniqueViolation = "23505"

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, e domainemployee.Employee) (domainemployee.Employee, error) {
	query := `
		INSERT INTO employees (id, name, email, phone, role, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, name, email, phone, role, created_at`

	var created domainemployee.Employee
	err := r.pool.QueryRow(ctx, query,
		e.ID, e.Name, e.Email, e.Phone, e.Role, e.CreatedAt,
	).Scan(&created.ID, &created.Name, &created.Email, &created.Phone, &created.Role, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainemployee.Employee{}, domainemployee.ErrDuplicateEmail
		}
		return domainemployee.Employee{}, fmt.Errorf("inserting employee: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainemployee.Employee, error) {
	query := `SELECT id, name, email, phone, role, created_at FROM employees WHERE id = $1`

	var e domainemployee.Employee
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Role, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainemployee.Employee{}, domainassignment.ErrEmployeeNotFound
		}
		return domainemployee.Employee{}, fmt.Errorf("querying employee: %w", err)
	}
	return e, nil
}

// List returns employees annotated with their active caller count — the shape
// both dashboards render.
func (r *Repository) List(ctx context.Context, filters domainemployee.ListFilters) ([]domainemployee.Load, error) {
	query := `
		SELECT e.id, e.name, e.email, e.phone, e.role, e.created_at,
			COUNT(c.id) FILTER (WHERE c.status = 'active') AS active_caller_count
		FROM employees e
		LEFT JOIN callers c ON c.assigned_to = e.id
		WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Role != nil {
		query += fmt.Sprintf(" AND e.role = $%d", argIdx)
		args = append(args, string(*filters.Role))
		argIdx++
	}

	query += " GROUP BY e.id ORDER BY e.name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	return scanLoads(rows)
}

// ListByLoad returns the engine's candidate list: non-admin employees ordered
// ascending by active caller count, then name for a deterministic tie-break.
func (r *Repository) ListByLoad(ctx context.Context) ([]domainemployee.Load, error) {
	query := `
		SELECT e.id, e.name, e.email, e.phone, e.role, e.created_at,
			COUNT(c.id) FILTER (WHERE c.status = 'active') AS active_caller_count
		FROM employees e
		LEFT JOIN callers c ON c.assigned_to = e.id
		WHERE e.role = 'employee'
		GROUP BY e.id
		ORDER BY active_caller_count, e.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees by load: %w", err)
	}
	defer rows.Close()

	return scanLoads(rows)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainassignment.ErrEmployeeNotFound
	}
	return nil
}

func scanLoads(rows pgx.Rows) ([]domainemployee.Load, error) {
	var loads []domainemployee.Load
	for rows.Next() {
		var l domainemployee.Load
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Email, &l.Phone, &l.Role, &l.CreatedAt,
			&l.ActiveCallerCount,
		); err != nil {
			return nil, fmt.Errorf("scanning employee row: %w", err)
		}
		loads = append(loads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}
	return loads, nil
}
