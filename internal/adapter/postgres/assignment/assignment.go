package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
)

const foreignKeyViolation = "23503"

// Repository implements the shared assignment commit primitive and the audit
// log read surface.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// AssignCallerToEmployee moves one caller to one employee and appends one
// audit entry, as a single transaction.
//
// The update is conditional on assigned_to still being NULL — an atomic
// check-and-set, not a read-then-write. Zero rows affected is resolved into
// ErrCallerNotFound or ErrAlreadyAssigned with a follow-up existence probe
// inside the same transaction; either way the transaction rolls back and no
// partial state is visible.
func (r *Repository) AssignCallerToEmployee(ctx context.Context, callerID, employeeID, actorID uuid.UUID, method domainassignment.Method) error {
	if !method.Valid() {
		return fmt.Errorf("invalid assignment method %q", method)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning assignment transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	tag, err := tx.Exec(ctx, `
		UPDATE callers SET assigned_to = $1, assigned_at = $2
		WHERE id = $3 AND assigned_to IS NULL`,
		employeeID, now, callerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domainassignment.ErrEmployeeNotFound
		}
		return fmt.Errorf("assigning caller %s: %w", callerID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM callers WHERE id = $1)`, callerID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("probing caller %s: %w", callerID, err)
		}
		if !exists {
			return domainassignment.ErrCallerNotFound
		}
		return domainassignment.ErrAlreadyAssigned
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO assignment_log (id, caller_id, employee_id, actor_id, method, assigned_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		uuid.New(), callerID, employeeID, actorID, method, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domainassignment.ErrEmployeeNotFound
		}
		return fmt.Errorf("appending assignment log for caller %s: %w", callerID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing assignment of caller %s: %w", callerID, err)
	}
	return nil
}

func (r *Repository) ListLog(ctx context.Context, filters domainassignment.LogFilters) ([]domainassignment.LogEntry, error) {
	query := `
		SELECT id, caller_id, employee_id, actor_id, method, assigned_at
		FROM assignment_log WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.CallerID != nil {
		query += fmt.Sprintf(" AND caller_id = $%d", argIdx)
		args = append(args, *filters.CallerID)
		argIdx++
	}
	if filters.EmployeeID != nil {
		query += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filters.EmployeeID)
		argIdx++
	}
	if filters.Method != nil {
		query += fmt.Sprintf(" AND method = $%d", argIdx)
		args = append(args, string(*filters.Method))
		argIdx++
	}

	query += " ORDER BY assigned_at DESC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filters.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assignment log: %w", err)
	}
	defer rows.Close()

	return scanLogEntries(rows)
}

func scanLogEntries(rows pgx.Rows) ([]domainassignment.LogEntry, error) {
	var entries []domainassignment.LogEntry
	for rows.Next() {
		var e domainassignment.LogEntry
		if err := rows.Scan(
			&e.ID, &e.CallerID, &e.EmployeeID, &e.ActorID, &e.Method, &e.AssignedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning assignment log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignment log rows: %w", err)
	}
	return entries, nil
}
