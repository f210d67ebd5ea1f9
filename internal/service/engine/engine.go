package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	"github.com/alanyang/caller-hub/internal/metrics"
	portassignment "github.com/alanyang/caller-hub/internal/port/assignment"
	portcaller "github.com/alanyang/caller-hub/internal/port/caller"
	portemployee "github.com/alanyang/caller-hub/internal/port/employee"
)

// DefaultBatchSize caps both the callers read per run and the quota one idle
// employee may receive in that run.
const DefaultBatchSize = 100

// Engine decides which unassigned callers go to which employees and commits
// each decision through the shared assignment primitive.
//
// It depends on two narrow read interfaces and the committer — never on the
// full repositories.
type Engine struct {
	employees portemployee.LoadReader
	callers   portcaller.UnassignedReader
	committer portassignment.Committer
	batchSize int
}

func New(employees portemployee.LoadReader, callers portcaller.UnassignedReader, committer portassignment.Committer, batchSize int) *Engine {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Engine{
		employees: employees,
		callers:   callers,
		committer: committer,
		batchSize: batchSize,
	}
}

// RunAutoAssignment distributes up to one batch of unassigned callers across
// idle employees and returns the number of successful commits.
//
// Policy: employees are considered in ascending-load-then-name order as read
// at the start of the run; only those idle at that snapshot receive work; each
// consumes callers FIFO up to the batch quota before the next is considered.
// The load snapshot is not re-read mid-run.
//
// Per-caller commit failures are logged and skipped — one bad row never blocks
// the batch. Only a read-phase store failure aborts the run.
func (e *Engine) RunAutoAssignment(ctx context.Context) (int, error) {
	start := time.Now()

	loads, err := e.employees.ListByLoad(ctx)
	if err != nil {
		metrics.AssignmentRunsTotal.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("reading employee loads: %w", err)
	}
	if len(loads) == 0 {
		slog.InfoContext(ctx, "auto-assignment: no employees, nothing to do")
		metrics.AssignmentRunsTotal.WithLabelValues("ok").Inc()
		return 0, nil
	}

	pool, err := e.callers.ListUnassigned(ctx, e.batchSize)
	if err != nil {
		metrics.AssignmentRunsTotal.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("reading unassigned callers: %w", err)
	}
	if len(pool) == 0 {
		slog.InfoContext(ctx, "auto-assignment: no unassigned callers, nothing to do")
		metrics.AssignmentRunsTotal.WithLabelValues("ok").Inc()
		return 0, nil
	}

	assigned := 0
	next := 0 // cursor into the FIFO pool

	for _, emp := range loads {
		if next >= len(pool) {
			break
		}
		if !emp.Idle() {
			// Partially-loaded employees receive nothing automatically.
			continue
		}

		quota := e.batchSize
		for quota > 0 && next < len(pool) {
			c := pool[next]
			next++
			quota--

			err := e.committer.AssignCallerToEmployee(ctx, c.ID, emp.ID, domainassignment.SystemActorID, domainassignment.MethodAuto)
			if err != nil {
				metrics.AssignmentFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				slog.WarnContext(ctx, "auto-assignment: commit skipped",
					"caller_id", c.ID, "employee_id", emp.ID, "error", err)
				continue
			}
			assigned++
			metrics.CallersAssignedTotal.WithLabelValues(string(domainassignment.MethodAuto)).Inc()
		}
	}

	metrics.AssignmentRunsTotal.WithLabelValues("ok").Inc()
	metrics.RunDurationSeconds.Observe(time.Since(start).Seconds())

	slog.InfoContext(ctx, "auto-assignment run complete",
		"assigned", assigned,
		"pool_size", len(pool),
		"duration", time.Since(start),
	)
	return assigned, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domainassignment.ErrAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, domainassignment.ErrCallerNotFound):
		return "caller_not_found"
	case errors.Is(err, domainassignment.ErrEmployeeNotFound):
		return "employee_not_found"
	default:
		return "store_failure"
	}
}
