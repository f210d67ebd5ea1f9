package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	"github.com/alanyang/caller-hub/internal/metrics"
	portassignment "github.com/alanyang/caller-hub/internal/port/assignment"
)

// Service is the manual assignment path. It shares the commit primitive with
// the engine, so both paths sit behind the same consistency contract.
type Service struct {
	repo portassignment.Repository
}

func NewService(repo portassignment.Repository) *Service {
	return &Service{repo: repo}
}

// Failure describes one caller that could not be assigned in a manual batch.
type Failure struct {
	CallerID uuid.UUID `json:"caller_id"`
	Reason   string    `json:"reason"`
}

// Summary is the per-batch result returned to the admin. Partial success is
// expected and useful — never all-or-nothing.
type Summary struct {
	Assigned int       `json:"assigned"`
	Failed   int       `json:"failed"`
	Failures []Failure `json:"failures,omitempty"`
}

// AssignManual commits one assignment per caller id with method=manual,
// collecting per-caller failures instead of aborting the batch.
func (s *Service) AssignManual(ctx context.Context, callerIDs []uuid.UUID, employeeID, actorID uuid.UUID) Summary {
	var summary Summary
	for _, callerID := range callerIDs {
		err := s.repo.AssignCallerToEmployee(ctx, callerID, employeeID, actorID, domainassignment.MethodManual)
		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{CallerID: callerID, Reason: err.Error()})
			slog.WarnContext(ctx, "manual assignment failed",
				"caller_id", callerID, "employee_id", employeeID, "actor_id", actorID, "error", err)
			continue
		}
		summary.Assigned++
		metrics.CallersAssignedTotal.WithLabelValues(string(domainassignment.MethodManual)).Inc()
	}
	return summary
}

func (s *Service) ListLog(ctx context.Context, filters domainassignment.LogFilters) ([]domainassignment.LogEntry, error) {
	entries, err := s.repo.ListLog(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list assignment log: %w", err)
	}
	return entries, nil
}
