package caller

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	domaincaller "github.com/alanyang/caller-hub/internal/domain/caller"
	portcaller "github.com/alanyang/caller-hub/internal/port/caller"
)

// Service manages caller lifecycle: entry, bulk import, completion, deletion.
type Service struct {
	repo portcaller.Repository
}

func NewService(repo portcaller.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name, email, phone string) (domaincaller.Caller, error) {
	c := domaincaller.New(name, email, phone, nil)
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return domaincaller.Caller{}, fmt.Errorf("create caller: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domaincaller.Caller, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domaincaller.Caller{}, fmt.Errorf("get caller: %w", err)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, filters domaincaller.ListFilters) ([]domaincaller.Caller, error) {
	callers, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list callers: %w", err)
	}
	return callers, nil
}

// Complete marks the work item done: status inactive, assignment cleared.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Complete(ctx, id); err != nil {
		return fmt.Errorf("complete caller: %w", err)
	}
	return nil
}

// Unassign explicitly returns the caller to the auto-assignment pool. This is
// the only way back — completing or assigning never frees a caller implicitly.
func (s *Service) Unassign(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Unassign(ctx, id); err != nil {
		return fmt.Errorf("unassign caller: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete caller: %w", err)
	}
	return nil
}

// RowError describes one rejected CSV row.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResult summarises one bulk upload. All accepted rows share BatchID.
type ImportResult struct {
	BatchID  uuid.UUID  `json:"batch_id"`
	Imported int        `json:"imported"`
	Rejected int        `json:"rejected"`
	Errors   []RowError `json:"errors,omitempty"`
}

// ImportCSV reads rows of name,email,phone (header optional) and creates one
// caller per valid row, all tagged with a fresh batch id. Malformed rows are
// rejected and reported by file line; an I/O failure on the body itself aborts
// the import, since the same read error would repeat forever.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	batchID := uuid.New()
	result := ImportResult{BatchID: batchID}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return result, fmt.Errorf("reading import body: %w", err)
			}
			first = false
			result.Rejected++
			result.Errors = append(result.Errors, RowError{Line: parseErr.Line, Reason: err.Error()})
			continue
		}

		// File line of the record, accurate across quoted multi-line fields.
		line, _ := reader.FieldPos(0)
		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		name, email, phone, err := parseRow(record)
		if err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}

		c := domaincaller.New(name, email, phone, &batchID)
		if _, err := s.repo.Create(ctx, c); err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}
		result.Imported++
	}

	slog.InfoContext(ctx, "caller import complete",
		"batch_id", batchID, "imported", result.Imported, "rejected", result.Rejected)
	return result, nil
}

func parseRow(record []string) (name, email, phone string, err error) {
	if len(record) < 3 {
		return "", "", "", fmt.Errorf("expected 3 fields (name, email, phone), got %d", len(record))
	}
	name = strings.TrimSpace(record[0])
	email = strings.TrimSpace(record[1])
	phone = strings.TrimSpace(record[2])
	if name == "" {
		return "", "", "", fmt.Errorf("empty name")
	}
	if email == "" || !strings.Contains(email, "@") {
		return "", "", "", fmt.Errorf("invalid email %q", email)
	}
	if phone == "" {
		return "", "", "", fmt.Errorf("empty phone")
	}
	return name, email, phone, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name")
}
