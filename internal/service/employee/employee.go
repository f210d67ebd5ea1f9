package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainemployee "github.com/alanyang/caller-hub/internal/domain/employee"
	portemployee "github.com/alanyang/caller-hub/internal/port/employee"
)

// Service manages employee records. Assignment load is derived by the store;
// this service never mutates it.
type Service struct {
	repo portemployee.Repository
}

func NewService(repo portemployee.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name, email, phone string, role domainemployee.Role) (domainemployee.Employee, error) {
	if !role.Valid() {
		return domainemployee.Employee{}, fmt.Errorf("invalid role %q", role)
	}
	e := domainemployee.New(name, email, phone, role)
	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return domainemployee.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainemployee.Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainemployee.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, filters domainemployee.ListFilters) ([]domainemployee.Load, error) {
	loads, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return loads, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
