package library

import (
	"context"
	"strings"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Service is the business logic contract for libraries.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Library, error)
	Get(ctx context.Context, id uint) (*domain.Library, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Library], error)
	Update(ctx context.Context, id uint, req UpdateRequest) (*domain.Library, error)
	Delete(ctx context.Context, id uint) error
}

// service implements Service.
type service struct {
	repo Repository
}

// NewService creates a Service with the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create builds a library from validated input and persists it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Library, error) {
	l := &domain.Library{
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	l.CreatedBy = strings.TrimSpace(req.CreatedBy)

	if l.Code == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "code is required", nil)
	}
	if l.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get retrieves a library by ID.
func (s *service) Get(ctx context.Context, id uint) (*domain.Library, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated library page.
func (s *service) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Library], error) {
	return s.repo.List(ctx, req)
}

// Update applies the provided fields to an existing library.
func (s *service) Update(ctx context.Context, id uint, req UpdateRequest) (*domain.Library, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if code == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "code must not be blank", nil)
		}
		l.Code = code
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		l.Name = name
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	l.Touch(strings.TrimSpace(req.ModifiedBy))

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes a library by ID.
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
