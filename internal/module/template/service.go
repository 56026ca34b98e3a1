package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Service is the business logic contract for templates.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Template, error)
	Get(ctx context.Context, id uint) (*domain.Template, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Template], error)
	Update(ctx context.Context, id uint, req UpdateRequest) (*domain.Template, error)
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

// Create builds a template from validated input and persists it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Template, error) {
	t := &domain.Template{
		TemplateName: strings.TrimSpace(req.TemplateName),
		Description:  req.Description,
		Version:      req.Version,
		BodyFormat:   req.BodyFormat,
		IsActive:     true,
	}
	t.CreatedBy = strings.TrimSpace(req.CreatedBy)

	if t.TemplateName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "template_name is required", nil)
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get retrieves a template by ID.
func (s *service) Get(ctx context.Context, id uint) (*domain.Template, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated template page.
func (s *service) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Template], error) {
	return s.repo.List(ctx, req)
}

// Update applies the provided fields to an existing template.
func (s *service) Update(ctx context.Context, id uint, req UpdateRequest) (*domain.Template, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TemplateName != nil {
		name := strings.TrimSpace(*req.TemplateName)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "template_name must not be blank", nil)
		}
		t.TemplateName = name
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Version != nil {
		t.Version = *req.Version
	}
	if req.BodyFormat != nil {
		t.BodyFormat = *req.BodyFormat
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	t.Touch(strings.TrimSpace(req.ModifiedBy))

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a template unless classifications still reference it.
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.UsageCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewAppError(domain.CodeConflict,
			fmt.Sprintf("template is referenced by %d classifications", count), nil)
	}

	return s.repo.Delete(ctx, id)
}
