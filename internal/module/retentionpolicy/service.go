package retentionpolicy

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Service is the business logic contract for retention policies.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.RetentionPolicy, error)
	Get(ctx context.Context, id uint) (*domain.RetentionPolicy, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.RetentionPolicy], error)
	Update(ctx context.Context, id uint, req UpdateRequest) (*domain.RetentionPolicy, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context) (*Summary, error)
	DistinctValues(ctx context.Context, column string) ([]string, error)
}

// service implements Service.
type service struct {
	repo Repository
}

// NewService creates a Service with the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create builds a retention policy from validated input and persists it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.RetentionPolicy, error) {
	p := &domain.RetentionPolicy{
		Name:                strings.TrimSpace(req.Name),
		RetentionCode:       strings.TrimSpace(req.RetentionCode),
		Description:         req.Description,
		RetentionType:       req.RetentionType,
		RetentionPeriodDays: req.RetentionPeriodDays,
		Jurisdiction:        req.Jurisdiction,
		LegalBasis:          req.LegalBasis,
		DispositionMethod:   req.DispositionMethod,
		PolicyOwner:         req.PolicyOwner,
		AuditRequired:       req.AuditRequired,
		ReviewFrequency:     req.ReviewFrequency,
		NextReviewDate:      req.NextReviewDate,
		IsActive:            true,
	}
	p.CreatedBy = strings.TrimSpace(req.CreatedBy)

	if p.Name == "" || p.RetentionCode == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name and retention_code are required", nil)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get retrieves a retention policy by ID.
func (s *service) Get(ctx context.Context, id uint) (*domain.RetentionPolicy, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated policy page.
func (s *service) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.RetentionPolicy], error) {
	return s.repo.List(ctx, req)
}

// Update applies the provided fields to an existing retention policy.
func (s *service) Update(ctx context.Context, id uint, req UpdateRequest) (*domain.RetentionPolicy, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		p.Name = name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.RetentionType != nil {
		p.RetentionType = *req.RetentionType
	}
	if req.RetentionPeriodDays != nil {
		p.RetentionPeriodDays = req.RetentionPeriodDays
	}
	if req.Jurisdiction != nil {
		p.Jurisdiction = *req.Jurisdiction
	}
	if req.LegalBasis != nil {
		p.LegalBasis = *req.LegalBasis
	}
	if req.DispositionMethod != nil {
		p.DispositionMethod = *req.DispositionMethod
	}
	if req.PolicyOwner != nil {
		p.PolicyOwner = *req.PolicyOwner
	}
	if req.AuditRequired != nil {
		p.AuditRequired = *req.AuditRequired
	}
	if req.ReviewFrequency != nil {
		p.ReviewFrequency = *req.ReviewFrequency
	}
	if req.NextReviewDate != nil {
		p.NextReviewDate = req.NextReviewDate
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.Touch(strings.TrimSpace(req.ModifiedBy))

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a retention policy unless classifications still reference
// it. A referenced policy is a conflict, not a deletion.
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
			fmt.Sprintf("retention policy is referenced by %d classifications", count), nil)
	}

	return s.repo.Delete(ctx, id)
}

// Summary returns policy-level statistics.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	return s.repo.Summary(ctx)
}

// DistinctValues returns the distinct values of a reference column.
func (s *service) DistinctValues(ctx context.Context, column string) ([]string, error) {
	return s.repo.DistinctValues(ctx, column)
}
