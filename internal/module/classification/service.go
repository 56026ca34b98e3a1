package classification

import (
	"context"
	"strings"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Service is the business logic contract for classifications.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Classification, error)
	Get(ctx context.Context, id uint, includeDeleted bool) (*domain.Classification, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Classification], error)
	Update(ctx context.Context, id uint, req UpdateRequest) (*domain.Classification, error)
	SoftDelete(ctx context.Context, id uint, by string) error
	Restore(ctx context.Context, id uint, by string) error
	HardDelete(ctx context.Context, id uint) error
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

// Create builds a classification from validated input and persists it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Classification, error) {
	c := &domain.Classification{
		Name:                strings.TrimSpace(req.Name),
		Code:                strings.TrimSpace(req.Code),
		Description:         req.Description,
		Series:              req.Series,
		ClassificationLevel: req.ClassificationLevel,
		SensitivityRating:   req.SensitivityRating,
		MediaType:           req.MediaType,
		FileType:            req.FileType,
		Purpose:             req.Purpose,
		Citation:            req.Citation,
		DestructionMethod:   req.DestructionMethod,
		LabelFormat:         req.LabelFormat,
		EffectiveDate:       req.EffectiveDate,
		RetentionPolicyID:   req.RetentionPolicyID,
		TemplateID:          req.TemplateID,
		OrganizationID:      req.OrganizationID,
		RecordOwner:         req.RecordOwner,
		IsActive:            true,
	}
	c.CreatedBy = strings.TrimSpace(req.CreatedBy)

	if c.Name == "" || c.Code == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name and code are required", nil)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get retrieves a classification. Soft-deleted rows are hidden unless the
// caller opted in.
func (s *service) Get(ctx context.Context, id uint, includeDeleted bool) (*domain.Classification, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsDeleted && !includeDeleted {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List returns a paginated catalog page.
func (s *service) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Classification], error) {
	return s.repo.List(ctx, req)
}

// Update applies the provided fields to an existing classification. Deleted
// rows must be restored before they can change.
func (s *service) Update(ctx context.Context, id uint, req UpdateRequest) (*domain.Classification, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsDeleted {
		return nil, domain.NewAppError(domain.CodeConflict, "classification is deleted", nil)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		c.Name = name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Series != nil {
		c.Series = *req.Series
	}
	if req.ClassificationLevel != nil {
		c.ClassificationLevel = *req.ClassificationLevel
	}
	if req.SensitivityRating != nil {
		c.SensitivityRating = req.SensitivityRating
	}
	if req.MediaType != nil {
		c.MediaType = *req.MediaType
	}
	if req.FileType != nil {
		c.FileType = *req.FileType
	}
	if req.Purpose != nil {
		c.Purpose = *req.Purpose
	}
	if req.Citation != nil {
		c.Citation = *req.Citation
	}
	if req.DestructionMethod != nil {
		c.DestructionMethod = *req.DestructionMethod
	}
	if req.LabelFormat != nil {
		c.LabelFormat = *req.LabelFormat
	}
	if req.EffectiveDate != nil {
		c.EffectiveDate = req.EffectiveDate
	}
	if req.RetentionPolicyID != nil {
		c.RetentionPolicyID = *req.RetentionPolicyID
	}
	if req.TemplateID != nil {
		c.TemplateID = req.TemplateID
	}
	if req.RecordOwner != nil {
		c.RecordOwner = *req.RecordOwner
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	c.Touch(strings.TrimSpace(req.ModifiedBy))

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SoftDelete marks a classification as deleted. Deleting twice is a conflict.
func (s *service) SoftDelete(ctx context.Context, id uint, by string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.IsDeleted {
		return domain.NewAppError(domain.CodeConflict, "classification is already deleted", nil)
	}
	c.MarkDeleted(strings.TrimSpace(by))
	return s.repo.Update(ctx, c)
}

// Restore clears the deletion mark of a soft-deleted classification.
func (s *service) Restore(ctx context.Context, id uint, by string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !c.IsDeleted {
		return domain.NewAppError(domain.CodeConflict, "classification is not deleted", nil)
	}
	c.ClearDeleted()
	c.Touch(strings.TrimSpace(by))
	return s.repo.Update(ctx, c)
}

// HardDelete permanently removes a classification. Only soft-deleted rows may
// be purged.
func (s *service) HardDelete(ctx context.Context, id uint) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !c.IsDeleted {
		return domain.NewAppError(domain.CodeConflict, "classification must be deleted before it can be purged", nil)
	}
	return s.repo.HardDelete(ctx, id)
}

// Summary returns catalog-level statistics.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	return s.repo.Summary(ctx)
}

// DistinctValues returns the distinct values of a reference column.
func (s *service) DistinctValues(ctx context.Context, column string) ([]string, error) {
	return s.repo.DistinctValues(ctx, column)
}
