package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Service is the business logic contract for lookup vocabularies.
type Service interface {
	CreateType(ctx context.Context, req CreateTypeRequest) (*domain.LookupType, error)
	GetType(ctx context.Context, lookupType string) (*domain.LookupType, error)
	ListTypes(ctx context.Context) ([]domain.LookupType, error)
	UpdateType(ctx context.Context, lookupType string, req UpdateTypeRequest) (*domain.LookupType, error)
	DeleteType(ctx context.Context, lookupType string) error

	CreateCode(ctx context.Context, req CreateCodeRequest) (*domain.LookupCode, error)
	GetCode(ctx context.Context, lookupType, code string) (*domain.LookupCode, error)
	ListCodes(ctx context.Context, req query.PageRequest) (*query.Result[domain.LookupCode], error)
	UpdateCode(ctx context.Context, lookupType, code string, req UpdateCodeRequest) (*domain.LookupCode, error)
	DeleteCode(ctx context.Context, lookupType, code string) error

	BatchGetCodes(ctx context.Context, req BatchGetRequest) (map[string][]domain.LookupCode, error)
	BatchUpsertCodes(ctx context.Context, req BatchUpsertRequest) (int, error)

	Summary(ctx context.Context) (*Summary, error)
}

// service implements Service.
type service struct {
	repo Repository
}

// NewService creates a Service with the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateType registers a new vocabulary.
func (s *service) CreateType(ctx context.Context, req CreateTypeRequest) (*domain.LookupType, error) {
	t := &domain.LookupType{
		LookupType:  normalizeKey(req.LookupType),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Description: req.Description,
		IsActive:    true,
	}
	t.CreatedBy = strings.TrimSpace(req.CreatedBy)

	if t.LookupType == "" || t.DisplayName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "lookup_type and display_name are required", nil)
	}

	if err := s.repo.CreateType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetType retrieves a vocabulary by key.
func (s *service) GetType(ctx context.Context, lookupType string) (*domain.LookupType, error) {
	return s.repo.GetType(ctx, normalizeKey(lookupType))
}

// ListTypes returns all vocabularies.
func (s *service) ListTypes(ctx context.Context) ([]domain.LookupType, error) {
	return s.repo.ListTypes(ctx)
}

// UpdateType applies the provided fields to an existing vocabulary.
func (s *service) UpdateType(ctx context.Context, lookupType string, req UpdateTypeRequest) (*domain.LookupType, error) {
	t, err := s.repo.GetType(ctx, normalizeKey(lookupType))
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "display_name must not be blank", nil)
		}
		t.DisplayName = name
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	t.Touch(strings.TrimSpace(req.ModifiedBy))

	if err := s.repo.UpdateType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteType removes a vocabulary unless codes still belong to it.
func (s *service) DeleteType(ctx context.Context, lookupType string) error {
	key := normalizeKey(lookupType)
	if _, err := s.repo.GetType(ctx, key); err != nil {
		return err
	}

	count, err := s.repo.CodeCount(ctx, key)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewAppError(domain.CodeConflict,
			fmt.Sprintf("lookup type still holds %d codes", count), nil)
	}

	return s.repo.DeleteType(ctx, key)
}

// CreateCode adds a code to an existing vocabulary.
func (s *service) CreateCode(ctx context.Context, req CreateCodeRequest) (*domain.LookupCode, error) {
	key := normalizeKey(req.LookupType)
	if _, err := s.repo.GetType(ctx, key); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "unknown lookup_type", nil)
		}
		return nil, err
	}

	c := &domain.LookupCode{
		LookupType:  key,
		LookupCode:  normalizeKey(req.LookupCode),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	c.CreatedBy = strings.TrimSpace(req.CreatedBy)

	if c.LookupCode == "" || c.DisplayName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "lookup_code and display_name are required", nil)
	}

	if err := s.repo.CreateCode(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCode retrieves a code by its composite key.
func (s *service) GetCode(ctx context.Context, lookupType, code string) (*domain.LookupCode, error) {
	return s.repo.GetCode(ctx, normalizeKey(lookupType), normalizeKey(code))
}

// ListCodes returns a paginated code page.
func (s *service) ListCodes(ctx context.Context, req query.PageRequest) (*query.Result[domain.LookupCode], error) {
	return s.repo.ListCodes(ctx, req)
}

// UpdateCode applies the provided fields to an existing code.
func (s *service) UpdateCode(ctx context.Context, lookupType, code string, req UpdateCodeRequest) (*domain.LookupCode, error) {
	c, err := s.repo.GetCode(ctx, normalizeKey(lookupType), normalizeKey(code))
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "display_name must not be blank", nil)
		}
		c.DisplayName = name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	c.Touch(strings.TrimSpace(req.ModifiedBy))

	if err := s.repo.UpdateCode(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCode removes a code by its composite key.
func (s *service) DeleteCode(ctx context.Context, lookupType, code string) error {
	return s.repo.DeleteCode(ctx, normalizeKey(lookupType), normalizeKey(code))
}

// BatchGetCodes returns the active codes of several vocabularies, grouped by
// type, from a single query.
func (s *service) BatchGetCodes(ctx context.Context, req BatchGetRequest) (map[string][]domain.LookupCode, error) {
	keys := make([]string, 0, len(req.LookupTypes))
	seen := make(map[string]bool, len(req.LookupTypes))
	for _, t := range req.LookupTypes {
		key := normalizeKey(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "no valid lookup types given", nil)
	}
	return s.repo.BatchGetCodes(ctx, keys)
}

// BatchUpsertCodes inserts or updates the given codes in one transaction and
// returns how many entries were processed.
func (s *service) BatchUpsertCodes(ctx context.Context, req BatchUpsertRequest) (int, error) {
	by := strings.TrimSpace(req.ModifiedBy)

	codes := make([]domain.LookupCode, 0, len(req.Codes))
	for _, e := range req.Codes {
		c := domain.LookupCode{
			LookupType:  normalizeKey(e.LookupType),
			LookupCode:  normalizeKey(e.LookupCode),
			DisplayName: strings.TrimSpace(e.DisplayName),
			Description: e.Description,
			SortOrder:   e.SortOrder,
			IsActive:    true,
		}
		if e.IsActive != nil {
			c.IsActive = *e.IsActive
		}
		if c.LookupType == "" || c.LookupCode == "" || c.DisplayName == "" {
			return 0, domain.NewAppError(domain.CodeValidation,
				"every code needs lookup_type, lookup_code, and display_name", nil)
		}
		c.CreatedBy = by
		c.Touch(by)
		codes = append(codes, c)
	}

	if err := s.repo.BatchUpsertCodes(ctx, codes); err != nil {
		return 0, err
	}
	return len(codes), nil
}

// Summary returns vocabulary statistics.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	return s.repo.Summary(ctx)
}

// normalizeKey canonicalizes vocabulary keys: trimmed, lower-case.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
