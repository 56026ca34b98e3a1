package organization

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// subEntityLevel marks the hierarchy rows that sit under a stream.
const subEntityLevel = "subentity"

// Service is the business logic contract for organizations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Organization, error)
	Get(ctx context.Context, id uint) (*domain.Organization, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Organization], error)
	Update(ctx context.Context, id uint, req UpdateRequest) (*domain.Organization, error)
	Delete(ctx context.Context, id uint) error
	StreamBusinessUnit(ctx context.Context, id uint) (*StreamBusinessUnit, error)
	Hierarchy(ctx context.Context, orgLevel string) ([]HierarchyEntry, error)
}

// service implements Service.
type service struct {
	repo Repository
}

// NewService creates a Service with the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create builds an organization from validated input and persists it. A
// referenced parent must exist.
func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Organization, error) {
	o := &domain.Organization{
		OrganizationName:     strings.TrimSpace(req.OrganizationName),
		OrganizationCode:     strings.TrimSpace(req.OrganizationCode),
		Description:          req.Description,
		ParentOrganizationID: req.ParentOrganizationID,
		IsActive:             true,
	}
	o.CreatedBy = strings.TrimSpace(req.CreatedBy)

	if o.OrganizationName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "organization_name is required", nil)
	}
	if req.ParentOrganizationID != nil {
		if _, err := s.repo.GetByID(ctx, *req.ParentOrganizationID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation,
					fmt.Sprintf("parent organization %d does not exist", *req.ParentOrganizationID), nil)
			}
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Get retrieves an organization by ID.
func (s *service) Get(ctx context.Context, id uint) (*domain.Organization, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated organization page.
func (s *service) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Organization], error) {
	return s.repo.List(ctx, req)
}

// Update applies the provided fields to an existing organization.
func (s *service) Update(ctx context.Context, id uint, req UpdateRequest) (*domain.Organization, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OrganizationName != nil {
		name := strings.TrimSpace(*req.OrganizationName)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "organization_name must not be blank", nil)
		}
		o.OrganizationName = name
	}
	if req.OrganizationCode != nil {
		o.OrganizationCode = strings.TrimSpace(*req.OrganizationCode)
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.ParentOrganizationID != nil {
		if *req.ParentOrganizationID == id {
			return nil, domain.NewAppError(domain.CodeValidation, "an organization cannot be its own parent", nil)
		}
		if _, err := s.repo.GetByID(ctx, *req.ParentOrganizationID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation,
					fmt.Sprintf("parent organization %d does not exist", *req.ParentOrganizationID), nil)
			}
			return nil, err
		}
		o.ParentOrganizationID = req.ParentOrganizationID
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}
	o.Touch(strings.TrimSpace(req.ModifiedBy))

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes an organization unless child units or classifications still
// reference it.
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	children, err := s.repo.ChildCount(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.NewAppError(domain.CodeConflict,
			fmt.Sprintf("organization has %d child organizations", children), nil)
	}

	usage, err := s.repo.UsageCount(ctx, id)
	if err != nil {
		return err
	}
	if usage > 0 {
		return domain.NewAppError(domain.CodeConflict,
			fmt.Sprintf("organization is referenced by %d classifications", usage), nil)
	}

	return s.repo.Delete(ctx, id)
}

// StreamBusinessUnit resolves the stream and business-unit names of one
// organization. A root unit is its own stream; a child unit's stream is its
// parent and the unit itself is the business unit.
func (s *service) StreamBusinessUnit(ctx context.Context, id uint) (*StreamBusinessUnit, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.ParentOrganizationID == nil {
		return &StreamBusinessUnit{Stream: &o.OrganizationName}, nil
	}

	out := &StreamBusinessUnit{BusinessUnit: &o.OrganizationName}
	parent, err := s.repo.GetByID(ctx, *o.ParentOrganizationID)
	if err != nil {
		if domain.IsNotFound(err) {
			// Dangling parent reference: the business unit is still known.
			return out, nil
		}
		return nil, err
	}
	out.Stream = &parent.OrganizationName
	return out, nil
}

// Hierarchy returns the flattened organization tree ordered by level,
// optionally restricted to one org level, with stream and business-unit
// names resolved for sub-entity rows.
func (s *service) Hierarchy(ctx context.Context, orgLevel string) ([]HierarchyEntry, error) {
	rows, err := s.repo.Hierarchy(ctx)
	if err != nil {
		return nil, err
	}

	idToName := make(map[uint]string, len(rows))
	for _, row := range rows {
		idToName[row.OrganizationID] = row.Name
	}

	target := strings.ToLower(strings.TrimSpace(orgLevel))
	entries := make([]HierarchyEntry, 0, len(rows))
	for _, row := range rows {
		if target != "" && strings.ToLower(row.OrgLevel) != target {
			continue
		}
		entry := HierarchyEntry{OrganizationHierarchy: row}
		if strings.ToLower(row.OrgLevel) == subEntityLevel {
			name := row.Name
			entry.BusinessUnit = &name
			if row.ParentOrganizationID != nil {
				if parentName, ok := idToName[*row.ParentOrganizationID]; ok {
					entry.Stream = &parentName
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
