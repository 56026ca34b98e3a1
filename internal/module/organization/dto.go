package organization

import "github.com/hbaskar/GC-PDC/internal/domain"

// CreateRequest represents the input for creating an organization.
type CreateRequest struct {
	OrganizationName     string `json:"organization_name" binding:"required,min=2,max=100"`
	OrganizationCode     string `json:"organization_code" binding:"max=50"`
	Description          string `json:"description" binding:"max=250"`
	ParentOrganizationID *uint  `json:"parent_organization_id"`
	CreatedBy            string `json:"created_by" binding:"required,max=100"`
}

// UpdateRequest represents the input for updating an organization.
type UpdateRequest struct {
	OrganizationName     *string `json:"organization_name" binding:"omitempty,min=2,max=100"`
	OrganizationCode     *string `json:"organization_code" binding:"omitempty,max=50"`
	Description          *string `json:"description" binding:"omitempty,max=250"`
	ParentOrganizationID *uint   `json:"parent_organization_id"`
	IsActive             *bool   `json:"is_active"`
	ModifiedBy           string  `json:"modified_by" binding:"required,max=100"`
}

// StreamBusinessUnit names the stream and business unit an organization
// belongs to. A root unit is its own stream and has no business unit; a
// child unit is the business unit of its parent stream.
type StreamBusinessUnit struct {
	Stream       *string `json:"stream"`
	BusinessUnit *string `json:"business_unit"`
}

// HierarchyEntry is one row of the flattened organization tree, enriched
// with the resolved stream and business-unit names for sub-entity rows.
type HierarchyEntry struct {
	domain.OrganizationHierarchy
	Stream       *string `json:"stream"`
	BusinessUnit *string `json:"business_unit"`
}
