package domain

// Organization is an organizational unit that classifications belong to.
// Units form a two-level tree: a stream (no parent) contains business units.
type Organization struct {
	OrganizationID       uint   `gorm:"primaryKey;column:organization_id" json:"organization_id"`
	OrganizationName     string `gorm:"size:100;not null;index" json:"organization_name"`
	OrganizationCode     string `gorm:"size:50" json:"organization_code"`
	Description          string `gorm:"size:250" json:"description"`
	ParentOrganizationID *uint  `gorm:"index" json:"parent_organization_id"`
	IsActive             bool   `gorm:"not null;default:true" json:"is_active"`
	Audit
}

func (Organization) TableName() string { return "pdc_organizations" }

// CursorValue exposes sortable column values for cursor-token construction.
func (o Organization) CursorValue(column string) (string, bool) {
	switch column {
	case "organization_id":
		return cursorUint(o.OrganizationID)
	case "organization_name":
		return cursorString(o.OrganizationName)
	case "organization_code":
		return cursorString(o.OrganizationCode)
	case "created_at":
		return cursorTime(o.CreatedAt)
	}
	return "", false
}

// OrganizationHierarchy is a read-only flattened projection of the
// organization tree with a precomputed level and path. Production deployments
// back it with a database view; debug migrations create it as a plain table.
type OrganizationHierarchy struct {
	OrganizationID       uint   `gorm:"primaryKey;column:organization_id" json:"organization_id"`
	Name                 string `gorm:"size:100;not null" json:"name"`
	Code                 string `gorm:"size:50;not null" json:"code"`
	Description          string `gorm:"size:250" json:"description"`
	OrgLevel             string `gorm:"size:50;column:org_level" json:"org_level"`
	ParentOrganizationID *uint  `json:"parent_organization_id"`
	HierarchyPath        string `gorm:"size:250" json:"hierarchy_path"`
	Level                int    `json:"level"`
}

func (OrganizationHierarchy) TableName() string { return "pdc_org_hierarchy" }
