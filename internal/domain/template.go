package domain

// Template describes a labeling template that classifications may reference.
type Template struct {
	TemplateID   uint   `gorm:"primaryKey;column:template_id" json:"template_id"`
	TemplateName string `gorm:"size:100;not null;uniqueIndex" json:"template_name"`
	Description  string `gorm:"size:250" json:"description"`
	Version      string `gorm:"size:20" json:"version"`
	BodyFormat   string `gorm:"size:50" json:"body_format"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
	Audit
}

func (Template) TableName() string { return "pdc_templates" }

// CursorValue exposes sortable column values for cursor-token construction.
func (t Template) CursorValue(column string) (string, bool) {
	switch column {
	case "template_id":
		return cursorUint(t.TemplateID)
	case "template_name":
		return cursorString(t.TemplateName)
	case "version":
		return cursorString(t.Version)
	case "created_at":
		return cursorTime(t.CreatedAt)
	}
	return "", false
}
