package domain

import "time"

// Classification is the central catalog entity: one records class with its
// retention, sensitivity, and organizational attributes.
type Classification struct {
	ClassificationID    uint       `gorm:"primaryKey;column:classification_id" json:"classification_id"`
	Name                string     `gorm:"size:100;not null;index" json:"name"`
	Code                string     `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Description         string     `gorm:"size:250" json:"description"`
	Series              string     `gorm:"size:100" json:"series"`
	ClassificationLevel string     `gorm:"size:50;index" json:"classification_level"`
	SensitivityRating   *int       `json:"sensitivity_rating"`
	MediaType           string     `gorm:"size:50" json:"media_type"`
	FileType            string     `gorm:"size:20" json:"file_type"`
	Purpose             string     `gorm:"size:100;column:classification_purpose" json:"classification_purpose"`
	Citation            string     `gorm:"size:100" json:"citation"`
	DestructionMethod   string     `gorm:"size:50" json:"destruction_method"`
	LabelFormat         string     `gorm:"size:100" json:"label_format"`
	EffectiveDate       *time.Time `json:"effective_date"`
	RetentionPolicyID   uint       `gorm:"not null;index" json:"retention_policy_id"`
	TemplateID          *uint      `gorm:"index" json:"template_id"`
	OrganizationID      uint       `gorm:"not null;index" json:"organization_id"`
	RecordOwner         string     `gorm:"size:100" json:"record_owner"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	LastAccessedAt      *time.Time `json:"last_accessed_at"`
	LastAccessedBy      *string    `gorm:"size:100" json:"last_accessed_by"`
	Audit
	SoftDelete

	// Enrichment fields populated from related rows on read; not persisted.
	TemplateName  *string `gorm:"-" json:"template_name,omitempty"`
	RetentionCode *string `gorm:"-" json:"retention_code,omitempty"`
}

// TableName implements the GORM table naming convention override.
func (Classification) TableName() string { return "pdc_classifications" }

// CursorValue exposes sortable column values for cursor-token construction.
func (c Classification) CursorValue(column string) (string, bool) {
	switch column {
	case "classification_id":
		return cursorUint(c.ClassificationID)
	case "name":
		return cursorString(c.Name)
	case "code":
		return cursorString(c.Code)
	case "series":
		return cursorString(c.Series)
	case "classification_level":
		return cursorString(c.ClassificationLevel)
	case "sensitivity_rating":
		return cursorInt(c.SensitivityRating)
	case "media_type":
		return cursorString(c.MediaType)
	case "file_type":
		return cursorString(c.FileType)
	case "effective_date":
		return cursorTimePtr(c.EffectiveDate)
	case "created_at":
		return cursorTime(c.CreatedAt)
	case "modified_at":
		return cursorTimePtr(c.ModifiedAt)
	}
	return "", false
}
