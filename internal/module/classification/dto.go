package classification

import "time"

// CreateRequest represents the input for creating a classification.
type CreateRequest struct {
	Name                string     `json:"name" binding:"required,min=2,max=100"`
	Code                string     `json:"code" binding:"required,min=2,max=50"`
	Description         string     `json:"description" binding:"max=250"`
	Series              string     `json:"series" binding:"max=100"`
	ClassificationLevel string     `json:"classification_level" binding:"max=50"`
	SensitivityRating   *int       `json:"sensitivity_rating" binding:"omitempty,min=0,max=10"`
	MediaType           string     `json:"media_type" binding:"max=50"`
	FileType            string     `json:"file_type" binding:"max=20"`
	Purpose             string     `json:"classification_purpose" binding:"max=100"`
	Citation            string     `json:"citation" binding:"max=100"`
	DestructionMethod   string     `json:"destruction_method" binding:"max=50"`
	LabelFormat         string     `json:"label_format" binding:"max=100"`
	EffectiveDate       *time.Time `json:"effective_date"`
	RetentionPolicyID   uint       `json:"retention_policy_id" binding:"required"`
	TemplateID          *uint      `json:"template_id"`
	OrganizationID      uint       `json:"organization_id" binding:"required"`
	RecordOwner         string     `json:"record_owner" binding:"max=100"`
	CreatedBy           string     `json:"created_by" binding:"required,max=100"`
}

// UpdateRequest represents the input for updating a classification. Pointer
// fields distinguish "leave unchanged" from "set to zero value".
type UpdateRequest struct {
	Name                *string    `json:"name" binding:"omitempty,min=2,max=100"`
	Description         *string    `json:"description" binding:"omitempty,max=250"`
	Series              *string    `json:"series" binding:"omitempty,max=100"`
	ClassificationLevel *string    `json:"classification_level" binding:"omitempty,max=50"`
	SensitivityRating   *int       `json:"sensitivity_rating" binding:"omitempty,min=0,max=10"`
	MediaType           *string    `json:"media_type" binding:"omitempty,max=50"`
	FileType            *string    `json:"file_type" binding:"omitempty,max=20"`
	Purpose             *string    `json:"classification_purpose" binding:"omitempty,max=100"`
	Citation            *string    `json:"citation" binding:"omitempty,max=100"`
	DestructionMethod   *string    `json:"destruction_method" binding:"omitempty,max=50"`
	LabelFormat         *string    `json:"label_format" binding:"omitempty,max=100"`
	EffectiveDate       *time.Time `json:"effective_date"`
	RetentionPolicyID   *uint      `json:"retention_policy_id"`
	TemplateID          *uint      `json:"template_id"`
	RecordOwner         *string    `json:"record_owner" binding:"omitempty,max=100"`
	IsActive            *bool      `json:"is_active"`
	ModifiedBy          string     `json:"modified_by" binding:"required,max=100"`
}

// Summary aggregates catalog-level statistics.
type Summary struct {
	Total       int64            `json:"total"`
	Active      int64            `json:"active"`
	Deleted     int64            `json:"deleted"`
	ByLevel     map[string]int64 `json:"by_level"`
	ByMediaType map[string]int64 `json:"by_media_type"`
}
