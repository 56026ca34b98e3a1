package template

// CreateRequest represents the input for creating a template.
type CreateRequest struct {
	TemplateName string `json:"template_name" binding:"required,min=2,max=100"`
	Description  string `json:"description" binding:"max=250"`
	Version      string `json:"version" binding:"max=20"`
	BodyFormat   string `json:"body_format" binding:"max=50"`
	CreatedBy    string `json:"created_by" binding:"required,max=100"`
}

// UpdateRequest represents the input for updating a template.
type UpdateRequest struct {
	TemplateName *string `json:"template_name" binding:"omitempty,min=2,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=250"`
	Version      *string `json:"version" binding:"omitempty,max=20"`
	BodyFormat   *string `json:"body_format" binding:"omitempty,max=50"`
	IsActive     *bool   `json:"is_active"`
	ModifiedBy   string  `json:"modified_by" binding:"required,max=100"`
}
