package library

// CreateRequest represents the input for creating a library.
type CreateRequest struct {
	Code        string `json:"code" binding:"required,min=2,max=50"`
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=255"`
	CreatedBy   string `json:"created_by" binding:"required,max=100"`
}

// UpdateRequest represents the input for updating a library.
type UpdateRequest struct {
	Code        *string `json:"code" binding:"omitempty,min=2,max=50"`
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	ModifiedBy  string  `json:"modified_by" binding:"required,max=100"`
}
