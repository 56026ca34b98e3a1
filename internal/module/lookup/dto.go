package lookup

// CreateTypeRequest represents the input for creating a lookup type.
type CreateTypeRequest struct {
	LookupType  string `json:"lookup_type" binding:"required,min=2,max=50"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=250"`
	CreatedBy   string `json:"created_by" binding:"required,max=100"`
}

// UpdateTypeRequest represents the input for updating a lookup type.
type UpdateTypeRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=250"`
	IsActive    *bool   `json:"is_active"`
	ModifiedBy  string  `json:"modified_by" binding:"required,max=100"`
}

// CreateCodeRequest represents the input for creating a lookup code.
type CreateCodeRequest struct {
	LookupType  string `json:"lookup_type" binding:"required,min=2,max=50"`
	LookupCode  string `json:"lookup_code" binding:"required,min=1,max=50"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=250"`
	SortOrder   int    `json:"sort_order"`
	CreatedBy   string `json:"created_by" binding:"required,max=100"`
}

// UpdateCodeRequest represents the input for updating a lookup code.
type UpdateCodeRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=250"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
	ModifiedBy  string  `json:"modified_by" binding:"required,max=100"`
}

// BatchGetRequest asks for the codes of several vocabularies at once.
type BatchGetRequest struct {
	LookupTypes []string `json:"lookup_types" binding:"required,min=1,max=50,dive,required"`
}

// BatchUpsertRequest inserts or updates several codes in one transaction.
type BatchUpsertRequest struct {
	Codes      []BatchCodeEntry `json:"codes" binding:"required,min=1,max=200,dive"`
	ModifiedBy string           `json:"modified_by" binding:"required,max=100"`
}

// BatchCodeEntry is one code in a batch upsert.
type BatchCodeEntry struct {
	LookupType  string `json:"lookup_type" binding:"required,min=2,max=50"`
	LookupCode  string `json:"lookup_code" binding:"required,min=1,max=50"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=250"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// Summary aggregates vocabulary statistics.
type Summary struct {
	Types       int64            `json:"types"`
	Codes       int64            `json:"codes"`
	ActiveCodes int64            `json:"active_codes"`
	CodesByType map[string]int64 `json:"codes_by_type"`
}
