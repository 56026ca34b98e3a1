package retentionpolicy

import "time"

// CreateRequest represents the input for creating a retention policy.
type CreateRequest struct {
	Name                string     `json:"name" binding:"required,min=2,max=100"`
	RetentionCode       string     `json:"retention_code" binding:"required,min=2,max=50"`
	Description         string     `json:"description" binding:"max=250"`
	RetentionType       string     `json:"retention_type" binding:"max=50"`
	RetentionPeriodDays *int       `json:"retention_period_days" binding:"omitempty,min=0"`
	Jurisdiction        string     `json:"jurisdiction" binding:"max=100"`
	LegalBasis          string     `json:"legal_basis" binding:"max=250"`
	DispositionMethod   string     `json:"disposition_method" binding:"max=50"`
	PolicyOwner         string     `json:"policy_owner" binding:"max=100"`
	AuditRequired       bool       `json:"audit_required"`
	ReviewFrequency     string     `json:"review_frequency" binding:"max=50"`
	NextReviewDate      *time.Time `json:"next_review_date"`
	CreatedBy           string     `json:"created_by" binding:"required,max=100"`
}

// UpdateRequest represents the input for updating a retention policy.
type UpdateRequest struct {
	Name                *string    `json:"name" binding:"omitempty,min=2,max=100"`
	Description         *string    `json:"description" binding:"omitempty,max=250"`
	RetentionType       *string    `json:"retention_type" binding:"omitempty,max=50"`
	RetentionPeriodDays *int       `json:"retention_period_days" binding:"omitempty,min=0"`
	Jurisdiction        *string    `json:"jurisdiction" binding:"omitempty,max=100"`
	LegalBasis          *string    `json:"legal_basis" binding:"omitempty,max=250"`
	DispositionMethod   *string    `json:"disposition_method" binding:"omitempty,max=50"`
	PolicyOwner         *string    `json:"policy_owner" binding:"omitempty,max=100"`
	AuditRequired       *bool      `json:"audit_required"`
	ReviewFrequency     *string    `json:"review_frequency" binding:"omitempty,max=50"`
	NextReviewDate      *time.Time `json:"next_review_date"`
	IsActive            *bool      `json:"is_active"`
	ModifiedBy          string     `json:"modified_by" binding:"required,max=100"`
}

// Summary aggregates policy-level statistics.
type Summary struct {
	Total          int64            `json:"total"`
	Active         int64            `json:"active"`
	AuditRequired  int64            `json:"audit_required"`
	ByType         map[string]int64 `json:"by_type"`
	ByJurisdiction map[string]int64 `json:"by_jurisdiction"`
}
