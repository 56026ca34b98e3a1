package domain

import "time"

// RetentionPolicy defines how long records of a class are kept and under what
// legal authority they are disposed of.
type RetentionPolicy struct {
	RetentionPolicyID   uint       `gorm:"primaryKey;column:retention_policy_id" json:"retention_policy_id"`
	Name                string     `gorm:"size:100;not null" json:"name"`
	RetentionCode       string     `gorm:"size:50;not null;uniqueIndex" json:"retention_code"`
	Description         string     `gorm:"size:250" json:"description"`
	RetentionType       string     `gorm:"size:50;index" json:"retention_type"`
	RetentionPeriodDays *int       `json:"retention_period_days"`
	Jurisdiction        string     `gorm:"size:100;index" json:"jurisdiction"`
	LegalBasis          string     `gorm:"size:250" json:"legal_basis"`
	DispositionMethod   string     `gorm:"size:50" json:"disposition_method"`
	PolicyOwner         string     `gorm:"size:100" json:"policy_owner"`
	AuditRequired       bool       `gorm:"not null;default:false" json:"audit_required"`
	ReviewFrequency     string     `gorm:"size:50" json:"review_frequency"`
	NextReviewDate      *time.Time `json:"next_review_date"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	Audit
}

func (RetentionPolicy) TableName() string { return "pdc_retention_policies" }

// CursorValue exposes sortable column values for cursor-token construction.
func (p RetentionPolicy) CursorValue(column string) (string, bool) {
	switch column {
	case "retention_policy_id":
		return cursorUint(p.RetentionPolicyID)
	case "name":
		return cursorString(p.Name)
	case "retention_code":
		return cursorString(p.RetentionCode)
	case "retention_type":
		return cursorString(p.RetentionType)
	case "retention_period_days":
		return cursorInt(p.RetentionPeriodDays)
	case "jurisdiction":
		return cursorString(p.Jurisdiction)
	case "created_at":
		return cursorTime(p.CreatedAt)
	case "modified_at":
		return cursorTimePtr(p.ModifiedAt)
	}
	return "", false
}
