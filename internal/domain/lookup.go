package domain

// LookupType groups a controlled vocabulary, such as media types or
// classification levels.
type LookupType struct {
	LookupType  string `gorm:"primaryKey;size:50;column:lookup_type" json:"lookup_type"`
	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	Description string `gorm:"size:250" json:"description"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	Audit
}

func (LookupType) TableName() string { return "pdc_lookup_types" }

// LookupCode is one entry of a controlled vocabulary, keyed by the composite
// (lookup_type, lookup_code) pair.
type LookupCode struct {
	LookupType  string `gorm:"primaryKey;size:50;column:lookup_type" json:"lookup_type"`
	LookupCode  string `gorm:"primaryKey;size:50;column:lookup_code" json:"lookup_code"`
	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	Description string `gorm:"size:250" json:"description"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	Audit
}

func (LookupCode) TableName() string { return "pdc_lookup_codes" }

// CursorValue exposes sortable column values for cursor-token construction.
func (c LookupCode) CursorValue(column string) (string, bool) {
	switch column {
	case "lookup_code":
		return cursorString(c.LookupCode)
	case "lookup_type":
		return cursorString(c.LookupType)
	case "display_name":
		return cursorString(c.DisplayName)
	case "sort_order":
		return cursorInt(&c.SortOrder)
	case "created_at":
		return cursorTime(c.CreatedAt)
	}
	return "", false
}
