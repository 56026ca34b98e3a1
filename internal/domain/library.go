package domain

// Library is a named grouping of records classifications.
type Library struct {
	LibraryID   uint   `gorm:"primaryKey;column:library_id" json:"library_id"`
	Code        string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Audit
}

func (Library) TableName() string { return "pdc_libraries" }

// CursorValue exposes sortable column values for cursor-token construction.
func (l Library) CursorValue(column string) (string, bool) {
	switch column {
	case "library_id":
		return cursorUint(l.LibraryID)
	case "code":
		return cursorString(l.Code)
	case "name":
		return cursorString(l.Name)
	case "created_at":
		return cursorTime(l.CreatedAt)
	}
	return "", false
}
