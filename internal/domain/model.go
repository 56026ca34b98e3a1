package domain

import (
	"strconv"
	"time"
)

// Audit is the common audit trail embedded in all catalog entities.
// DeletedAt is a plain *time.Time rather than gorm.DeletedAt: soft deletion
// here is an explicit business operation (delete/restore endpoints), not the
// implicit GORM behavior.
type Audit struct {
	CreatedAt  time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	CreatedBy  string     `gorm:"size:100;not null" json:"created_by"`
	ModifiedAt *time.Time `json:"modified_at"`
	ModifiedBy *string    `gorm:"size:100" json:"modified_by"`
}

// Touch records a modification by the given actor.
func (a *Audit) Touch(by string) {
	now := time.Now().UTC()
	a.ModifiedAt = &now
	if by != "" {
		a.ModifiedBy = &by
	}
}

// SoftDelete carries the explicit soft-deletion state of an entity.
type SoftDelete struct {
	IsDeleted bool       `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy *string    `gorm:"size:100" json:"deleted_by"`
}

// MarkDeleted flags the row as deleted by the given actor.
func (s *SoftDelete) MarkDeleted(by string) {
	now := time.Now().UTC()
	s.IsDeleted = true
	s.DeletedAt = &now
	if by != "" {
		s.DeletedBy = &by
	}
}

// ClearDeleted restores the row.
func (s *SoftDelete) ClearDeleted() {
	s.IsDeleted = false
	s.DeletedAt = nil
	s.DeletedBy = nil
}

// Helpers shared by the entities' CursorValue implementations. Cursor tokens
// carry column values as strings; these produce the canonical encodings the
// query engine's typed decoding reverses.

func cursorUint(v uint) (string, bool) {
	return strconv.FormatUint(uint64(v), 10), true
}

func cursorInt(v *int) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.Itoa(*v), true
}

func cursorString(v string) (string, bool) {
	return v, true
}

func cursorTime(v time.Time) (string, bool) {
	return v.Format(time.RFC3339Nano), true
}

func cursorTimePtr(v *time.Time) (string, bool) {
	if v == nil {
		return "", false
	}
	return v.Format(time.RFC3339Nano), true
}
