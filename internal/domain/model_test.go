package domain

import (
	"testing"
	"time"
)

func TestAuditTouch(t *testing.T) {
	var a Audit
	a.Touch("alice")

	if a.ModifiedAt == nil {
		t.Fatal("expected ModifiedAt set")
	}
	if a.ModifiedBy == nil || *a.ModifiedBy != "alice" {
		t.Errorf("ModifiedBy=%v; want alice", a.ModifiedBy)
	}
}

func TestAuditTouch_BlankActor(t *testing.T) {
	var a Audit
	a.Touch("")

	if a.ModifiedAt == nil {
		t.Fatal("expected ModifiedAt set even without an actor")
	}
	if a.ModifiedBy != nil {
		t.Errorf("ModifiedBy=%v; want nil for blank actor", a.ModifiedBy)
	}
}

func TestSoftDeleteLifecycle(t *testing.T) {
	var s SoftDelete
	s.MarkDeleted("bob")

	if !s.IsDeleted || s.DeletedAt == nil {
		t.Fatalf("deletion mark incomplete: %+v", s)
	}
	if s.DeletedBy == nil || *s.DeletedBy != "bob" {
		t.Errorf("DeletedBy=%v; want bob", s.DeletedBy)
	}

	s.ClearDeleted()
	if s.IsDeleted || s.DeletedAt != nil || s.DeletedBy != nil {
		t.Errorf("restore must clear every field: %+v", s)
	}
}

func TestClassificationCursorValue(t *testing.T) {
	rating := 7
	created := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	c := Classification{
		ClassificationID:  42,
		Name:              "Invoices",
		SensitivityRating: &rating,
		Audit:             Audit{CreatedAt: created},
	}

	tests := []struct {
		column string
		want   string
		ok     bool
	}{
		{"classification_id", "42", true},
		{"name", "Invoices", true},
		{"sensitivity_rating", "7", true},
		{"created_at", "2025-06-01T08:30:00Z", true},
		{"code", "", true}, // empty string values are still addressable
		{"retention_policy_id", "", false},
	}

	for _, tt := range tests {
		got, ok := c.CursorValue(tt.column)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CursorValue(%q)=(%q,%v); want (%q,%v)", tt.column, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClassificationCursorValue_NilPointers(t *testing.T) {
	var c Classification

	if _, ok := c.CursorValue("sensitivity_rating"); ok {
		t.Error("nil rating must not produce a cursor value")
	}
	if _, ok := c.CursorValue("effective_date"); ok {
		t.Error("nil date must not produce a cursor value")
	}
	if _, ok := c.CursorValue("modified_at"); ok {
		t.Error("nil modification time must not produce a cursor value")
	}
}

func TestLookupCodeCursorValue(t *testing.T) {
	c := LookupCode{LookupType: "media_type", LookupCode: "paper", SortOrder: 3}

	if got, ok := c.CursorValue("sort_order"); !ok || got != "3" {
		t.Errorf("sort_order=(%q,%v)", got, ok)
	}
	if got, ok := c.CursorValue("lookup_code"); !ok || got != "paper" {
		t.Errorf("lookup_code=(%q,%v)", got, ok)
	}
	if _, ok := c.CursorValue("description"); ok {
		t.Error("description is not a cursor column")
	}
}
