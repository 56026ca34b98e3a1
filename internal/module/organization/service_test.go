package organization

import (
	"context"
	"testing"

	"github.com/hbaskar/GC-PDC/internal/domain"
)

// The service layer is tested against the real repository on in-memory
// SQLite, same as the other modules.

func TestServiceCreate_Validation(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{OrganizationName: "  ", CreatedBy: "alice"})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for blank name, got %v", err)
	}

	missing := uint(999)
	_, err = svc.Create(ctx, CreateRequest{
		OrganizationName: "Orphan Unit", ParentOrganizationID: &missing, CreatedBy: "alice",
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for missing parent, got %v", err)
	}
}

func TestServiceUpdate(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{OrganizationName: "Legal", CreatedBy: "alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	code := "LGL"
	updated, err := svc.Update(ctx, created.OrganizationID, UpdateRequest{
		OrganizationCode: &code, ModifiedBy: "bob",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.OrganizationCode != "LGL" {
		t.Errorf("OrganizationCode=%q; want LGL", updated.OrganizationCode)
	}
	if updated.OrganizationName != "Legal" {
		t.Errorf("unset fields must stay unchanged, OrganizationName=%q", updated.OrganizationName)
	}
	if updated.ModifiedBy == nil || *updated.ModifiedBy != "bob" {
		t.Errorf("ModifiedBy=%v; want bob", updated.ModifiedBy)
	}
}

func TestServiceUpdate_SelfParentRejected(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{OrganizationName: "Loop", CreatedBy: "alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(ctx, created.OrganizationID, UpdateRequest{
		ParentOrganizationID: &created.OrganizationID, ModifiedBy: "bob",
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for self parent, got %v", err)
	}
}

func TestServiceDelete_ReferencedConflicts(t *testing.T) {
	repo, db := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	stream, err := svc.Create(ctx, CreateRequest{OrganizationName: "Operations", CreatedBy: "alice"})
	if err != nil {
		t.Fatalf("Create stream: %v", err)
	}
	child, err := svc.Create(ctx, CreateRequest{
		OrganizationName: "Logistics", ParentOrganizationID: &stream.OrganizationID, CreatedBy: "alice",
	})
	if err != nil {
		t.Fatalf("Create child: %v", err)
	}

	if err := svc.Delete(ctx, stream.OrganizationID); !domain.IsConflict(err) {
		t.Fatalf("expected conflict while child exists, got %v", err)
	}

	c := domain.Classification{
		Name:              "Shipping Manifests",
		Code:              "SHP-01",
		RetentionPolicyID: 1,
		OrganizationID:    child.OrganizationID,
		IsActive:          true,
	}
	c.CreatedBy = "tester"
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed classification: %v", err)
	}

	if err := svc.Delete(ctx, child.OrganizationID); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for referenced organization, got %v", err)
	}

	// Soft-deleting the referencing classification releases the child unit,
	// which in turn releases its parent.
	if err := db.Model(&domain.Classification{}).
		Where("classification_id = ?", c.ClassificationID).
		Update("is_deleted", true).Error; err != nil {
		t.Fatalf("soft delete reference: %v", err)
	}
	if err := svc.Delete(ctx, child.OrganizationID); err != nil {
		t.Fatalf("Delete child after release: %v", err)
	}
	if err := svc.Delete(ctx, stream.OrganizationID); err != nil {
		t.Fatalf("Delete stream after release: %v", err)
	}
}

func TestServiceDelete_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), 999); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceStreamBusinessUnit(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	stream, err := svc.Create(ctx, CreateRequest{OrganizationName: "Finance", CreatedBy: "alice"})
	if err != nil {
		t.Fatalf("Create stream: %v", err)
	}
	child, err := svc.Create(ctx, CreateRequest{
		OrganizationName: "Payroll", ParentOrganizationID: &stream.OrganizationID, CreatedBy: "alice",
	})
	if err != nil {
		t.Fatalf("Create child: %v", err)
	}

	rootResult, err := svc.StreamBusinessUnit(ctx, stream.OrganizationID)
	if err != nil {
		t.Fatalf("StreamBusinessUnit root: %v", err)
	}
	if rootResult.Stream == nil || *rootResult.Stream != "Finance" {
		t.Errorf("root Stream=%v; want Finance", rootResult.Stream)
	}
	if rootResult.BusinessUnit != nil {
		t.Errorf("root BusinessUnit=%v; want nil", rootResult.BusinessUnit)
	}

	childResult, err := svc.StreamBusinessUnit(ctx, child.OrganizationID)
	if err != nil {
		t.Fatalf("StreamBusinessUnit child: %v", err)
	}
	if childResult.Stream == nil || *childResult.Stream != "Finance" {
		t.Errorf("child Stream=%v; want Finance", childResult.Stream)
	}
	if childResult.BusinessUnit == nil || *childResult.BusinessUnit != "Payroll" {
		t.Errorf("child BusinessUnit=%v; want Payroll", childResult.BusinessUnit)
	}
}

func TestServiceHierarchy(t *testing.T) {
	repo, db := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	parentID := uint(1)
	rows := []domain.OrganizationHierarchy{
		{OrganizationID: 1, Name: "Corporate", Code: "CORP", OrgLevel: "Entity", Level: 1},
		{OrganizationID: 2, Name: "Payroll", Code: "PAY", OrgLevel: "SubEntity", ParentOrganizationID: &parentID, Level: 2},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed hierarchy: %v", err)
	}

	all, err := svc.Hierarchy(ctx, "")
	if err != nil {
		t.Fatalf("Hierarchy: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all)=%d; want 2", len(all))
	}
	if all[0].Stream != nil || all[0].BusinessUnit != nil {
		t.Errorf("entity row must not carry stream enrichment: %+v", all[0])
	}
	sub := all[1]
	if sub.BusinessUnit == nil || *sub.BusinessUnit != "Payroll" {
		t.Errorf("sub-entity BusinessUnit=%v; want Payroll", sub.BusinessUnit)
	}
	if sub.Stream == nil || *sub.Stream != "Corporate" {
		t.Errorf("sub-entity Stream=%v; want Corporate", sub.Stream)
	}

	// Level filtering is case-insensitive and still resolves parent names
	// outside the filtered level.
	subOnly, err := svc.Hierarchy(ctx, "subentity")
	if err != nil {
		t.Fatalf("Hierarchy filtered: %v", err)
	}
	if len(subOnly) != 1 || subOnly[0].Name != "Payroll" {
		t.Fatalf("filtered rows=%+v; want just Payroll", subOnly)
	}
	if subOnly[0].Stream == nil || *subOnly[0].Stream != "Corporate" {
		t.Errorf("filtered Stream=%v; want Corporate", subOnly[0].Stream)
	}
}
