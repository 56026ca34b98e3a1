package library

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

	_, err := svc.Create(ctx, CreateRequest{Code: "  ", Name: "Blank Code", CreatedBy: "alice"})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for blank code, got %v", err)
	}
	_, err = svc.Create(ctx, CreateRequest{Code: "OK", Name: "  ", CreatedBy: "alice"})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for blank name, got %v", err)
	}
}

func TestServiceUpdate(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{Code: "FIN", Name: "Finance Library", CreatedBy: "alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	desc := "invoices and ledgers"
	updated, err := svc.Update(ctx, created.LibraryID, UpdateRequest{
		Description: &desc, ModifiedBy: "bob",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "invoices and ledgers" {
		t.Errorf("Description=%q", updated.Description)
	}
	if updated.Code != "FIN" || updated.Name != "Finance Library" {
		t.Errorf("unset fields must stay unchanged, got %q/%q", updated.Code, updated.Name)
	}
	if updated.ModifiedBy == nil || *updated.ModifiedBy != "bob" {
		t.Errorf("ModifiedBy=%v; want bob", updated.ModifiedBy)
	}
}

func TestServiceUpdate_BlankCodeRejected(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{Code: "HR", Name: "People Library", CreatedBy: "alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	blank := "  "
	_, err = svc.Update(ctx, created.LibraryID, UpdateRequest{Code: &blank, ModifiedBy: "bob"})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for blank code, got %v", err)
	}
}

func TestServiceDelete_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), 999); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
