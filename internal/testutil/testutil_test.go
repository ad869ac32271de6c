package testutil

import (
	"context"
	"testing"
)

func TestLogger_NotNil(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewStore_Usable(t *testing.T) {
	db := NewStore(t)
	if db == nil {
		t.Fatal("expected non-nil store")
	}
	if err := db.DB().PingContext(context.Background()); err != nil {
		t.Fatalf("PingContext: %v", err)
	}
}

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()
	if d.Title != "test-item" {
		t.Errorf("Title = %q, want test-item", d.Title)
	}
	if d.Description == "" {
		t.Error("expected non-empty description")
	}
	if d.Completed {
		t.Error("Completed = true, want false")
	}
}

func TestNewDraft_WithOptions(t *testing.T) {
	d := NewDraft(
		WithTitle("custom"),
		WithDescription("details"),
		WithCompleted(true),
	)
	if d.Title != "custom" {
		t.Errorf("Title = %q, want custom", d.Title)
	}
	if d.Description != "details" {
		t.Errorf("Description = %q, want details", d.Description)
	}
	if !d.Completed {
		t.Error("Completed = false, want true")
	}
}
