package backup_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kwhite/itemstore/internal/backup"
	"github.com/kwhite/itemstore/internal/services"
	"github.com/kwhite/itemstore/internal/store"
	"github.com/kwhite/itemstore/internal/testutil"
)

// seedDatabase creates a database at path with one item and closes it.
func seedDatabase(t *testing.T, path, title string) {
	t.Helper()
	ctx := context.Background()

	st, err := store.New(path)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	repo, err := services.NewSQLiteItemRepository(ctx, st)
	if err != nil {
		st.Close()
		t.Fatalf("NewSQLiteItemRepository: %v", err)
	}
	if _, err := repo.Create(ctx, testutil.NewDraft(testutil.WithTitle(title))); err != nil {
		st.Close()
		t.Fatalf("Create: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	srcDir := t.TempDir()
	dbPath := filepath.Join(srcDir, "itemstore.db")
	seedDatabase(t, dbPath, "survives-backup")

	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	if err := backup.Backup(ctx, dbPath, "", archive); err != nil {
		t.Fatalf("Backup: %v", err)
	}

	restoreDir := t.TempDir()
	if err := backup.Restore(ctx, archive, restoreDir, false); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// Open the restored database and verify the item is present.
	st, err := store.New(filepath.Join(restoreDir, "itemstore.db"))
	if err != nil {
		t.Fatalf("open restored db: %v", err)
	}
	defer st.Close()

	repo, err := services.NewSQLiteItemRepository(ctx, st)
	if err != nil {
		t.Fatalf("NewSQLiteItemRepository: %v", err)
	}
	result, err := repo.List(ctx, services.ItemFilter{}, services.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("Total = %d, want 1", result.Total)
	}
	if result.Items[0].Title != "survives-backup" {
		t.Errorf("Title = %q, want %q", result.Items[0].Title, "survives-backup")
	}
}

func TestBackupMissingDatabase(t *testing.T) {
	ctx := context.Background()
	out := filepath.Join(t.TempDir(), "backup.tar.gz")

	err := backup.Backup(ctx, "/nonexistent/itemstore.db", "", out)
	if err == nil {
		t.Error("Backup with missing db = nil error, want error")
	}
}

func TestRestoreRefusesOverwrite(t *testing.T) {
	ctx := context.Background()
	srcDir := t.TempDir()
	dbPath := filepath.Join(srcDir, "itemstore.db")
	seedDatabase(t, dbPath, "original")

	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	if err := backup.Backup(ctx, dbPath, "", archive); err != nil {
		t.Fatalf("Backup: %v", err)
	}

	// Restoring over the source dir without force must fail.
	if err := backup.Restore(ctx, archive, srcDir, false); err == nil {
		t.Error("Restore without force over existing file = nil error, want error")
	}

	// With force it succeeds.
	if err := backup.Restore(ctx, archive, srcDir, true); err != nil {
		t.Errorf("Restore with force: %v", err)
	}
}

func TestBackupIncludesConfig(t *testing.T) {
	ctx := context.Background()
	srcDir := t.TempDir()
	dbPath := filepath.Join(srcDir, "itemstore.db")
	seedDatabase(t, dbPath, "with-config")

	cfgPath := filepath.Join(srcDir, "itemstore.yaml")
	if err := os.WriteFile(cfgPath, []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	if err := backup.Backup(ctx, dbPath, cfgPath, archive); err != nil {
		t.Fatalf("Backup: %v", err)
	}

	restoreDir := t.TempDir()
	if err := backup.Restore(ctx, archive, restoreDir, false); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	restored, err := os.ReadFile(filepath.Join(restoreDir, "itemstore.yaml"))
	if err != nil {
		t.Fatalf("read restored config: %v", err)
	}
	if string(restored) != "log:\n  level: debug\n" {
		t.Errorf("restored config = %q, want original content", restored)
	}
}
