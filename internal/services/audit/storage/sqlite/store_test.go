package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
	"github.com/seoforge/auditdesk/internal/services/audit/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestLoadSnapshotMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	_, err := store.LoadSnapshot(context.Background())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want storage.ErrNotFound", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	rows := []inspection.Row{
		{ID: 1, InspectionElement: "sitemap", Score: "3", Priority: "1", Check: true},
		{ID: 2, InspectionElement: "robots, with comma", Score: "N/A"},
	}
	if err := store.SaveSnapshot(ctx, rows); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(loaded) != len(rows) {
		t.Fatalf("loaded %d rows, want %d", len(loaded), len(rows))
	}
	if loaded[0] != rows[0] || loaded[1] != rows[1] {
		t.Fatalf("loaded rows = %+v, want %+v", loaded, rows)
	}
}

func TestSaveSnapshotReplacesPrevious(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveSnapshot(ctx, []inspection.Row{{ID: 1, Score: "2"}}); err != nil {
		t.Fatalf("save first snapshot: %v", err)
	}
	if err := store.SaveSnapshot(ctx, []inspection.Row{{ID: 1, Score: "5"}}); err != nil {
		t.Fatalf("save second snapshot: %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Score != "5" {
		t.Fatalf("loaded = %+v, want last write", loaded)
	}
}

func TestDeleteSnapshotDiscardsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveSnapshot(ctx, []inspection.Row{{ID: 1}}); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	if err := store.DeleteSnapshot(ctx); err != nil {
		t.Fatalf("delete snapshot: %v", err)
	}
	if err := store.DeleteSnapshot(ctx); err != nil {
		t.Fatalf("delete absent snapshot: %v", err)
	}
	if _, err := store.LoadSnapshot(ctx); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want storage.ErrNotFound after delete", err)
	}
}
