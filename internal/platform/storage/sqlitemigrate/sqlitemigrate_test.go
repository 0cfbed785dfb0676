package sqlitemigrate

import (
	"database/sql"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

const snapshotMigration = `-- +migrate Up
CREATE TABLE dataset_snapshots (
    slot TEXT PRIMARY KEY,
    payload_json TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
-- +migrate Down
DROP TABLE dataset_snapshots;`

func openMigrationDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var n int64
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func hasTable(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found int
	err := db.QueryRow("SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&found)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("lookup table %s: %v", name, err)
	}
	return true
}

func TestApplyCreatesSnapshotSchema(t *testing.T) {
	db := openMigrationDB(t)

	migrations := fstest.MapFS{
		"0001_dataset_snapshots.sql": &fstest.MapFile{Data: []byte(snapshotMigration)},
	}
	if err := Apply(db, migrations); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if !hasTable(t, db, "dataset_snapshots") {
		t.Fatal("dataset_snapshots table missing")
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 1 {
		t.Fatalf("ledger rows = %d, want 1", n)
	}
}

func TestApplyIsIdempotentAcrossReopens(t *testing.T) {
	db := openMigrationDB(t)

	migrations := fstest.MapFS{
		"0001_dataset_snapshots.sql": &fstest.MapFile{Data: []byte(snapshotMigration)},
	}
	if err := Apply(db, migrations); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := Apply(db, migrations); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	if n := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 1 {
		t.Fatalf("ledger rows = %d, want 1", n)
	}
}

func TestApplyRunsFilesInLexicalOrder(t *testing.T) {
	db := openMigrationDB(t)

	migrations := fstest.MapFS{
		"0002_add_slot_index.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE INDEX idx_snapshot_slot ON dataset_snapshots(slot);"),
		},
		"0001_dataset_snapshots.sql": &fstest.MapFile{Data: []byte(snapshotMigration)},
	}
	if err := Apply(db, migrations); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if n := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 2 {
		t.Fatalf("ledger rows = %d, want 2", n)
	}
}

func TestApplyLeavesFailedFileUnrecorded(t *testing.T) {
	db := openMigrationDB(t)

	migrations := fstest.MapFS{
		"0001_broken.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREAT TABLE dataset_snapshots(slot TEXT);"),
		},
	}
	if err := Apply(db, migrations); err == nil {
		t.Fatal("expected broken migration to fail")
	}

	if n := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 0 {
		t.Fatalf("ledger rows = %d, want 0", n)
	}
}

func TestApplyToleratesPreexistingSchema(t *testing.T) {
	db := openMigrationDB(t)

	// Stores created before the ledger existed already carry the table.
	if _, err := db.Exec("CREATE TABLE dataset_snapshots (slot TEXT PRIMARY KEY, payload_json TEXT NOT NULL, updated_at INTEGER NOT NULL)"); err != nil {
		t.Fatalf("seed schema: %v", err)
	}

	migrations := fstest.MapFS{
		"0001_dataset_snapshots.sql": &fstest.MapFile{Data: []byte(snapshotMigration)},
	}
	if err := Apply(db, migrations); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 1 {
		t.Fatalf("ledger rows = %d, want 1", n)
	}
}

func TestUpSectionParsing(t *testing.T) {
	t.Parallel()

	up := upSection(snapshotMigration)
	if want := "CREATE TABLE dataset_snapshots"; !strings.Contains(up, want) {
		t.Fatalf("up section = %q, want %q", up, want)
	}
	if strings.Contains(up, "DROP TABLE") {
		t.Fatalf("up section includes down statements: %q", up)
	}

	plain := "CREATE TABLE plain(id INT);"
	if upSection(plain) != plain {
		t.Fatal("content without markers should pass through unchanged")
	}
}
