package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/seoforge/auditdesk/internal/platform/storage/sqlitemigrate"
	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
	"github.com/seoforge/auditdesk/internal/services/audit/storage"
	"github.com/seoforge/auditdesk/internal/services/audit/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// defaultSlot names the single snapshot slot the board uses.
const defaultSlot = "default"

// Store provides SQLite-backed persistence for audit dataset snapshots.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates an audit SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) runMigrations() error {
	return sqlitemigrate.Apply(s.sqlDB, migrations.FS)
}

// LoadSnapshot returns the persisted dataset or storage.ErrNotFound.
func (s *Store) LoadSnapshot(ctx context.Context) ([]inspection.Row, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var payload string
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT payload_json FROM dataset_snapshots WHERE slot = ?`,
		defaultSlot,
	)
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var rows []inspection.Row
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return rows, nil
}

// SaveSnapshot replaces the persisted dataset.
func (s *Store) SaveSnapshot(ctx context.Context, rows []inspection.Row) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO dataset_snapshots (slot, payload_json, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET payload_json = excluded.payload_json, updated_at = excluded.updated_at`,
		defaultSlot,
		string(payload),
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshot discards the persisted dataset.
func (s *Store) DeleteSnapshot(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM dataset_snapshots WHERE slot = ?`, defaultSlot); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
