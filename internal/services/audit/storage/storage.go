// Package storage defines the persistence contract for audit datasets.
//
// The dataset persists as a single snapshot slot: the whole row sequence
// serialized as JSON. Callers decide how to react to persistence failures;
// implementations report them instead of swallowing them.
package storage

import (
	"context"
	"errors"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
)

// ErrNotFound indicates no snapshot has been persisted yet.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore persists the audit dataset as one replaceable snapshot.
type SnapshotStore interface {
	// LoadSnapshot returns the persisted dataset or ErrNotFound.
	LoadSnapshot(ctx context.Context) ([]inspection.Row, error)
	// SaveSnapshot replaces the persisted dataset. Last write wins.
	SaveSnapshot(ctx context.Context, rows []inspection.Row) error
	// DeleteSnapshot discards the persisted dataset. Deleting an absent
	// snapshot is not an error.
	DeleteSnapshot(ctx context.Context) error
}
