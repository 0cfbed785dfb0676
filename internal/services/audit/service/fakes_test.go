package service

import (
	"context"
	"errors"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
	"github.com/seoforge/auditdesk/internal/services/audit/storage"
)

// fakeStore is an in-memory SnapshotStore with injectable failures.
type fakeStore struct {
	rows    []inspection.Row
	hasRows bool

	loadErr   error
	saveErr   error
	deleteErr error

	saveCalls   int
	deleteCalls int
}

func (f *fakeStore) LoadSnapshot(ctx context.Context) ([]inspection.Row, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if !f.hasRows {
		return nil, storage.ErrNotFound
	}
	rows := make([]inspection.Row, len(f.rows))
	copy(rows, f.rows)
	return rows, nil
}

func (f *fakeStore) SaveSnapshot(ctx context.Context, rows []inspection.Row) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rows = make([]inspection.Row, len(rows))
	copy(f.rows, rows)
	f.hasRows = true
	return nil
}

func (f *fakeStore) DeleteSnapshot(ctx context.Context) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.rows = nil
	f.hasRows = false
	return nil
}

var errStoreDown = errors.New("store down")
