// Package service orchestrates the audit dataset lifecycle: loading the
// persisted snapshot with a bundled default fallback, applying edits, and
// producing checklist and CSV views.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/seoforge/auditdesk/internal/services/audit/csvexport"
	"github.com/seoforge/auditdesk/internal/services/audit/dataset"
	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
	"github.com/seoforge/auditdesk/internal/services/audit/storage"
)

// Service coordinates dataset persistence and the inspection domain rules.
type Service struct {
	store  storage.SnapshotStore
	logger *log.Logger
}

// New creates an audit service backed by the provided snapshot store.
func New(store storage.SnapshotStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, logger: logger}
}

// Load returns the persisted dataset, falling back to the bundled default
// when no snapshot exists or the store fails. Store failures degrade to the
// default dataset rather than blocking the board.
func (s *Service) Load(ctx context.Context) ([]inspection.Row, error) {
	if s.store != nil {
		rows, err := s.store.LoadSnapshot(ctx)
		switch {
		case err == nil:
			return rows, nil
		case errors.Is(err, storage.ErrNotFound):
		default:
			s.logger.Printf("load snapshot failed, serving default dataset: %v", err)
		}
	}
	rows, err := dataset.Default()
	if err != nil {
		return nil, fmt.Errorf("load default dataset: %w", err)
	}
	return rows, nil
}

// Reset discards the persisted snapshot and returns a fresh default dataset.
func (s *Service) Reset(ctx context.Context) ([]inspection.Row, error) {
	if s.store != nil {
		if err := s.store.DeleteSnapshot(ctx); err != nil {
			s.logger.Printf("delete snapshot failed: %v", err)
		}
	}
	rows, err := dataset.Default()
	if err != nil {
		return nil, fmt.Errorf("load default dataset: %w", err)
	}
	return rows, nil
}

// UpdateField applies a single field edit and persists the result. An unknown
// row id leaves the dataset unchanged; an unknown field is rejected with
// inspection.ErrUnknownField.
func (s *Service) UpdateField(ctx context.Context, id int, field string, value any) ([]inspection.Row, error) {
	rows, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := inspection.UpdateField(rows, id, field, value)
	if err != nil {
		return nil, err
	}

	s.save(ctx, updated)
	return updated, nil
}

// Checklist returns the prioritized work view of the current dataset.
func (s *Service) Checklist(ctx context.Context) ([]inspection.ChecklistRow, error) {
	rows, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return inspection.Checklist(rows), nil
}

// AutoPrioritize assigns severity-ranked priorities, persists the result,
// and returns the refreshed checklist.
func (s *Service) AutoPrioritize(ctx context.Context) ([]inspection.ChecklistRow, error) {
	rows, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	prioritized := inspection.AutoPrioritize(rows)
	s.save(ctx, prioritized)
	return inspection.Checklist(prioritized), nil
}

// ExportCSV renders the full dataset as CSV.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	rows, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	return csvexport.Marshal(rows), nil
}

// ExportChecklistCSV renders the checklist view as CSV.
func (s *Service) ExportChecklistCSV(ctx context.Context) (string, error) {
	checklist, err := s.Checklist(ctx)
	if err != nil {
		return "", err
	}
	rows := make([]inspection.Row, len(checklist))
	for i, item := range checklist {
		rows[i] = item.Row
	}
	return csvexport.Marshal(rows), nil
}

// save persists best effort. Edits still apply in memory when the store is
// down; the failure is logged so the degradation is visible.
func (s *Service) save(ctx context.Context, rows []inspection.Row) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveSnapshot(ctx, rows); err != nil {
		s.logger.Printf("save snapshot failed: %v", err)
	}
}
