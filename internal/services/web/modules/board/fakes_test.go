package board

import (
	"context"
	"errors"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
)

type fakeGateway struct {
	rows []inspection.Row
	csv  string
	err  error

	resetCalls int

	lastID    int
	lastField string
	lastValue any
}

func (f *fakeGateway) Load(ctx context.Context) ([]inspection.Row, error) {
	return f.rows, f.err
}

func (f *fakeGateway) Reset(ctx context.Context) ([]inspection.Row, error) {
	f.resetCalls++
	return f.rows, f.err
}

func (f *fakeGateway) UpdateField(ctx context.Context, id int, field string, value any) ([]inspection.Row, error) {
	f.lastID = id
	f.lastField = field
	f.lastValue = value
	if f.err != nil {
		return nil, f.err
	}
	if field != inspection.FieldScore && field != inspection.FieldCheck && field != inspection.FieldPriority {
		return nil, errors.Join(inspection.ErrUnknownField, errors.New(field))
	}
	return f.rows, nil
}

func (f *fakeGateway) ExportCSV(ctx context.Context) (string, error) {
	return f.csv, f.err
}
