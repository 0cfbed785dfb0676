package checklist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
	"github.com/seoforge/auditdesk/internal/services/web/routepath"
)

type fakeGateway struct {
	rows []inspection.ChecklistRow
	csv  string
	err  error

	prioritizeCalls int
}

func (f *fakeGateway) Checklist(ctx context.Context) ([]inspection.ChecklistRow, error) {
	return f.rows, f.err
}

func (f *fakeGateway) AutoPrioritize(ctx context.Context) ([]inspection.ChecklistRow, error) {
	f.prioritizeCalls++
	return f.rows, f.err
}

func (f *fakeGateway) ExportChecklistCSV(ctx context.Context) (string, error) {
	return f.csv, f.err
}

func mountModule(t *testing.T, gateway ChecklistGateway) http.Handler {
	t.Helper()
	mount, err := NewWithGateway(gateway).Mount()
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	return mount.Handler
}

func TestHandleListReturnsChecklistRows(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{rows: []inspection.ChecklistRow{
		{Row: inspection.Row{ID: 2, InspectionElement: "sitemap", Score: "2"}, Severity: 8},
	}}
	h := mountModule(t, gateway)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Checklist, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp checklistResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp.Rows) != 1 || resp.Rows[0].Severity != 8 {
		t.Fatalf("rows = %+v", resp.Rows)
	}
}

func TestHandlePrioritizeInvokesGateway(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{rows: []inspection.ChecklistRow{
		{Row: inspection.Row{ID: 5, Priority: "1", Score: "1"}, Severity: 9},
	}}
	h := mountModule(t, gateway)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.ChecklistPrioritize, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if gateway.prioritizeCalls != 1 {
		t.Fatalf("prioritizeCalls = %d, want 1", gateway.prioritizeCalls)
	}
	var resp checklistResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp.Rows) != 1 || resp.Rows[0].Priority != "1" {
		t.Fatalf("rows = %+v", resp.Rows)
	}
}

func TestHandleExportWritesCSVAttachment(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{csv: "X/√,INSPECTION ELEMENT\nFALSE,sitemap"}
	h := mountModule(t, gateway)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.ChecklistExport, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "audit-checklist.csv") {
		t.Fatalf("Content-Disposition = %q", cd)
	}
}

func TestGatewayFailureMapsToInternalError(t *testing.T) {
	t.Parallel()

	h := mountModule(t, &fakeGateway{err: errors.New("boom")})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Checklist, nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestDegradedModuleReportsUnavailable(t *testing.T) {
	t.Parallel()

	if New().Healthy() {
		t.Fatal("zero-value module should not report healthy")
	}

	h := mountModule(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Checklist, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestRoutesRejectWrongMethods(t *testing.T) {
	t.Parallel()

	h := mountModule(t, &fakeGateway{})

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, routepath.Checklist},
		{http.MethodGet, routepath.ChecklistPrioritize},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, http.StatusMethodNotAllowed)
		}
	}
}
