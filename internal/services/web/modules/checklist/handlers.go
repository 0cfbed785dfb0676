package checklist

import (
	"context"
	"net/http"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
	apperrors "github.com/seoforge/auditdesk/internal/services/web/platform/errors"
	"github.com/seoforge/auditdesk/internal/services/web/platform/httpx"
)

// ChecklistGateway is the slice of the audit service the checklist routes need.
type ChecklistGateway interface {
	Checklist(ctx context.Context) ([]inspection.ChecklistRow, error)
	AutoPrioritize(ctx context.Context) ([]inspection.ChecklistRow, error)
	ExportChecklistCSV(ctx context.Context) (string, error)
}

type handlers struct {
	gateway ChecklistGateway
}

func newHandlers(gateway ChecklistGateway) handlers {
	return handlers{gateway: gateway}
}

// checklistResponse is the envelope every row-bearing checklist response uses.
type checklistResponse struct {
	Rows []inspection.ChecklistRow `json:"rows"`
}

func writeRows(w http.ResponseWriter, rows []inspection.ChecklistRow) {
	_ = httpx.WriteJSON(w, http.StatusOK, checklistResponse{Rows: rows})
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "audit service unavailable"))
		return
	}
	rows, err := h.gateway.Checklist(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	writeRows(w, rows)
}

func (h handlers) handlePrioritize(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "audit service unavailable"))
		return
	}
	rows, err := h.gateway.AutoPrioritize(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	writeRows(w, rows)
}

func (h handlers) handleExport(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "audit service unavailable"))
		return
	}
	payload, err := h.gateway.ExportChecklistCSV(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteCSV(w, "audit-checklist.csv", payload)
}
