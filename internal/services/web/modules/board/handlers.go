package board

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
	apperrors "github.com/seoforge/auditdesk/internal/services/web/platform/errors"
	"github.com/seoforge/auditdesk/internal/services/web/platform/httpx"
)

// DatasetGateway is the slice of the audit service the board routes need.
type DatasetGateway interface {
	Load(ctx context.Context) ([]inspection.Row, error)
	Reset(ctx context.Context) ([]inspection.Row, error)
	UpdateField(ctx context.Context, id int, field string, value any) ([]inspection.Row, error)
	ExportCSV(ctx context.Context) (string, error)
}

type handlers struct {
	gateway DatasetGateway
}

func newHandlers(gateway DatasetGateway) handlers {
	return handlers{gateway: gateway}
}

// updateRowRequest is the body of a single-field row edit.
type updateRowRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// datasetResponse is the envelope every row-bearing board response uses.
type datasetResponse struct {
	Rows []inspection.Row `json:"rows"`
}

func writeRows(w http.ResponseWriter, rows []inspection.Row) {
	_ = httpx.WriteJSON(w, http.StatusOK, datasetResponse{Rows: rows})
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "audit service unavailable"))
		return
	}
	rows, err := h.gateway.Load(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	writeRows(w, rows)
}

func (h handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "audit service unavailable"))
		return
	}
	rows, err := h.gateway.Reset(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	writeRows(w, rows)
}

func (h handlers) handleUpdateRow(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "audit service unavailable"))
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "row id must be an integer"))
		return
	}

	var req updateRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "request body must be JSON with field and value"))
		return
	}

	rows, err := h.gateway.UpdateField(httpx.RequestContext(r), id, req.Field, req.Value)
	if err != nil {
		if errors.Is(err, inspection.ErrUnknownField) {
			httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, err.Error()))
			return
		}
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
	payload, err := h.gateway.ExportCSV(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteCSV(w, "audit-dataset.csv", payload)
}
