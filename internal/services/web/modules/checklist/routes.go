package checklist

import (
	"net/http"

	"github.com/seoforge/auditdesk/internal/services/web/platform/httpx"
	"github.com/seoforge/auditdesk/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Checklist, h.handleList)
	mux.HandleFunc(http.MethodPost+" "+routepath.Checklist, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.ChecklistPrioritize, h.handlePrioritize)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChecklistPrioritize, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.ChecklistExport, h.handleExport)
}
