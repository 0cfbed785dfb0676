package board

import (
	"net/http"

	"github.com/seoforge/auditdesk/internal/services/web/platform/httpx"
	"github.com/seoforge/auditdesk/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dataset, h.handleList)
	mux.HandleFunc(http.MethodPost+" "+routepath.Dataset, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.DatasetReset, h.handleReset)
	mux.HandleFunc(http.MethodGet+" "+routepath.DatasetReset, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.DatasetExport, h.handleExport)
	mux.HandleFunc(http.MethodPost+" "+routepath.DatasetRowPattern, h.handleUpdateRow)
	mux.HandleFunc(http.MethodGet+" "+routepath.DatasetRowPattern, httpx.MethodNotAllowed(http.MethodPost))
}
