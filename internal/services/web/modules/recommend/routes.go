package recommend

import (
	"net/http"

	"github.com/seoforge/auditdesk/internal/services/web/platform/httpx"
	"github.com/seoforge/auditdesk/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.Recommendation, h.handleRecommend)
	mux.HandleFunc(http.MethodGet+" "+routepath.Recommendation, httpx.MethodNotAllowed(http.MethodPost))
}
