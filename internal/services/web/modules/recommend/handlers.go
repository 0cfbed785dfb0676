package recommend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/seoforge/auditdesk/internal/services/advisor"
	apperrors "github.com/seoforge/auditdesk/internal/services/web/platform/errors"
	"github.com/seoforge/auditdesk/internal/services/web/platform/httpx"
)

// RecommendationGateway is the slice of the advisor the route needs.
type RecommendationGateway interface {
	Recommend(ctx context.Context, in advisor.Input) (string, error)
}

type handlers struct {
	gateway RecommendationGateway
}

func newHandlers(gateway RecommendationGateway) handlers {
	return handlers{gateway: gateway}
}

// recommendationResponse always carries user-facing text. On failure the text
// explains the failure so clients can surface it directly.
type recommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

// writeRecommendation keeps the recommendation field present on every
// response, including failures.
func writeRecommendation(w http.ResponseWriter, status int, text string) {
	_ = httpx.WriteJSON(w, status, recommendationResponse{Recommendation: text})
}

func (h handlers) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		writeRecommendation(w, apperrors.HTTPStatus(apperrors.E(apperrors.KindUnavailable, "")), "The advisor service is unavailable.")
		return
	}

	var in advisor.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeRecommendation(w, http.StatusBadRequest, "The request body must be a JSON audit finding.")
		return
	}

	text, err := h.gateway.Recommend(httpx.RequestContext(r), in)
	status := http.StatusOK
	if err != nil {
		status = http.StatusInternalServerError
	}
	writeRecommendation(w, status, text)
}
