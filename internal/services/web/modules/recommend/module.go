// Package recommend serves the remediation recommendation route.
package recommend

import (
	"net/http"

	"github.com/seoforge/auditdesk/internal/services/web/module"
	"github.com/seoforge/auditdesk/internal/services/web/routepath"
)

// Module provides the recommendation route.
type Module struct {
	gateway RecommendationGateway
}

// New returns a recommend module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a recommend module with an explicit advisor gateway.
func NewWithGateway(gateway RecommendationGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "recommend" }

// Healthy reports whether the recommend module has an operational gateway.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires the recommendation route handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.gateway)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Recommendation, Handler: mux}, nil
}
