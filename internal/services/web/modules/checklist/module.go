// Package checklist serves the prioritized work view routes: listing,
// auto-prioritization, and CSV export.
package checklist

import (
	"net/http"

	"github.com/seoforge/auditdesk/internal/services/web/module"
	"github.com/seoforge/auditdesk/internal/services/web/routepath"
)

// Module provides checklist routes.
type Module struct {
	gateway ChecklistGateway
}

// New returns a checklist module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a checklist module with an explicit gateway.
func NewWithGateway(gateway ChecklistGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "checklist" }

// Healthy reports whether the checklist module has an operational gateway.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires checklist route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.gateway)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Checklist, Handler: mux}, nil
}
