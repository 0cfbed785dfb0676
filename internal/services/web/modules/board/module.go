// Package board serves the audit dataset routes: listing, row edits, reset,
// and CSV export.
package board

import (
	"net/http"

	"github.com/seoforge/auditdesk/internal/services/web/module"
	"github.com/seoforge/auditdesk/internal/services/web/routepath"
)

// Module provides audit dataset routes.
type Module struct {
	gateway DatasetGateway
}

// New returns a board module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a board module with an explicit dataset gateway.
func NewWithGateway(gateway DatasetGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "board" }

// Healthy reports whether the board module has an operational gateway.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires board route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.gateway)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Dataset, Handler: mux}, nil
}
