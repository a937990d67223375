// internal/server/router.go
//
// Route table for the bridge redirect service.
//
// Context
// -------
// The server is stateless: every request carries its own configuration,
// base64-encoded in the `c` query parameter.  The handler chain is
//
//	security headers → request-info log → route handler
//
// and handlers call straight into the pure core (bridge, platform,
// badge).  Nothing here persists anything.

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the host tunables the handlers need.
type Options struct {
	// MaxPayloadBytes caps the encoded `c` parameter length before any
	// base64 work happens.  Zero disables the ceiling.
	MaxPayloadBytes int
}

// Router assembles the chi route table.
func Router(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(Security)
	r.Use(RequestLog)

	h := &handler{opts: opts}
	r.Get("/go", h.redirect)
	r.Get("/badge.svg", h.badge)
	r.Get("/snippets", h.snippets)
	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
