// internal/server/middleware.go
//
// HTTP middleware for the bridge service.
//
/*
Context
--------
Security injects baseline headers on every response.  The CSP allows
`data:` images because badge snippets are commonly previewed inline.
Headers are set *before* next.ServeHTTP — the header map is snapshotted
at the handler's first Write, so later additions never reach the wire.
Handlers that need a different value can still overwrite theirs before
writing the body.

RequestLog parses the User-Agent through internal/ua and emits one
structured line per request.  This is observability only — the redirect
decision re-classifies the header through platform.Detect, whose rules
are contractual.
*/
package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/installbridge/installbridge/internal/ua"
)

// Security sets security headers for every response.
func Security(next http.Handler) http.Handler {
	const (
		csp = "default-src 'self'; img-src 'self' data:; object-src 'none'; " +
			"base-uri 'self'; frame-ancestors 'none'"
		xfo   = "DENY"
		nosn  = "nosniff"
		refer = "strict-origin-when-cross-origin"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Frame-Options", xfo)
		h.Set("X-Content-Type-Options", nosn)
		h.Set("Referrer-Policy", refer)

		next.ServeHTTP(w, r)
	})
}

// RequestLog logs one line per request with parsed UA facts.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		info := ua.Parse(r.UserAgent())

		next.ServeHTTP(w, r)

		zap.S().Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"browser", info.Browser,
			"os", info.OS,
			"device", info.Device,
			"bot", info.IsBot,
			"elapsed", time.Since(start),
		)
	})
}
