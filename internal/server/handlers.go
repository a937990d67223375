// internal/server/handlers.go
//
// Request handlers for the bridge redirect service.
//
/*
Context
--------
All three content handlers share one input convention: the project's
configuration arrives base64-encoded in the `c` query parameter.  The
payload ceiling is enforced on the *encoded* length, before any decode
or parse work, so oversized requests are rejected for pennies.

`/go` is the reason this server exists.  It classifies the caller's OS
(an explicit `ua` override beats the User-Agent header, which keeps the
endpoint testable from curl), resolves the install target, and answers
with a 302 to the installer, a 302 to the fallback link, or an inline
HTML page listing every configured platform when there is nowhere to
redirect to.

Validation failures are user error, not server error: they come back as
400 with the accumulated error list as JSON, mirroring the ParseResult
shape the CLI prints.
*/
package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/installbridge/installbridge/internal/badge"
	"github.com/installbridge/installbridge/internal/bridge"
	"github.com/installbridge/installbridge/internal/metrics"
	"github.com/installbridge/installbridge/internal/platform"
	"github.com/installbridge/installbridge/internal/snippet"
)

type handler struct {
	opts Options
}

/*──────────────────────────── /go ──────────────────────────────────────────*/

func (h *handler) redirect(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.decodeConfig(w, r)
	if !ok {
		return
	}

	rawUA := r.URL.Query().Get("ua")
	if rawUA == "" {
		rawUA = r.UserAgent()
	}
	p := platform.Detect(rawUA)
	metrics.DetectedPlatformTotal.WithLabelValues(p.String()).Inc()

	target := bridge.Resolve(*cfg, p)
	switch {
	case target.Available:
		metrics.RedirectTotal.WithLabelValues("direct").Inc()
		http.Redirect(w, r, target.URL, http.StatusFound)
	case target.Fallback != "":
		metrics.RedirectTotal.WithLabelValues("fallback").Inc()
		http.Redirect(w, r, target.Fallback, http.StatusFound)
	default:
		metrics.RedirectTotal.WithLabelValues("listing").Inc()
		writeListing(w, *cfg)
	}

	zap.S().Infow("redirect",
		"platform", p,
		"available", target.Available,
		"name", cfg.Name,
	)
}

/*──────────────────────────── /badge.svg ───────────────────────────────────*/

func (h *handler) badge(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.decodeConfig(w, r)
	if !ok {
		return
	}

	metrics.BadgesRenderedTotal.Inc()
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(badge.Render(*cfg)))
}

/*──────────────────────────── /snippets ────────────────────────────────────*/

func (h *handler) snippets(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.decodeConfig(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	snip := snippet.Generate(*cfg, q.Get("badge_path"), q.Get("url"))
	writeJSON(w, http.StatusOK, snip)
}

/*──────────────────────────── /healthz ─────────────────────────────────────*/

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

/*──────────────────────────── shared plumbing ──────────────────────────────*/

// decodeConfig extracts, size-checks, decodes, and parses the inline
// configuration.  On failure it writes the error response and returns
// ok=false; handlers just bail.
func (h *handler) decodeConfig(w http.ResponseWriter, r *http.Request) (*bridge.Config, bool) {
	encoded := r.URL.Query().Get("c")
	if encoded == "" {
		writeErrors(w, http.StatusBadRequest, []string{"missing required query parameter \"c\""})
		return nil, false
	}
	if h.opts.MaxPayloadBytes > 0 && len(encoded) > h.opts.MaxPayloadBytes {
		metrics.ParseErrorsTotal.Inc()
		writeErrors(w, http.StatusRequestEntityTooLarge,
			[]string{"config payload exceeds size limit"})
		return nil, false
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Query strings often arrive URL-safe encoded; accept both.
		raw, err = base64.URLEncoding.DecodeString(encoded)
	}
	if err != nil {
		metrics.ParseErrorsTotal.Inc()
		writeErrors(w, http.StatusBadRequest, []string{"config payload is not valid base64"})
		return nil, false
	}

	res := bridge.Parse(string(raw))
	if !res.Success {
		metrics.ParseErrorsTotal.Inc()
		writeErrors(w, http.StatusBadRequest, res.Errors)
		return nil, false
	}
	return res.Config, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrors(w http.ResponseWriter, status int, errs []string) {
	writeJSON(w, status, map[string]any{"success": false, "errors": errs})
}
