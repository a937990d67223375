package server_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/installbridge/installbridge/internal/server"
)

const macUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"

func newRouter(t *testing.T, maxPayload int) http.Handler {
	t.Helper()
	return server.Router(server.Options{MaxPayloadBytes: maxPayload})
}

// encode packs a config document the way clients do: JSON → base64.
func encode(t *testing.T, doc map[string]any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(data)
}

func fullDoc() map[string]any {
	return map[string]any{
		"name": "Widget",
		"installers": map[string]any{
			"darwin": "https://dl.example.com/widget.dmg",
			"linux":  "https://dl.example.com/widget.AppImage",
		},
		"fallback": "https://example.com/download",
	}
}

func get(t *testing.T, h http.Handler, target, userAgent string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRedirect_DirectInstaller(t *testing.T) {
	t.Parallel()

	h := newRouter(t, 8192)
	rec := get(t, h, "/go?c="+url.QueryEscape(encode(t, fullDoc())), macUA)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://dl.example.com/widget.dmg", rec.Header().Get("Location"))
}

func TestRedirect_FallbackWhenNoInstaller(t *testing.T) {
	t.Parallel()

	h := newRouter(t, 8192)
	rec := get(t, h, "/go?c="+url.QueryEscape(encode(t, fullDoc())),
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/download", rec.Header().Get("Location"))
}

// An explicit ua query parameter beats the User-Agent header, which
// keeps the endpoint scriptable.
func TestRedirect_UAOverride(t *testing.T) {
	t.Parallel()

	h := newRouter(t, 8192)
	rec := get(t, h, "/go?ua=linux&c="+url.QueryEscape(encode(t, fullDoc())), macUA)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://dl.example.com/widget.AppImage", rec.Header().Get("Location"))
}

func TestRedirect_ListingWhenNowhereToGo(t *testing.T) {
	t.Parallel()

	doc := fullDoc()
	delete(doc, "fallback")
	h := newRouter(t, 8192)
	rec := get(t, h, "/go?ua=win32-box&c="+url.QueryEscape(encode(t, doc)), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Download Widget")
	assert.Contains(t, body, "https://dl.example.com/widget.dmg")
	assert.Contains(t, body, "https://dl.example.com/widget.AppImage")
}

func TestRedirect_MissingParam(t *testing.T) {
	t.Parallel()

	rec := get(t, newRouter(t, 8192), "/go", macUA)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRedirect_BadBase64(t *testing.T) {
	t.Parallel()

	rec := get(t, newRouter(t, 8192), "/go?c=%25%25not-base64%25%25", macUA)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "base64")
}

func TestRedirect_InvalidConfig(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"name": "X", "installers": map[string]any{}}
	rec := get(t, newRouter(t, 8192), "/go?c="+url.QueryEscape(encode(t, doc)), macUA)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one")
}

func TestRedirect_PayloadCeiling(t *testing.T) {
	t.Parallel()

	rec := get(t, newRouter(t, 16), "/go?c="+url.QueryEscape(encode(t, fullDoc())), macUA)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestBadge_SVG(t *testing.T) {
	t.Parallel()

	rec := get(t, newRouter(t, 8192), "/badge.svg?c="+url.QueryEscape(encode(t, fullDoc())), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "image/svg+xml")
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), ">Widget<")
}

func TestSnippets_JSON(t *testing.T) {
	t.Parallel()

	rec := get(t, newRouter(t, 8192), "/snippets?c="+url.QueryEscape(encode(t, fullDoc())), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var snip struct {
		Markdown string `json:"markdown"`
		HTML     string `json:"html"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snip))
	assert.Contains(t, snip.Markdown, "[![Install Widget]")
	assert.Contains(t, snip.HTML, "<a href=")
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := get(t, newRouter(t, 8192), "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

// Exercised over a real connection: headers added to the map after the
// handler's first Write are silently dropped by net/http, so a
// ResponseRecorder cannot prove these reach the wire.
func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newRouter(t, 8192))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.NotEmpty(t, resp.Header.Get("Content-Security-Policy"))
	assert.NotEmpty(t, resp.Header.Get("Referrer-Policy"))
}
