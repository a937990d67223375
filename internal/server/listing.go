// internal/server/listing.go
//
// Inline download-listing page.
//
// Served when resolution finds neither an installer nor a fallback for
// the caller's platform: a minimal HTML page linking every configured
// installer, ordered by the canonical platform priority with any
// non-canonical extras (already rejected by validation, but the layout
// tolerates them) appended after.

package server

import (
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/installbridge/installbridge/internal/bridge"
	"github.com/installbridge/installbridge/internal/platform"
)

var listingTmpl = template.Must(template.New("listing").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Download {{.Name}}</title></head>
<body>
<h1>Download {{.Name}}</h1>
<p>No installer matched your platform. Available downloads:</p>
<ul>
{{range .Links}}  <li><a href="{{.URL}}">{{.Title}}</a></li>
{{end}}</ul>
{{if .Homepage}}<p><a href="{{.Homepage}}">Project homepage</a></p>{{end}}
</body>
</html>
`))

type listingLink struct {
	Title string
	URL   string
}

type listingData struct {
	Name     string
	Homepage string
	Links    []listingLink
}

// platformTitles are the human names shown on the listing page.
var platformTitles = map[platform.Platform]string{
	platform.Darwin: "macOS",
	platform.Win32:  "Windows",
	platform.Linux:  "Linux",
}

func writeListing(w http.ResponseWriter, cfg bridge.Config) {
	data := listingData{Name: cfg.Name, Homepage: cfg.Homepage}

	seen := map[platform.Platform]bool{}
	for _, p := range platform.Order {
		if url, ok := cfg.Installers[p]; ok {
			data.Links = append(data.Links, listingLink{Title: platformTitles[p], URL: url})
			seen[p] = true
		}
	}

	var extras []string
	for p := range cfg.Installers {
		if !seen[p] {
			extras = append(extras, string(p))
		}
	}
	sort.Strings(extras)
	for _, p := range extras {
		data.Links = append(data.Links, listingLink{
			Title: capitalize(p),
			URL:   cfg.Installers[platform.Platform(p)],
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := listingTmpl.Execute(w, data); err != nil {
		http.Error(w, fmt.Sprintf("render listing: %v", err), http.StatusInternalServerError)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
