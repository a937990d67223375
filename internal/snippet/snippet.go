// internal/snippet/snippet.go
//
// Copy-pasteable embed fragments.
//
// Generate produces the Markdown and HTML a project drops into its
// README: a badge image wrapped in a link to the install target.  The
// link target is picked in a fixed order — explicit override, then the
// config's homepage, then the best installer by platform priority.
// Values are interpolated verbatim, matching the badge renderer's
// no-escaping contract.

package snippet

import (
	"fmt"

	"github.com/installbridge/installbridge/internal/bridge"
)

// DefaultBadgePath is the conventional badge location next to the
// config file.
const DefaultBadgePath = "./install-badge.svg"

// Snippet holds both embed flavors for one config.
type Snippet struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// Generate builds embed fragments for cfg.  badgePath defaults to
// DefaultBadgePath when empty; installURL, when non-empty, overrides
// the homepage/installer link selection.
func Generate(cfg bridge.Config, badgePath, installURL string) Snippet {
	if badgePath == "" {
		badgePath = DefaultBadgePath
	}

	target := installURL
	if target == "" {
		target = cfg.Homepage
	}
	if target == "" {
		target = cfg.FirstInstaller()
	}

	alt := "Install " + cfg.Name
	return Snippet{
		Markdown: fmt.Sprintf("[![%s](%s)](%s)", alt, badgePath, target),
		HTML:     fmt.Sprintf(`<a href="%s"><img src="%s" alt="%s"></a>`, target, badgePath, alt),
	}
}
