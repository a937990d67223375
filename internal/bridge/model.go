// internal/bridge/model.go
//
// Typed model for the install-bridge configuration.
//
// Context
// -------
// One `install-bridge.json` per project describes where each platform's
// installer lives plus optional fallback links and badge styling.  The
// structs below mirror that wire format exactly; `Validate` in this
// package checks the *untyped* decode of the same document, so a Config
// value in hand is always assumed to have passed validation already.
//
// All types here are plain values.  Nothing in this package touches the
// filesystem, the network, or a logger.

package bridge

import "github.com/installbridge/installbridge/internal/platform"

// Badge styling defaults, applied wherever the badge block or one of
// its fields is absent.
const (
	DefaultLabel = "Install"
	DefaultColor = "#0366d6"
	DefaultStyle = "flat"
)

// BadgeOptions controls the rendered badge.  All fields are optional;
// zero values fall back to the package defaults.
type BadgeOptions struct {
	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
	Style string `json:"style,omitempty"`
}

// Config is one project's install metadata.
type Config struct {
	Name       string                       `json:"name"`
	Installers map[platform.Platform]string `json:"installers"`
	Homepage   string                       `json:"homepage,omitempty"`
	Fallback   string                       `json:"fallback,omitempty"`
	Badge      *BadgeOptions                `json:"badge,omitempty"`
}

// BadgeLabel returns the configured badge label or DefaultLabel.
func (c Config) BadgeLabel() string {
	if c.Badge != nil && c.Badge.Label != "" {
		return c.Badge.Label
	}
	return DefaultLabel
}

// BadgeColor returns the configured badge color or DefaultColor.
func (c Config) BadgeColor() string {
	if c.Badge != nil && c.Badge.Color != "" {
		return c.Badge.Color
	}
	return DefaultColor
}

// BadgeStyle returns the configured badge style or DefaultStyle.
func (c Config) BadgeStyle() string {
	if c.Badge != nil && c.Badge.Style != "" {
		return c.Badge.Style
	}
	return DefaultStyle
}

// FirstInstaller walks platform.Order and returns the first configured
// installer URL.  When none of the canonical platforms is present it
// falls back to an arbitrary remaining entry, and to "" on an empty or
// nil map.  Used for badge/snippet default link selection.
func (c Config) FirstInstaller() string {
	for _, p := range platform.Order {
		if url, ok := c.Installers[p]; ok {
			return url
		}
	}
	for _, url := range c.Installers {
		return url
	}
	return ""
}

// ValidationResult accumulates validation errors in check order.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ParseResult is the outcome of deserializing and validating raw text.
type ParseResult struct {
	Success bool     `json:"success"`
	Config  *Config  `json:"config,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Target is the resolved install destination for one platform.  URL is
// set only when Available; Fallback only when not.  Fallback may be
// empty even when unavailable — the caller decides what that means
// (the HTTP host renders a download listing, the CLI prints a notice).
type Target struct {
	Available bool              `json:"available"`
	Platform  platform.Platform `json:"platform"`
	URL       string            `json:"url,omitempty"`
	Fallback  string            `json:"fallback,omitempty"`
}
