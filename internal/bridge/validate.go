// internal/bridge/validate.go
//
// Structural validation of an untyped config document.
//
/*
Context
--------
Validate runs against the raw `any` produced by json.Unmarshal, not the
typed Config, so it can report a non-object document, a numeric `name`,
or a string `installers` block instead of panicking on a failed decode.
Errors accumulate in check order; only the not-an-object case
short-circuits, because nothing below it can be inspected.

Each installers key is checked twice, independently: once against the
closed platform set and once for URL well-formedness.  A single key can
therefore contribute two errors.  Keys are visited in sorted order so
the error list is deterministic across runs.

Validity is purely structural.  Reachability, HTTPS policy, and URL
safety are somebody else's problem; `file://` URLs are legal here.
*/
package bridge

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/installbridge/installbridge/internal/platform"
)

// Validate checks a decoded JSON document for structural and value
// correctness.  It never panics on malformed input and never inspects
// anything beyond the document itself.
func Validate(candidate any) ValidationResult {
	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		return ValidationResult{Errors: []string{"Config must be an object"}}
	}

	var errs []string

	if name, ok := obj["name"].(string); !ok || name == "" {
		errs = append(errs, "name is required and must be a string")
	}

	installers, ok := obj["installers"].(map[string]any)
	if !ok {
		errs = append(errs, "installers is required and must be an object")
	} else {
		if len(installers) == 0 {
			errs = append(errs, "at least one installer platform must be specified")
		}
		for _, key := range sortedKeys(installers) {
			if !platform.Platform(key).Valid() {
				errs = append(errs, fmt.Sprintf(
					"invalid platform %q: must be one of %s", key, validPlatformList()))
			}
			if !validURL(installers[key]) {
				errs = append(errs, fmt.Sprintf("installer URL for %q is not a valid URL", key))
			}
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateConfig re-checks an already-typed Config by round-tripping it
// through its untyped shape.  Handy for callers that build configs in
// code (the template builder, tests) rather than from raw JSON.
func ValidateConfig(cfg Config) ValidationResult {
	return Validate(cfg.asDocument())
}

// asDocument converts a typed Config to the map shape Validate expects.
func (c Config) asDocument() map[string]any {
	doc := map[string]any{"name": c.Name}
	installers := map[string]any{}
	for p, u := range c.Installers {
		installers[string(p)] = u
	}
	doc["installers"] = installers
	if c.Homepage != "" {
		doc["homepage"] = c.Homepage
	}
	if c.Fallback != "" {
		doc["fallback"] = c.Fallback
	}
	return doc
}

// validURL reports whether v is a string holding a well-formed absolute
// URL.  Any scheme is accepted, including file:, as long as there is an
// authority, a path, or opaque data after the scheme.
func validURL(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Path != "" || u.Opaque != ""
}

func validPlatformList() string {
	names := make([]string, len(platform.Order))
	for i, p := range platform.Order {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
