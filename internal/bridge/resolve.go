// internal/bridge/resolve.go
//
// Install-target resolution.
//
// Resolve is the decision point the HTTP redirector and the CLI both
// call: given a validated config and a detected platform, pick the
// direct installer URL or fall back.  It never fails — a nil installers
// map reads as empty, and an absent fallback is a legitimate outcome,
// not an error.

package bridge

import "github.com/installbridge/installbridge/internal/platform"

// Resolve picks the install destination for p.  When an installer is
// configured for p the target is available and carries that URL;
// otherwise the target carries `fallback`, then `homepage`, then
// nothing, in that order of preference.
func Resolve(cfg Config, p platform.Platform) Target {
	if url, ok := cfg.Installers[p]; ok {
		return Target{Available: true, Platform: p, URL: url}
	}

	fallback := cfg.Fallback
	if fallback == "" {
		fallback = cfg.Homepage
	}
	return Target{Platform: p, Fallback: fallback}
}
