// internal/platform/platform.go
//
// Closed platform set and User-Agent classification.
//
// Context
// -------
// Every installer in a bridge config is keyed by one of exactly three
// platform identifiers.  `Unknown` exists only as a Detect output for
// user agents we cannot place; it is never a legal installers key, so
// validation and resolution code can range over `Order` alone.
//
// Detect deliberately uses fixed substring rules rather than a full
// UA parser: existing badge links in the wild rely on this exact
// classification (a bare "darwin" token must map to Darwin, which no
// general-purpose parser guarantees).  Request *logging* uses the
// richer `internal/ua` wrapper instead.

package platform

import "strings"

// Platform identifies an installer target.
type Platform string

const (
	Darwin  Platform = "darwin" // macOS, iOS, iPadOS
	Win32   Platform = "win32"  // Windows
	Linux   Platform = "linux"  // Linux, Android
	Unknown Platform = "unknown"
)

// Order is the fixed priority used whenever a single "best" installer
// must be chosen without a detected OS (badge and snippet defaults).
var Order = []Platform{Darwin, Win32, Linux}

// Valid reports whether p may appear as an installers key.
func (p Platform) Valid() bool {
	switch p {
	case Darwin, Win32, Linux:
		return true
	}
	return false
}

func (p Platform) String() string { return string(p) }

// Detect classifies a raw User-Agent header.  First match wins; the
// Windows check runs last because "win" is a substring of "darwin",
// and the Darwin check runs before Linux so desktop-Mac UAs with X11
// hints stay on Darwin.  Empty input maps to Unknown.  Detect is total
// and never panics.
func Detect(userAgent string) Platform {
	if userAgent == "" {
		return Unknown
	}
	ua := strings.ToLower(userAgent)

	for _, tok := range []string{"mac", "darwin", "iphone", "ipad"} {
		if strings.Contains(ua, tok) {
			return Darwin
		}
	}
	if strings.Contains(ua, "linux") || strings.Contains(ua, "android") {
		return Linux
	}
	if strings.Contains(ua, "win") {
		return Win32
	}
	return Unknown
}
