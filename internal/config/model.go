// internal/config/model.go
//
// Typed host configuration for the installbridge server and CLI.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                          – dotenv values,
//   • `conf/bridge.yaml`                       – primary static file,
//   • `BRIDGE_`-prefixed environment overrides – highest precedence.
//
// This is *host* configuration only: listen address, payload ceiling,
// file locations.  The per-project `install-bridge.json` document is a
// different thing entirely and is handled by internal/bridge.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"` — Koanf ignores yaml
//     tags unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not set it.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.  MaxPayloadBytes caps the size of the
// base64 config accepted on the query string *before* decoding; the
// core parser itself has no size opinion.
type HTTP struct {
	ListenAddr      string `koanf:"listen_addr"       validate:"required,hostname_port"`
	ForceHTTPS      bool   `koanf:"force_https"`
	MaxPayloadBytes int    `koanf:"max_payload_bytes" validate:"gte=0"`
}

//
// Project section
//

// Project names the conventional on-disk artifacts the CLI reads and
// writes at the project root.
type Project struct {
	ConfigFile string `koanf:"config_file" validate:"required"`
	BadgeFile  string `koanf:"badge_file"  validate:"required"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime — never set in YAML or env.  The loader
// discovers Root (BRIDGE_ROOT override or cwd climb) so later code can
// build absolute file paths.
type Paths struct {
	Root string
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads for the process lifetime.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Project Project `koanf:"project"`
	Paths   Paths   `koanf:"-"`
}

// Defaults applied before any overlay so a bare `installbridge serve`
// works without a conf directory.
var defaults = map[string]any{
	"http.listen_addr":       ":8080",
	"http.force_https":       false,
	"http.max_payload_bytes": 8192,
	"project.config_file":    "install-bridge.json",
	"project.badge_file":     "install-badge.svg",
}
