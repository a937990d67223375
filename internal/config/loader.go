// internal/config/loader.go
//
// Host-configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from overlay layers
(highest precedence last):

  1. Built-in defaults (see model.go) — a bare binary must run.
  2. Optional `.env` at `<root>/conf/.env`.
  3. Optional `conf/bridge.yaml`.
  4. Environment variables prefixed `BRIDGE_`, where `__` maps to "."
     (e.g., `BRIDGE_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, the tree is unmarshalled into strongly-typed structs,
validated, enriched with the runtime root path, and cached in an
`atomic.Pointer` for lock-free reads.  `Reload()` calls `Load()` again
and swaps the pointer.

Logs use the global sugared logger (`zap.S()`) so early boot issues
surface even before the file logger is installed.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves BRIDGE_ROOT or climbs the cwd tree until it finds an
// install-bridge.json or a conf/bridge.yaml, so `go run ./cmd/bridge`
// works from any sub-directory.  Falls back to the cwd itself.
func rootDir() string {
	if r := os.Getenv("BRIDGE_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "install-bridge.json")); err == nil {
			return dir
		}
		if _, err := os.Stat(filepath.Join(dir, "conf", "bridge.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load merges defaults, .env, YAML, and env overrides, validates, and
// caches the result.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	yamlPath := filepath.Join(root, "conf", "bridge.yaml")
	if _, statErr := os.Stat(yamlPath); statErr == nil {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, err
		}
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	// Env overrides: BRIDGE_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider("BRIDGE_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "BRIDGE_")
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"max_payload_bytes", cfg.HTTP.MaxPayloadBytes,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config  { return current.Load() }
func Reload() error { _, err := Load(); return err }
