package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/installbridge/installbridge/internal/config"
)

// t.Setenv forbids t.Parallel, so these run serially.

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BRIDGE_ROOT", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.ListenAddr)
	assert.Equal(t, 8192, cfg.HTTP.MaxPayloadBytes)
	assert.Equal(t, "install-bridge.json", cfg.Project.ConfigFile)
	assert.Equal(t, "install-badge.svg", cfg.Project.BadgeFile)
	assert.Same(t, cfg, config.Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BRIDGE_ROOT", t.TempDir())
	t.Setenv("BRIDGE_HTTP__LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("BRIDGE_HTTP__MAX_PAYLOAD_BYTES", "4096")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.ListenAddr)
	assert.Equal(t, 4096, cfg.HTTP.MaxPayloadBytes)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	root := t.TempDir()
	t.Setenv("BRIDGE_ROOT", root)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "conf"), 0o755))
	yaml := []byte("http:\n  listen_addr: \"0.0.0.0:9999\"\nproject:\n  badge_file: \"badge.svg\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "conf", "bridge.yaml"), yaml, 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", cfg.HTTP.ListenAddr)
	assert.Equal(t, "badge.svg", cfg.Project.BadgeFile)
	// Values absent from YAML keep their defaults.
	assert.Equal(t, "install-bridge.json", cfg.Project.ConfigFile)
}

func TestLoad_RejectsBadListenAddr(t *testing.T) {
	t.Setenv("BRIDGE_ROOT", t.TempDir())
	t.Setenv("BRIDGE_HTTP__LISTEN_ADDR", "not a listen addr")

	_, err := config.Load()
	require.Error(t, err)
}
