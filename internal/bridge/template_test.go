package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/installbridge/installbridge/internal/bridge"
	"github.com/installbridge/installbridge/internal/platform"
)

func TestTemplate_AlwaysValid(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"MyApp", "x", "Widget Factory", "日本語"} {
		cfg := bridge.Template(name)
		res := bridge.ValidateConfig(cfg)
		require.True(t, res.Valid, "template for %q: %v", name, res.Errors)
		assert.Equal(t, name, cfg.Name)
	}
}

func TestTemplate_DefaultName(t *testing.T) {
	t.Parallel()

	cfg := bridge.Template("")
	assert.Equal(t, bridge.DefaultAppName, cfg.Name)
}

func TestTemplate_CoversAllPlatforms(t *testing.T) {
	t.Parallel()

	cfg := bridge.Template("App")
	for _, p := range platform.Order {
		assert.Contains(t, cfg.Installers, p)
		assert.Contains(t, cfg.Installers[p], "App")
	}
	assert.NotEmpty(t, cfg.Homepage)
	assert.NotEmpty(t, cfg.Fallback)
	require.NotNil(t, cfg.Badge)
	assert.Equal(t, bridge.DefaultStyle, cfg.Badge.Style)
}
