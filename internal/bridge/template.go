// internal/bridge/template.go
//
// Ready-to-edit starter configuration.
//
// `installbridge init` writes the output of Template verbatim, so the
// scaffold must always satisfy Validate — the example URLs are real
// absolute URLs, one per canonical platform, embedding the app name in
// the artifact filename.

package bridge

import "github.com/installbridge/installbridge/internal/platform"

// DefaultAppName is used when the caller does not name the app.
const DefaultAppName = "MyApp"

// Template builds a fully populated configuration for appName.  The
// result passes validation for any non-empty appName.
func Template(appName string) Config {
	if appName == "" {
		appName = DefaultAppName
	}
	return Config{
		Name: appName,
		Installers: map[platform.Platform]string{
			platform.Darwin: "https://example.com/downloads/" + appName + ".dmg",
			platform.Win32:  "https://example.com/downloads/" + appName + "-setup.exe",
			platform.Linux:  "https://example.com/downloads/" + appName + ".AppImage",
		},
		Homepage: "https://example.com",
		Fallback: "https://example.com/download",
		Badge: &BadgeOptions{
			Label: DefaultLabel,
			Color: DefaultColor,
			Style: DefaultStyle,
		},
	}
}
