// internal/ua/ua.go
//
// User-Agent parsing helpers for request logging.
//
// This wrapper isolates the third-party `github.com/avct/uasurfer` API
// so the rest of the codebase never sees its enums or structs.  It
// feeds the server's request log with browser/OS/device facts; the
// *redirect decision* never goes through here — that is
// platform.Detect, whose substring rules are part of the public
// contract.
package ua

import (
	"fmt"
	"strconv"

	surfer "github.com/avct/uasurfer"
)

// Info carries the UA attributes the request log records.
//
// Example (Chrome on macOS):
//
//	Browser   "Chrome"
//	Version   "125.0.6422"
//	OS        "MacOSX"
//	OSVersion "14.4"
//	Device    "Desktop"
//	IsBot     false
//
// Device will be one of: "Desktop", "Mobile", "Tablet", or "Other".
type Info struct {
	Browser   string
	Version   string
	OS        string
	OSVersion string
	Device    string
	IsBot     bool
	Raw       string
}

// Parse converts a raw header into an Info struct.  After the first
// call the underlying library reuses internal buffers, so Parse
// allocates only on rarely-seen strings.
func Parse(raw string) Info {
	parsed := surfer.Parse(raw)

	info := Info{
		Browser:   parsed.Browser.Name.String(),
		Version:   versionToString(parsed.Browser.Version),
		OS:        parsed.OS.Name.String(),
		OSVersion: versionToString(parsed.OS.Version),
		IsBot:     parsed.IsBot(),
		Raw:       raw,
	}

	switch parsed.DeviceType {
	case surfer.DeviceComputer:
		info.Device = "Desktop"
	case surfer.DeviceTablet:
		info.Device = "Tablet"
	case surfer.DevicePhone, surfer.DeviceWearable:
		info.Device = "Mobile"
	default:
		info.Device = "Other"
	}

	return info
}

// versionToString renders a semantic version in dotted form while
// trimming trailing zeros, e.g. 17.0.0 → "17", 17.3.0 → "17.3".
func versionToString(v surfer.Version) string {
	if v.Major == 0 && v.Minor == 0 && v.Patch == 0 {
		return ""
	}
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor != 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return strconv.Itoa(int(v.Major))
}
