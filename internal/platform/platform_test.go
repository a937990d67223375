package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/installbridge/installbridge/internal/platform"
)

func TestDetect_Classification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ua   string
		want platform.Platform
	}{
		{"empty", "", platform.Unknown},
		{"mac desktop", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", platform.Darwin},
		{"bare darwin token", "darwin", platform.Darwin},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", platform.Darwin},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X)", platform.Darwin},
		{"windows 10", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", platform.Win32},
		{"linux x11", "Mozilla/5.0 (X11; Linux x86_64)", platform.Linux},
		{"android", "Mozilla/5.0 (Android 14; Mobile)", platform.Linux},
		{"curl", "curl/8.4.0", platform.Unknown},
		{"uppercase", "MOZILLA (WINDOWS NT)", platform.Win32},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, platform.Detect(tc.ua))
		})
	}
}

// Android user agents contain "linux" as well; they must classify as
// Linux, not fall through to the Windows check.
func TestDetect_AndroidStaysLinux(t *testing.T) {
	t.Parallel()

	got := platform.Detect("Mozilla/5.0 (Linux; Android 13; Pixel 7) wings")
	assert.Equal(t, platform.Linux, got)
}

func TestDetect_Total(t *testing.T) {
	t.Parallel()

	valid := map[platform.Platform]bool{
		platform.Darwin: true, platform.Win32: true,
		platform.Linux: true, platform.Unknown: true,
	}
	for _, ua := range []string{"", "x", "Mozilla", "🦊", "WiN dOwS", "what even is this"} {
		assert.True(t, valid[platform.Detect(ua)], "ua %q", ua)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, platform.Darwin.Valid())
	assert.True(t, platform.Win32.Valid())
	assert.True(t, platform.Linux.Valid())
	assert.False(t, platform.Unknown.Valid())
	assert.False(t, platform.Platform("freebsd").Valid())
}
