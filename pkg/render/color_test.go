package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/kanau/tetracard/pkg/errors"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#A855F7", color.NRGBA{0xA8, 0x55, 0xF7, 0xFF}, false},
		{"a855f7", color.NRGBA{0xA8, 0x55, 0xF7, 0xFF}, false},
		{"#000000", color.NRGBA{0, 0, 0, 0xFF}, false},
		{"#FFFFFF", color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}, false},
		{"#FFF", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
		{"#0F0F141", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("ParseHex(%q) error code = %q, want INVALID_FORMAT", tt.input, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#a855f7", "#0f0f14", "#ffffff", "#000000", "#6b7280"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", s, err)
		}
		if got := HexString(c); !strings.EqualFold(got, s) {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestLerp(t *testing.T) {
	a := color.NRGBA{0, 0, 0, 255}
	b := color.NRGBA{255, 255, 255, 255}

	// Endpoints
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, b)
	}

	// Identity for any factor
	for _, f := range []float64{0, 0.25, 0.5, 1} {
		if got := Lerp(a, a, f); got != a {
			t.Errorf("Lerp(a, a, %v) = %v, want %v", f, got, a)
		}
	}

	// Midpoint
	mid := Lerp(a, b, 0.5)
	if mid.R != 127 || mid.G != 127 || mid.B != 127 {
		t.Errorf("Lerp midpoint = %v, want (127,127,127)", mid)
	}

	// Factor is clamped, not extrapolated
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp(a, b, 2) = %v, want clamped to %v", got, b)
	}
	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Lerp(a, b, -1) = %v, want clamped to %v", got, a)
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex should panic on malformed input")
		}
	}()
	MustParseHex("not-a-color")
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.NRGBA{10, 20, 30, 255}, 128)
	want := color.NRGBA{10, 20, 30, 128}
	if c != want {
		t.Errorf("WithAlpha = %v, want %v", c, want)
	}
}
