package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/kanau/tetracard/pkg/errors"
)

// ParseHex parses a 6-hex-digit color string with an optional leading "#".
// The returned color is fully opaque. Malformed input (wrong length or
// non-hex characters) fails with an INVALID_FORMAT error.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidFormat, "invalid hex color %q: expected 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid hex color %q", s)
	}

	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// MustParseHex parses a hex color and panics on malformed input.
// Reserved for static tables initialized at process start.
func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexString formats c as a lowercase 6-digit hex string with a leading "#".
// The alpha channel is not represented.
func HexString(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp linearly interpolates between a and b per channel.
// t is clamped to [0,1]; there is no extrapolation.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
