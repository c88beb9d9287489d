package background

import (
	"image/color"
	"testing"
)

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestLinearGradientHorizontal(t *testing.T) {
	img := LinearGradient(100, 1, black, white, Horizontal)

	if got := img.NRGBAAt(0, 0); got != black {
		t.Errorf("pixel at x=0 = %v, want black", got)
	}

	// Factor at x=99 is 99/100, so the channel lands at 252 (within rounding).
	got := img.NRGBAAt(99, 0)
	for _, ch := range []uint8{got.R, got.G, got.B} {
		if absDiff(ch, 252) > 1 {
			t.Errorf("pixel at x=99 = %v, want channels within 1 of 252", got)
		}
	}

	// Monotonic left to right
	prev := -1
	for x := 0; x < 100; x++ {
		v := int(img.NRGBAAt(x, 0).R)
		if v < prev {
			t.Fatalf("gradient not monotonic at x=%d: %d < %d", x, v, prev)
		}
		prev = v
	}
}

func TestLinearGradientVertical(t *testing.T) {
	img := LinearGradient(1, 100, black, white, Vertical)

	if got := img.NRGBAAt(0, 0); got != black {
		t.Errorf("pixel at y=0 = %v, want black", got)
	}
	if got := img.NRGBAAt(0, 99); absDiff(got.R, 252) > 1 {
		t.Errorf("pixel at y=99 = %v, want near 252", got)
	}
}

func TestLinearGradientDiagonal(t *testing.T) {
	img := LinearGradient(64, 64, black, white, Diagonal)

	// Interpolation follows distance from the top-left corner, so the two
	// off-diagonal corners are equally bright and the origin is darkest.
	origin := img.NRGBAAt(0, 0)
	topRight := img.NRGBAAt(63, 0)
	bottomLeft := img.NRGBAAt(0, 63)
	bottomRight := img.NRGBAAt(63, 63)

	if origin != black {
		t.Errorf("origin = %v, want black", origin)
	}
	if absDiff(topRight.R, bottomLeft.R) > 1 {
		t.Errorf("corner symmetry broken: top-right %v vs bottom-left %v", topRight, bottomLeft)
	}
	if bottomRight.R <= topRight.R {
		t.Errorf("far corner %v should be brighter than side corner %v", bottomRight, topRight)
	}
}

func TestRadialGradientSymmetry(t *testing.T) {
	img := RadialGradient(101, 101, white, black)

	// Pixels equidistant from the center agree within 1 unit of rounding.
	pairs := [][4]int{
		{50, 20, 50, 80}, // vertical mirror
		{20, 50, 80, 50}, // horizontal mirror
		{30, 30, 70, 70}, // diagonal mirror
		{30, 70, 70, 30},
	}
	for _, p := range pairs {
		c1 := img.NRGBAAt(p[0], p[1])
		c2 := img.NRGBAAt(p[2], p[3])
		if absDiff(c1.R, c2.R) > 1 {
			t.Errorf("pixels (%d,%d)=%v and (%d,%d)=%v differ beyond rounding", p[0], p[1], c1, p[2], p[3], c2)
		}
	}

	// Center carries the center color; corners the edge color.
	if got := img.NRGBAAt(50, 50); got != white {
		t.Errorf("center = %v, want white", got)
	}
	if got := img.NRGBAAt(0, 0); absDiff(got.R, 0) > 1 {
		t.Errorf("corner = %v, want near black", got)
	}
}

func TestGradientDimensions(t *testing.T) {
	for _, axis := range []Axis{Horizontal, Vertical, Diagonal} {
		img := LinearGradient(33, 17, black, white, axis)
		if b := img.Bounds(); b.Dx() != 33 || b.Dy() != 17 {
			t.Errorf("axis %d: bounds = %v, want 33x17", axis, b)
		}
	}
	if b := RadialGradient(25, 40, black, white).Bounds(); b.Dx() != 25 || b.Dy() != 40 {
		t.Errorf("radial bounds = %v, want 25x40", b)
	}
}
