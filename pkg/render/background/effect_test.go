package background

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/kanau/tetracard/pkg/render"
)

func TestRadialGlowFallsOffOutward(t *testing.T) {
	img := RadialGlow(200, 120)

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 120 {
		t.Fatalf("bounds = %v, want 200x120", b)
	}

	center := img.NRGBAAt(100, 60).A
	edge := img.NRGBAAt(5, 5).A
	if center <= edge {
		t.Errorf("glow alpha should fall off outward: center %d, corner %d", center, edge)
	}
	if center == 0 {
		t.Error("glow center should not be transparent")
	}
}

func TestEdgeLightBands(t *testing.T) {
	img := EdgeLight(100, 600)

	top := img.NRGBAAt(50, 5).A
	middle := img.NRGBAAt(50, 300).A
	bottom := img.NRGBAAt(50, 595).A

	if top <= middle {
		t.Errorf("top band %d should be brighter than middle %d", top, middle)
	}
	if bottom <= middle {
		t.Errorf("bottom band %d should be brighter than middle %d", bottom, middle)
	}
}

func TestEdgeLightShortCanvas(t *testing.T) {
	// Canvas shorter than twice the band width: bands overlap, no panic.
	img := EdgeLight(50, 100)
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 100 {
		t.Fatalf("bounds = %v, want 50x100", b)
	}
}

func TestSparkleDeterministic(t *testing.T) {
	a := Sparkle(128, 128, 20, 42)
	b := Sparkle(128, 128, 20, 42)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed should produce identical sparkles")
	}

	c := Sparkle(128, 128, 20, 43)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("different seeds should move the sparkles")
	}
}

func TestLensFlare(t *testing.T) {
	img := LensFlare(600, 300)

	// Primary bloom sits at one third of the canvas.
	if a := img.NRGBAAt(200, 100).A; a == 0 {
		t.Error("primary bloom should be visible at (w/3, h/3)")
	}

	drawn := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("lens flare produced a fully transparent image")
	}
}

func TestLensFlareCoolCore(t *testing.T) {
	// On a small canvas every trail bloom except the first lands out of
	// bounds, leaving only the cool highlight over the warm core. The warm
	// bloom never exceeds blue 100, so a bluer core proves the highlight.
	img := LensFlare(200, 200)
	if b := img.NRGBAAt(66, 66).B; b <= 100 {
		t.Errorf("flare core blue = %d, want > 100 from the trail's first bloom", b)
	}
}

func TestLensFlareTrailExtent(t *testing.T) {
	// At 900x600 the trail fits through its fourth bloom; the region around
	// (cx+3*150, cy+3*80) is outside the warm bloom, so any light there is
	// cool (blue-dominant).
	img := LensFlare(900, 600)
	got := img.NRGBAAt(750, 440)
	if got.A == 0 {
		t.Fatal("trail bloom missing at (750, 440)")
	}
	if got.B <= got.R {
		t.Errorf("trail bloom should be cool: R=%d B=%d", got.R, got.B)
	}
}

func TestGlowWrap(t *testing.T) {
	// A small opaque square in the middle of a transparent canvas.
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 28; y < 36; y++ {
		for x := 28; x < 36; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}

	out := GlowWrap(src, 4)

	if b := out.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want unchanged 64x64", b)
	}

	// The original silhouette survives unchanged on top.
	if got := out.NRGBAAt(32, 32); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("center pixel = %v, want original opaque red", got)
	}

	// The halo extends past the square's edge.
	if a := out.NRGBAAt(38, 32).A; a == 0 {
		t.Error("halo should bleed beyond the original silhouette")
	}

	// Well away from the square everything stays transparent.
	if a := out.NRGBAAt(5, 5).A; a != 0 {
		t.Errorf("far corner should stay transparent, alpha = %d", a)
	}
}

func TestEffectsComposeOntoCards(t *testing.T) {
	// Effects are layered over opaque card bases; the stack keeps the base size.
	base := render.Solid(800, 600, color.NRGBA{15, 15, 20, 255})
	out := render.Composite(base,
		render.Layer{Image: RadialGlow(800, 600), Opacity: 0.3},
		render.Layer{Image: Sparkle(800, 600, 30, 7)},
	)
	if b := out.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("composited bounds = %v, want 800x600", b)
	}
}
