package background

import (
	"image"
	"image/color"
	"math"

	"github.com/kanau/tetracard/pkg/render"
)

// Axis selects the direction of a linear gradient.
type Axis int

// Gradient axes.
const (
	Horizontal Axis = iota
	Vertical
	Diagonal
)

// LinearGradient produces an opaque w×h color field fading from a to b
// along the given axis.
//
// The Diagonal axis interpolates by Euclidean distance from the top-left
// corner, not by projection onto the diagonal, so it reads as a corner-
// anchored radial sweep rather than a diagonal band. That quirk is part of
// the established card look and is kept deliberately.
func LinearGradient(w, h int, a, b color.NRGBA, axis Axis) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	switch axis {
	case Horizontal:
		for x := 0; x < w; x++ {
			c := render.Lerp(a, b, float64(x)/float64(w))
			for y := 0; y < h; y++ {
				img.SetNRGBA(x, y, c)
			}
		}
	case Vertical:
		for y := 0; y < h; y++ {
			c := render.Lerp(a, b, float64(y)/float64(h))
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	case Diagonal:
		maxDist := math.Hypot(float64(w), float64(h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				t := math.Hypot(float64(x), float64(y)) / maxDist
				img.SetNRGBA(x, y, render.Lerp(a, b, t))
			}
		}
	}

	return img
}

// RadialGradient produces an opaque w×h field fading from center at the
// canvas middle to edge at the corners. The interpolation factor is the
// distance from the center divided by the maximum corner distance, clamped
// to 1. Cost is O(w·h); fine for card-sized canvases.
func RadialGradient(w, h int, center, edge color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	cx, cy := float64(w/2), float64(h/2)
	maxDist := math.Hypot(cx, cy)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			img.SetNRGBA(x, y, render.Lerp(center, edge, math.Min(t, 1)))
		}
	}

	return img
}
