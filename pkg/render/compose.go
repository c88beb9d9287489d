package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Layer is a raster buffer positioned within a target canvas, consumed by
// Composite. Layers are ephemeral: created and used within one render call.
type Layer struct {
	// Image is the layer's pixel data.
	Image image.Image

	// At is the layer origin within the base canvas. Pixels falling outside
	// the canvas bounds are silently clipped.
	At image.Point

	// Opacity scales the layer's alpha in [0,1]. Zero means fully opaque
	// (the field left at its default), matching the common case.
	Opacity float64
}

// Composite alpha-blends an ordered stack of layers onto a copy of base
// using the standard over operator, returning the merged buffer. The base is
// never mutated. Order is significant: compositing is only associative in
// the declared stacking order, so each card's layer order is part of its
// contract.
func Composite(base image.Image, layers ...Layer) *image.NRGBA {
	out := imaging.Clone(base)
	for _, l := range layers {
		opacity := l.Opacity
		if opacity == 0 {
			opacity = 1
		}
		out = imaging.Overlay(out, l.Image, l.At, opacity)
	}
	return out
}

// Solid returns a w×h buffer filled with a single color.
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}
