package background

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/kanau/tetracard/pkg/render"
)

// RadialGlow produces a soft cyan light bloom centered on the canvas.
// Alpha falls off in concentric bands from the center outward; the heavy
// blur afterwards turns the banding into a continuous falloff.
func RadialGlow(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	cx, cy := float64(w/2), float64(h/2)
	maxR := math.Hypot(cx, cy)

	bloom(img, cx, cy, maxR, 10, 0.5*255, color.NRGBA{R: 0, G: 200, B: 255})

	return imaging.Blur(img, 50)
}

// LensFlare places a warm primary bloom at one third of the canvas and a
// trail of smaller, dimmer cool blooms stepping away from it toward the
// opposite side, then blurs heavily. The trail starts at the primary's own
// center, so the flare core carries a cool highlight over the warm bloom.
func LensFlare(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	cx, cy := float64(w/3), float64(h/3)
	bloom(img, cx, cy, 200, 5, 100, color.NRGBA{R: 255, G: 200, B: 100})

	for i := 0; i < 5; i++ {
		ox := cx + float64(i)*150
		oy := cy + float64(i)*80
		if ox >= float64(w) || oy >= float64(h) {
			continue
		}
		bloom(img, ox, oy, 50, 2, 50, color.NRGBA{R: 150, G: 150, B: 255})
	}

	return imaging.Blur(img, 40)
}

// bloom writes a banded radial falloff directly into img around (cx, cy):
// pixels take the alpha of the smallest concentric band covering them,
// alpha = scale·(1−band/maxR). Later blooms overwrite earlier ones where
// they overlap, matching paint-style (non-blending) composition.
func bloom(img *image.NRGBA, cx, cy, maxR, step, scale float64, c color.NRGBA) {
	b := img.Bounds()
	x0 := max(b.Min.X, int(cx-maxR))
	x1 := min(b.Max.X, int(cx+maxR)+1)
	y0 := max(b.Min.Y, int(cy-maxR))
	y1 := min(b.Max.Y, int(cy+maxR)+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d > maxR {
				continue
			}
			band := math.Ceil(d/step) * step
			if band < step {
				band = step
			}
			alpha := scale * (1 - band/maxR)
			if alpha < 0 {
				alpha = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, uint8(alpha)})
		}
	}
}

// EdgeLight produces horizontal blue light bands fading inward from the top
// and bottom edges, blurred into a soft rim glow.
func EdgeLight(w, h int) *image.NRGBA {
	const edgeWidth = 200

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	c := color.NRGBA{R: 0, G: 150, B: 255}

	for i := 0; i < edgeWidth && i < h; i++ {
		alpha := uint8(150 * (1 - float64(i)/edgeWidth))
		fillRow(img, i, color.NRGBA{c.R, c.G, c.B, alpha})
	}
	for i := 0; i < edgeWidth && i < h; i++ {
		alpha := uint8(150 * (1 - float64(i)/edgeWidth))
		fillRow(img, h-1-i, color.NRGBA{c.R, c.G, c.B, alpha})
	}

	return imaging.Blur(img, 30)
}

func fillRow(img *image.NRGBA, y int, c color.NRGBA) {
	w := img.Bounds().Dx()
	for x := 0; x < w; x++ {
		img.SetNRGBA(x, y, c)
	}
}

// Sparkle scatters k four-point cross shapes of random size and opacity,
// softened with a small blur.
func Sparkle(w, h, k int, seed int64) *image.NRGBA {
	rng := newRand(seed)
	dc := gg.NewContext(w, h)
	dc.SetLineWidth(2)

	for i := 0; i < k; i++ {
		x := float64(rng.Intn(w))
		y := float64(rng.Intn(h))
		size := float64(2 + rng.Intn(7))

		dc.SetColor(color.NRGBA{255, 255, 255, uint8(100 + rng.Intn(156))})
		dc.DrawLine(x-size, y, x+size, y)
		dc.Stroke()
		dc.DrawLine(x, y-size, x, y+size)
		dc.Stroke()
	}

	return imaging.Blur(imaging.Clone(dc.Image()), 1.5)
}

// GlowWrap gives an existing layer an outer glow: a copy is blurred by the
// given radius and the original is composited back over it, so the halo
// bleeds past the original's opaque silhouette.
func GlowWrap(img image.Image, radius float64) *image.NRGBA {
	halo := imaging.Blur(img, radius)
	return render.Composite(halo, render.Layer{Image: img})
}
