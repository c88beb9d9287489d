package background

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// HexGrid tiles the canvas with stroked regular hexagons of the given
// circumradius in a pointy-top axial layout: columns advance by 1.5×radius,
// rows by √3×radius, and alternating columns are shifted down by half a row.
// With that spacing the tiling is seamless at any canvas size.
func HexGrid(w, h int, radius, lineWidth float64, stroke color.NRGBA) *image.NRGBA {
	dc := gg.NewContext(w, h)
	dc.SetColor(stroke)
	dc.SetLineWidth(lineWidth)

	rowHeight := radius * math.Sqrt(3)
	colStep := 1.5 * radius

	maxRow := int(float64(h)/rowHeight) + 2
	maxCol := int(float64(w)/colStep) + 2

	for row := -1; row <= maxRow; row++ {
		for col := -1; col <= maxCol; col++ {
			x := float64(col) * colStep
			y := float64(row) * rowHeight
			if col%2 != 0 {
				y += rowHeight / 2
			}
			strokeHexagon(dc, x, y, radius)
		}
	}

	return imaging.Clone(dc.Image())
}

// strokeHexagon outlines one hexagon centered at (cx, cy) with vertices at
// multiples of 60° starting from the positive x axis.
func strokeHexagon(dc *gg.Context, cx, cy, radius float64) {
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		px := cx + radius*math.Cos(angle)
		py := cy + radius*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
	dc.Stroke()
}

// CarbonWeave approximates a carbon-fiber texture: a near-black base crossed
// by two families of parallel diagonal lines at ±45°, each in its own dark
// shade, roughened with low-amplitude per-pixel noise and softened by a
// light blur.
func CarbonWeave(w, h int, seed int64) *image.NRGBA {
	const spacing = 8

	dc := gg.NewContext(w, h)
	dc.SetRGB255(10, 10, 10)
	dc.Clear()
	dc.SetLineWidth(2)

	dc.SetRGB255(20, 20, 20)
	for i := 0; i < w+h; i += spacing {
		dc.DrawLine(float64(i), 0, 0, float64(i))
		dc.Stroke()
	}

	dc.SetRGB255(15, 15, 15)
	for i := -h; i < w; i += spacing {
		dc.DrawLine(float64(i), 0, float64(w), float64(w-i))
		dc.Stroke()
	}

	img := imaging.Clone(dc.Image())
	rng := newRand(seed)
	for i := 0; i < len(img.Pix); i += 4 {
		for ch := 0; ch < 3; ch++ {
			v := int(img.Pix[i+ch]) + rng.Intn(10) - 5
			img.Pix[i+ch] = uint8(max(0, min(255, v)))
		}
	}

	return imaging.Blur(img, 0.5)
}

// CircuitTrace draws a circuit-board pattern on a dark green base: the
// canvas is divided into cells of the given size, and each cell origin
// independently receives a horizontal segment, a vertical segment, both, or
// neither, plus a chance of a filled solder-via dot.
func CircuitTrace(w, h, cell int, seed int64) *image.NRGBA {
	rng := newRand(seed)

	dc := gg.NewContext(w, h)
	dc.SetRGB255(5, 15, 10)
	dc.Clear()
	dc.SetLineWidth(2)

	lineColor := color.NRGBA{0, 180, 100, 255}
	viaColor := color.NRGBA{0, 255, 150, 255}

	for x := 0; x < w; x += cell {
		for y := 0; y < h; y += cell {
			fx, fy := float64(x), float64(y)

			if rng.Float64() > 0.5 {
				dc.SetColor(lineColor)
				dc.DrawLine(fx, fy, fx+float64(cell), fy)
				dc.Stroke()
			}
			if rng.Float64() > 0.5 {
				dc.SetColor(lineColor)
				dc.DrawLine(fx, fy, fx, fy+float64(cell))
				dc.Stroke()
			}
			if rng.Float64() > 0.7 {
				dc.SetColor(viaColor)
				dc.DrawCircle(fx, fy, 3)
				dc.Fill()
			}
		}
	}

	return imaging.Clone(dc.Image())
}

// TechLines scatters n short horizontal-or-vertical segments in translucent
// blue-spectrum colors with dot markers at both endpoints, then blurs
// lightly so the strokes read as faint glowing traces.
func TechLines(w, h, n int, seed int64) *image.NRGBA {
	const maxLen = 150

	rng := newRand(seed)
	dc := gg.NewContext(w, h)

	for i := 0; i < n; i++ {
		x1 := rng.Intn(w)
		y1 := rng.Intn(h)
		x2, y2 := x1, y1

		if rng.Float64() > 0.5 {
			x2 = x1 + rng.Intn(min(maxLen, w-x1)+1)
		} else {
			y2 = y1 + rng.Intn(min(maxLen, h-y1)+1)
		}

		c := color.NRGBA{
			G: uint8(100 + rng.Intn(156)),
			B: uint8(200 + rng.Intn(56)),
			A: uint8(50 + rng.Intn(101)),
		}
		dc.SetColor(c)
		dc.SetLineWidth(float64(1 + rng.Intn(3)))
		dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
		dc.Stroke()

		dc.DrawCircle(float64(x1), float64(y1), 3)
		dc.Fill()
		dc.DrawCircle(float64(x2), float64(y2), 3)
		dc.Fill()
	}

	return imaging.Blur(imaging.Clone(dc.Image()), 1)
}

// Noise fills the canvas with dim uniform per-channel noise and blurs it to
// remove single-pixel harshness. Used as a subtle texture layer.
func Noise(w, h int, seed int64) *image.NRGBA {
	rng := newRand(seed)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(rng.Intn(50))
		img.Pix[i+1] = uint8(rng.Intn(50))
		img.Pix[i+2] = uint8(rng.Intn(50))
		img.Pix[i+3] = 255
	}

	return imaging.Blur(img, 2)
}

// GridOverlay draws evenly spaced 1px translucent lines at the given pitch,
// producing a faint blueprint grid for layering over dark backgrounds.
func GridOverlay(w, h, pitch int) *image.NRGBA {
	dc := gg.NewContext(w, h)
	dc.SetColor(color.NRGBA{100, 100, 100, 50})
	dc.SetLineWidth(1)

	for x := 0; x < w; x += pitch {
		dc.DrawLine(float64(x), 0, float64(x), float64(h))
		dc.Stroke()
	}
	for y := 0; y < h; y += pitch {
		dc.DrawLine(0, float64(y), float64(w), float64(y))
		dc.Stroke()
	}

	return imaging.Clone(dc.Image())
}

// CornerAccent draws a decorative frame fragment anchored at the top-left
// corner: one L-shaped stroke plus three nested bracket strokes. Dimensions
// are fixed per call site rather than derived from the consuming canvas.
func CornerAccent(w, h int) *image.NRGBA {
	dc := gg.NewContext(w, h)
	dc.SetColor(color.NRGBA{0, 200, 255, 200})

	dc.SetLineWidth(3)
	dc.DrawLine(0, 50, 50, 50)
	dc.Stroke()
	dc.DrawLine(50, 0, 50, 50)
	dc.Stroke()

	dc.SetLineWidth(2)
	for i := 0; i < 3; i++ {
		off := float64(i*15 + 10)
		dc.DrawLine(0, off, off, off)
		dc.Stroke()
		dc.DrawLine(off, 0, off, off)
		dc.Stroke()
	}

	return imaging.Clone(dc.Image())
}
