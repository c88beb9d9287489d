package card

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/kanau/tetracard/pkg/fonts"
	"github.com/kanau/tetracard/pkg/render"
	"github.com/kanau/tetracard/pkg/stats"
)

// Leaderboard row geometry. Canvas height grows with the entry count, not
// the requested limit, in case the API returned fewer rows.
const (
	lbHeaderHeight = 100
	lbRowHeight    = 50
	lbBottomPad    = 40

	lbRankX  = 50
	lbNameX  = 120
	lbValueX = 500
)

// LeaderboardHeight returns the canvas height for the given row count.
func LeaderboardHeight(rows int) int {
	return lbHeaderHeight + rows*lbRowHeight + lbBottomPad
}

// Leaderboard renders a ranked listing: a title with the requested limit, a
// header rule, and one row per entry with position, username and a value
// formatted by the mode's semantics. A thin separator follows every row
// except the last.
func (r *Renderer) Leaderboard(mode stats.Mode, entries []stats.LeaderboardEntry, limit int) (*image.NRGBA, error) {
	height := LeaderboardHeight(len(entries))
	base := render.Solid(cardWidth, height, bgPrimary)
	dc := gg.NewContextForImage(base)

	title := r.fonts.Face(fonts.Bold, 32)
	entry := r.fonts.Face(fonts.Regular, 16)

	r.text(dc, fmt.Sprintf("%s Leaderboard - Top %d", mode.Title(), limit), marginX, 40, title, textPrimary)

	dc.SetColor(borderColor)
	dc.SetLineWidth(2)
	dc.DrawLine(marginX, lbHeaderHeight, cardWidth-marginX, lbHeaderHeight)
	dc.Stroke()

	for i, e := range entries {
		y := float64(lbHeaderHeight + i*lbRowHeight + 20)

		r.text(dc, fmt.Sprintf("#%d", e.Position), lbRankX, y, entry, textSecondary)
		r.text(dc, e.Username, lbNameX, y, entry, textPrimary)
		r.text(dc, stats.FormatValue(mode, e.Value), lbValueX, y, entry, textPrimary)

		if i < len(entries)-1 {
			sep := y + lbRowHeight - 10
			dc.SetColor(borderColor)
			dc.SetLineWidth(1)
			dc.DrawLine(marginX, sep, cardWidth-marginX, sep)
			dc.Stroke()
		}
	}

	return imaging.Clone(dc.Image()), nil
}
