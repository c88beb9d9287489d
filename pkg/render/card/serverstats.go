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

// ServerStats renders the server-wide counters as a fixed three-column
// grid of labeled values below a title line.
func (r *Renderer) ServerStats(s stats.ServerStats) (*image.NRGBA, error) {
	base := render.Solid(cardWidth, cardHeight, bgPrimary)
	dc := gg.NewContextForImage(base)

	title := r.fonts.Face(fonts.Bold, 32)
	label := r.fonts.Face(fonts.Regular, 14)
	value := r.fonts.Face(fonts.Bold, 24)

	r.text(dc, "Server Statistics", marginX, 40, title, textPrimary)

	cells := []struct {
		label string
		value string
	}{
		{"Players Online", stats.FormatInt(s.UserCount)},
		{"Registered Accounts", stats.FormatInt(s.TotalAccounts)},
		{"Anonymous Users", stats.FormatInt(s.AnonCount)},
		{"Ranked Players", stats.FormatInt(s.RankedCount)},
		{"Records", stats.FormatInt(s.RecordCount)},
		{"Games Played", stats.FormatInt(s.GamesPlayed)},
		{"Games Finished", stats.FormatInt(s.GamesFinished)},
		{"Play Time", fmt.Sprintf("%sh", stats.FormatFloat(s.GameTime/3600))},
		{"Pieces Placed", stats.FormatInt(s.PiecesPlaced)},
		{"Key Presses", stats.FormatInt(s.Inputs)},
	}

	const (
		cols      = 3
		colWidth  = (cardWidth - 2*marginX) / cols
		rowHeight = 80
		startY    = 120
	)

	for i, cell := range cells {
		x := float64(marginX + (i%cols)*colWidth)
		y := float64(startY + (i/cols)*rowHeight)

		r.text(dc, cell.label, x, y, label, textSecondary)
		r.text(dc, cell.value, x, y+25, value, textPrimary)
	}

	return imaging.Clone(dc.Image()), nil
}
