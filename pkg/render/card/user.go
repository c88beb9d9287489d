package card

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/kanau/tetracard/pkg/errors"
	"github.com/kanau/tetracard/pkg/fonts"
	"github.com/kanau/tetracard/pkg/render"
	"github.com/kanau/tetracard/pkg/render/background"
	"github.com/kanau/tetracard/pkg/stats"
)

// UserCard renders an 800×600 profile card. When league is non-nil the top
// third carries a horizontal gradient in the tier's colors at half opacity,
// and a league block (tier, rating, tempo stats, standing, win record) is
// drawn below the profile line. A nil league omits the block entirely; the
// remaining fields keep their positions.
func (r *Renderer) UserCard(u stats.User, league *stats.LeagueSummary) (*image.NRGBA, error) {
	return r.profileCard(u, league, false)
}

// LeagueCard is the league-focused variant of the profile card: the rating
// line additionally carries the Glicko estimate and its deviation. A nil
// league degrades to the plain user layout.
func (r *Renderer) LeagueCard(u stats.User, league *stats.LeagueSummary) (*image.NRGBA, error) {
	return r.profileCard(u, league, true)
}

func (r *Renderer) profileCard(u stats.User, league *stats.LeagueSummary, showGlicko bool) (*image.NRGBA, error) {
	if u.Username == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "user record has no username")
	}

	base := render.Solid(cardWidth, cardHeight, bgPrimary)
	img := base
	if league != nil && league.Rank != "" {
		start, end := RankColors(league.Rank)
		grad := background.LinearGradient(cardWidth, cardHeight/3, start, end, background.Horizontal)
		img = render.Composite(base, render.Layer{Image: grad, Opacity: 0.5})
	}

	dc := gg.NewContextForImage(img)

	large := r.fonts.Face(fonts.Bold, 36)
	medium := r.fonts.Face(fonts.Regular, 20)
	small := r.fonts.Face(fonts.Regular, 14)

	y := 40.0
	r.text(dc, u.Username, marginX, y, large, textPrimary)

	y += 60
	info := fmt.Sprintf("XP: %s  |  Play Time: %.1fh", stats.FormatFloat(u.XP), u.GameTime/3600)
	if u.GamesPlayed >= 0 {
		info += fmt.Sprintf("  |  Games: %d", u.GamesPlayed)
	}
	r.text(dc, info, marginX, y, medium, textSecondary)

	if league != nil {
		y += 80
		r.text(dc, fmt.Sprintf("%s Rank", strings.ToUpper(league.Rank)), marginX, y, large, textPrimary)

		y += 50
		rating := fmt.Sprintf("TR: %.2f", league.TR)
		if showGlicko {
			rating += fmt.Sprintf("  (Glicko %.1f ± %.1f)", league.Glicko, league.RD)
		}
		r.text(dc, rating, marginX, y, medium, textPrimary)

		y += 40
		tempo := fmt.Sprintf("APM: %.2f  |  PPS: %.2f  |  VS: %.2f", league.APM, league.PPS, league.VS)
		r.text(dc, tempo, marginX, y, medium, textSecondary)

		y += 40
		if league.Standing > 0 {
			standing := fmt.Sprintf("Global: #%s", stats.FormatInt(int64(league.Standing)))
			if league.Percentile > 0 {
				standing += fmt.Sprintf("  |  Top %.2f%%", league.Percentile)
			}
			r.text(dc, standing, marginX, y, small, textSecondary)
		}

		y += 40
		record := fmt.Sprintf("Wins: %d  |  Losses: %d  |  Win Rate: %.1f%%",
			league.Wins, league.Losses, league.WinRate())
		r.text(dc, record, marginX, y, small, textSecondary)
	}

	return imaging.Clone(dc.Image()), nil
}
