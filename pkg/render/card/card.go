// Package card composes finished statistics cards from domain records.
//
// Each card type runs the same phases: pick a background (solid base, plus
// a rank gradient for profile cards), size the canvas (fixed for profile
// and server cards, content-driven for leaderboards), then draw text at
// fixed absolute offsets. Optional fields are skipped outright when their
// data is absent; later fields keep their positions rather than flowing up.
//
// Rendering is pure computation: no I/O, no retries, no shared mutable
// state beyond the static palette and theme tables. Concurrent renders
// must use separate Renderer values because font faces are not safe for
// concurrent drawing.
package card

import (
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/kanau/tetracard/pkg/errors"
	"github.com/kanau/tetracard/pkg/fonts"
	"github.com/kanau/tetracard/pkg/observability"
	"github.com/kanau/tetracard/pkg/stats"
)

// Canvas geometry shared across card types.
const (
	cardWidth  = 800
	cardHeight = 600

	marginX = 40
)

// Request is one renderable card. The concrete types carry all domain data
// needed for layout; no fetching happens during rendering.
type Request interface {
	isRequest()
}

// UserCardRequest renders a profile card, with a ranked-league block when
// League is non-nil.
type UserCardRequest struct {
	User   stats.User
	League *stats.LeagueSummary
}

// LeagueCardRequest renders a league-focused profile card. A nil League
// degrades to the plain user layout.
type LeagueCardRequest struct {
	User   stats.User
	League *stats.LeagueSummary
}

// LeaderboardRequest renders a ranked listing. Limit is the requested row
// count for the title line; the canvas is sized by len(Entries), which may
// be smaller.
type LeaderboardRequest struct {
	Mode    stats.Mode
	Entries []stats.LeaderboardEntry
	Limit   int
}

// ServerStatsRequest renders the server-wide counter grid.
type ServerStatsRequest struct {
	Stats stats.ServerStats
}

func (UserCardRequest) isRequest()    {}
func (LeagueCardRequest) isRequest()  {}
func (LeaderboardRequest) isRequest() {}
func (ServerStatsRequest) isRequest() {}

// Renderer draws cards using a shared font source. The zero value is not
// usable; construct with New.
type Renderer struct {
	fonts *fonts.Source
}

// New returns a Renderer resolving faces from src. A nil src uses system
// fonts with embedded fallbacks.
func New(src *fonts.Source) *Renderer {
	if src == nil {
		src = &fonts.Source{}
	}
	return &Renderer{fonts: src}
}

// Render dispatches on the request type.
func (r *Renderer) Render(req Request) (*image.NRGBA, error) {
	kind := requestKind(req)
	observability.Render().OnRenderStart(kind)
	start := time.Now()

	img, err := r.render(req)
	observability.Render().OnRenderComplete(kind, time.Since(start), err)
	return img, err
}

func (r *Renderer) render(req Request) (*image.NRGBA, error) {
	switch q := req.(type) {
	case UserCardRequest:
		return r.UserCard(q.User, q.League)
	case LeagueCardRequest:
		return r.LeagueCard(q.User, q.League)
	case LeaderboardRequest:
		return r.Leaderboard(q.Mode, q.Entries, q.Limit)
	case ServerStatsRequest:
		return r.ServerStats(q.Stats)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown card request type %T", req)
	}
}

func requestKind(req Request) string {
	switch req.(type) {
	case UserCardRequest:
		return "user"
	case LeagueCardRequest:
		return "league"
	case LeaderboardRequest:
		return "leaderboard"
	case ServerStatsRequest:
		return "server-stats"
	default:
		return "unknown"
	}
}

// text draws s with its top-left corner at (x, y), matching the absolute
// offset layout contract.
func (r *Renderer) text(dc *gg.Context, s string, x, y float64, face font.Face, c color.Color) {
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawStringAnchored(s, x, y, 0, 1)
}
