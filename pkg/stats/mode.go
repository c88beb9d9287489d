package stats

import (
	"strings"

	"github.com/kanau/tetracard/pkg/errors"
)

// Mode identifies a game mode with its own leaderboard and value semantics.
type Mode string

// Supported game modes.
const (
	ModeLeague    Mode = "league" // ranked league, values are TR ratings
	Mode40Lines   Mode = "40l"    // timed sprint, values are seconds
	ModeBlitz     Mode = "blitz"  // two-minute score attack, values are points
	ModeXP        Mode = "xp"     // lifetime experience
	ModeAR        Mode = "ar"     // achievement rating
	ModeQuickPlay Mode = "qp"
	ModeZen       Mode = "zen"
)

var modes = map[Mode]string{
	ModeLeague:    "TETRA LEAGUE",
	Mode40Lines:   "40 LINES",
	ModeBlitz:     "BLITZ",
	ModeXP:        "XP",
	ModeAR:        "ACHIEVEMENT RATING",
	ModeQuickPlay: "QUICK PLAY",
	ModeZen:       "ZEN",
}

// ParseMode validates a mode string (case-insensitive).
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(s))
	if _, ok := modes[m]; !ok {
		return "", errors.New(errors.ErrCodeInvalidMode, "unknown mode: %s", s)
	}
	return m, nil
}

// Title returns the display name for the mode.
func (m Mode) Title() string {
	if title, ok := modes[m]; ok {
		return title
	}
	return strings.ToUpper(string(m))
}

// Timed reports whether the mode's values are durations rather than points.
func (m Mode) Timed() bool {
	return m == Mode40Lines
}
