package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatInt renders n with comma group separators ("1,234,567").
func FormatInt(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatFloat renders f rounded to the nearest integer with group separators.
func FormatFloat(f float64) string {
	return FormatInt(int64(math.Round(f)))
}

// FormatPlayTime humanizes a duration given in seconds.
// Under a minute it keeps two decimals of seconds, under an hour it reports
// minutes, otherwise hours.
func FormatPlayTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.2fs", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1fmin", seconds/60)
	default:
		return fmt.Sprintf("%.1fh", seconds/3600)
	}
}

// FormatValue renders a leaderboard value according to the mode's semantics:
// fixed-point seconds for timed modes, a two-decimal TR rating for the
// league, grouped integers for the score-like modes, and the bare number
// for everything else.
func FormatValue(m Mode, value float64) string {
	switch {
	case m.Timed():
		return fmt.Sprintf("%.3fs", value)
	case m == ModeLeague:
		return fmt.Sprintf("%.2f TR", value)
	case m == ModeBlitz || m == ModeXP || m == ModeAR:
		return FormatFloat(value)
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}
