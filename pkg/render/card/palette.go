package card

import (
	"image/color"
	"strings"

	"github.com/kanau/tetracard/pkg/render"
)

// rankPair is the gradient endpoints for a league tier.
type rankPair struct {
	start, end color.NRGBA
}

// rankColors maps lowercase tier labels to their gradient pairs. The table
// is built once at init and never mutated.
var rankColors = map[string]rankPair{
	"x":  pair("#A855F7", "#8B5CF6"),
	"u":  pair("#EC4899", "#A855F7"),
	"ss": pair("#EF4444", "#DC2626"),
	"s+": pair("#F97316", "#EA580C"),
	"s":  pair("#F59E0B", "#D97706"),
	"s-": pair("#FBBF24", "#F59E0B"),
	"a+": pair("#EAB308", "#CA8A04"),
	"a":  pair("#84CC16", "#65A30D"),
	"a-": pair("#22C55E", "#16A34A"),
	"b+": pair("#10B981", "#059669"),
	"b":  pair("#14B8A6", "#0D9488"),
	"b-": pair("#06B6D4", "#0891B2"),
	"c+": pair("#3B82F6", "#2563EB"),
	"c":  pair("#3B82F6", "#2563EB"),
	"c-": pair("#3B82F6", "#2563EB"),
	"d+": pair("#6B7280", "#4B5563"),
	"d":  pair("#6B7280", "#4B5563"),
	"z":  pair("#6B7280", "#4B5563"),
}

func pair(start, end string) rankPair {
	return rankPair{render.MustParseHex(start), render.MustParseHex(end)}
}

// RankColors returns the gradient endpoints for a tier label,
// case-insensitively. Unknown labels get the unranked neutral gray pair.
func RankColors(rank string) (start, end color.NRGBA) {
	p, ok := rankColors[strings.ToLower(rank)]
	if !ok {
		p = rankColors["z"]
	}
	return p.start, p.end
}
