package stats

// LeagueSummary holds a player's ranked-league standing.
//
// It is always carried as *LeagueSummary: nil means the player has no ranked
// data at all, and card renderers must degrade to a user-only layout rather
// than drawing zeros.
type LeagueSummary struct {
	Rank          string  `json:"rank"` // tier label: "x", "ss", "a+", ... "z" = unranked
	TR            float64 `json:"tr"`
	Glicko        float64 `json:"glicko"`
	RD            float64 `json:"rd"`
	APM           float64 `json:"apm"`
	PPS           float64 `json:"pps"`
	VS            float64 `json:"vs"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Percentile    float64 `json:"percentile"`
	Standing      int     `json:"standing"`       // global standing, -1 when unranked
	LocalStanding int     `json:"standing_local"` // country standing, -1 when unranked
}

// WinRate returns the win percentage in [0,100], or 0 with no games played.
func (l *LeagueSummary) WinRate() float64 {
	total := l.Wins + l.Losses
	if total == 0 {
		return 0
	}
	return float64(l.Wins) / float64(total) * 100
}

// Ranked reports whether the summary carries an actual placement.
func (l *LeagueSummary) Ranked() bool {
	return l != nil && l.Rank != "" && l.Rank != "z"
}
