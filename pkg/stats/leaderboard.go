package stats

// LeaderboardEntry is one row of a ranked listing.
// Value carries seconds for timed modes and points otherwise; Rank is the
// league tier label and is empty outside the league mode.
type LeaderboardEntry struct {
	Position int     `json:"position"`
	Username string  `json:"username"`
	Country  string  `json:"country,omitempty"`
	Value    float64 `json:"value"`
	Rank     string  `json:"rank,omitempty"`
}

// ServerStats is the fixed set of server-wide counters.
type ServerStats struct {
	UserCount      int64   `json:"usercount"`
	TotalAccounts  int64   `json:"totalaccounts"`
	AnonCount      int64   `json:"anoncount"`
	RankedCount    int64   `json:"rankedcount"`
	RecordCount    int64   `json:"recordcount"`
	GamesPlayed    int64   `json:"gamesplayed"`
	GamesFinished  int64   `json:"gamesfinished"`
	GameTime       float64 `json:"gametime"` // seconds
	PiecesPlaced   int64   `json:"piecesplaced"`
	Inputs         int64   `json:"inputs"`
}
