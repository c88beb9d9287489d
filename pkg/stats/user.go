// Package stats defines the domain model for player and server statistics.
//
// Values of these types arrive already validated from the stats API client
// (or a local fixture file) and are consumed by the card renderer. The
// renderer never reaches back to the network: whatever is absent here is
// absent in the output.
package stats

// Badge is a decorative achievement attached to a user profile.
type Badge struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Desc  string `json:"desc"`
	Group string `json:"group,omitempty"`
}

// User is a player profile.
//
// GamesPlayed and GamesWon are -1 when the player hides game counts;
// renderers skip those fields rather than showing zeros.
type User struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Role              string  `json:"role"`
	Country           string  `json:"country,omitempty"`
	XP                float64 `json:"xp"`
	GameTime          float64 `json:"gametime"` // seconds; negative when hidden
	GamesPlayed       int     `json:"gamesplayed"`
	GamesWon          int     `json:"gameswon"`
	Badges            []Badge `json:"badges,omitempty"`
	Supporter         bool    `json:"supporter"`
	SupporterTier     int     `json:"supporter_tier"`
	FriendCount       int     `json:"friend_count"`
	AchievementRating int     `json:"ar"`
}
