package tetraio

import (
	"encoding/json"

	"github.com/kanau/tetracard/pkg/stats"
)

// envelope is the common wrapper around every API response.
type envelope struct {
	Success bool            `json:"success"`
	Error   *apiError       `json:"error,omitempty"`
	Data    json.RawMessage `json:"data"`
}

type apiError struct {
	Msg string `json:"msg"`
}

// wireUser mirrors the user object inside GET /users/{name}. Hidden game
// counts are simply absent, so decoding starts from -1 defaults.
type wireUser struct {
	ID                string        `json:"_id"`
	Username          string        `json:"username"`
	Role              string        `json:"role"`
	Country           string        `json:"country"`
	XP                float64       `json:"xp"`
	GameTime          float64       `json:"gametime"`
	GamesPlayed       int           `json:"gamesplayed"`
	GamesWon          int           `json:"gameswon"`
	Badges            []stats.Badge `json:"badges"`
	Supporter         bool          `json:"supporter"`
	SupporterTier     int           `json:"supporter_tier"`
	FriendCount       int           `json:"friend_count"`
	AchievementRating int           `json:"ar"`
}

func newWireUser() wireUser {
	return wireUser{Role: "user", GamesPlayed: -1, GamesWon: -1, GameTime: -1}
}

func (w wireUser) toUser() stats.User {
	return stats.User{
		ID:                w.ID,
		Username:          w.Username,
		Role:              w.Role,
		Country:           w.Country,
		XP:                w.XP,
		GameTime:          w.GameTime,
		GamesPlayed:       w.GamesPlayed,
		GamesWon:          w.GamesWon,
		Badges:            w.Badges,
		Supporter:         w.Supporter,
		SupporterTier:     w.SupporterTier,
		FriendCount:       w.FriendCount,
		AchievementRating: w.AchievementRating,
	}
}

// wireLeague mirrors GET /users/{name}/summaries/league. Record is kept raw
// only to distinguish "never played ranked" (null) from a populated summary.
type wireLeague struct {
	Rank          string          `json:"rank"`
	TR            float64         `json:"tr"`
	Glicko        float64         `json:"glicko"`
	RD            float64         `json:"rd"`
	APM           float64         `json:"apm"`
	PPS           float64         `json:"pps"`
	VS            float64         `json:"vs"`
	Wins          int             `json:"wins"`
	Losses        int             `json:"losses"`
	Percentile    float64         `json:"percentile"`
	Standing      int             `json:"standing"`
	LocalStanding int             `json:"standing_local"`
	Record        json.RawMessage `json:"record"`
}

func newWireLeague() wireLeague {
	return wireLeague{Rank: "z", Standing: -1, LocalStanding: -1}
}

func (w wireLeague) empty() bool {
	return len(w.Record) == 0 || string(w.Record) == "null"
}

func (w wireLeague) toLeague() *stats.LeagueSummary {
	return &stats.LeagueSummary{
		Rank:          w.Rank,
		TR:            w.TR,
		Glicko:        w.Glicko,
		RD:            w.RD,
		APM:           w.APM,
		PPS:           w.PPS,
		VS:            w.VS,
		Wins:          w.Wins,
		Losses:        w.Losses,
		Percentile:    w.Percentile,
		Standing:      w.Standing,
		LocalStanding: w.LocalStanding,
	}
}

// wireEntry mirrors one row of GET /users/by/{mode}. The displayed value
// lives in a different field per mode; value() picks it.
type wireEntry struct {
	Username string  `json:"username"`
	Country  string  `json:"country"`
	XP       float64 `json:"xp"`
	AR       float64 `json:"ar"`
	TR       float64 `json:"tr"`
	Rank     string  `json:"rank"`
	Record   *struct {
		EndContext struct {
			FinalTime float64 `json:"finalTime"`
			Score     float64 `json:"score"`
		} `json:"endcontext"`
	} `json:"record"`
}

func (w wireEntry) value(mode stats.Mode) float64 {
	switch mode {
	case stats.ModeLeague:
		return w.TR
	case stats.Mode40Lines:
		if w.Record == nil {
			return 0
		}
		return w.Record.EndContext.FinalTime / 1000 // ms to seconds
	case stats.ModeBlitz:
		if w.Record == nil {
			return 0
		}
		return w.Record.EndContext.Score
	case stats.ModeXP:
		return w.XP
	case stats.ModeAR:
		return w.AR
	default:
		return 0
	}
}

func (w wireEntry) toEntry(position int, mode stats.Mode) stats.LeaderboardEntry {
	e := stats.LeaderboardEntry{
		Position: position,
		Username: w.Username,
		Country:  w.Country,
		Value:    w.value(mode),
	}
	if mode == stats.ModeLeague {
		e.Rank = w.Rank
	}
	return e
}
