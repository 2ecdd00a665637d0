package types

import (
	"strconv"
	"time"
)

// ProfileID identifies a player on aoe4world.
type ProfileID int64

func (id ProfileID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Profile is a player's profile and per-mode statistics.
type Profile struct {
	// Name of the player.
	Name string `json:"name"`
	// ProfileID of the player on aoe4world.
	ProfileID ProfileID `json:"profile_id"`
	// SteamID of the player, when linked.
	SteamID string `json:"steam_id,omitempty"`
	// SiteURL is the profile page on aoe4world.
	SiteURL string `json:"site_url,omitempty"`
	// Country is the ISO 3166-1 alpha-2 country code, when set.
	Country string `json:"country,omitempty"`
	// Avatars used by the player.
	Avatars *Avatars `json:"avatars,omitempty"`
	// Social links of the player.
	Social *Social `json:"social,omitempty"`
	// Modes holds statistics per game mode.
	Modes *GameModes `json:"modes,omitempty"`
}

// Avatars links the player avatar at several sizes.
type Avatars struct {
	Small  string `json:"small,omitempty"`
	Medium string `json:"medium,omitempty"`
	Full   string `json:"full,omitempty"`
}

// Social holds links to a player's social accounts. Absent accounts are
// empty strings.
type Social struct {
	Twitch     string `json:"twitch,omitempty"`
	YouTube    string `json:"youtube,omitempty"`
	Liquipedia string `json:"liquipedia,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
	Reddit     string `json:"reddit,omitempty"`
	Instagram  string `json:"instagram,omitempty"`
}

// GameModes holds per-mode statistics. Modes the player has not played
// are nil. For rm_solo and rm_team the rating is ranked points; for the
// sized modes it is ELO.
type GameModes struct {
	RMSolo *GameModeStats `json:"rm_solo,omitempty"`
	RMTeam *GameModeStats `json:"rm_team,omitempty"`
	RM1v1  *GameModeStats `json:"rm_1v1,omitempty"`
	RM2v2  *GameModeStats `json:"rm_2v2,omitempty"`
	RM3v3  *GameModeStats `json:"rm_3v3,omitempty"`
	RM4v4  *GameModeStats `json:"rm_4v4,omitempty"`
	QM1v1  *GameModeStats `json:"qm_1v1,omitempty"`
	QM2v2  *GameModeStats `json:"qm_2v2,omitempty"`
	QM3v3  *GameModeStats `json:"qm_3v3,omitempty"`
	QM4v4  *GameModeStats `json:"qm_4v4,omitempty"`
}

// GameModeStats is a player's record in one game mode.
type GameModeStats struct {
	// Rating is ranked points or ELO depending on the mode.
	Rating int `json:"rating"`
	// MaxRating is the highest rating of all time.
	MaxRating int `json:"max_rating,omitempty"`
	// MaxRating7D is the highest rating within the last 7 days.
	MaxRating7D int `json:"max_rating_7d,omitempty"`
	// MaxRating1M is the highest rating within the last month.
	MaxRating1M int `json:"max_rating_1m,omitempty"`
	// Rank is the position on the leaderboard.
	Rank int `json:"rank,omitempty"`
	// Streak is how many games have been won (positive) or lost
	// (negative) in a row.
	Streak int `json:"streak,omitempty"`
	// GamesCount is how many games have been played.
	GamesCount int `json:"games_count,omitempty"`
	// WinsCount is how many games have been won.
	WinsCount int `json:"wins_count,omitempty"`
	// LossesCount is how many games have been lost.
	LossesCount int `json:"losses_count,omitempty"`
	// DropsCount is how many games have been dropped.
	DropsCount int `json:"drops_count,omitempty"`
	// LastGameAt is when the last game was played.
	LastGameAt time.Time `json:"last_game_at,omitzero"`
	// WinRate is the win rate as a percentage out of 100.
	WinRate float64 `json:"win_rate,omitempty"`
	// RankLevel is the player's league and division.
	RankLevel *League `json:"rank_level,omitempty"`
	// RatingHistory maps game IDs to the rating after that game.
	RatingHistory map[string]RatingHistoryEntry `json:"rating_history,omitempty"`
}

// RatingHistoryEntry is one point in a player's rating history.
type RatingHistoryEntry struct {
	Rating     int `json:"rating"`
	Streak     int `json:"streak,omitempty"`
	GamesCount int `json:"games_count,omitempty"`
	WinsCount  int `json:"wins_count,omitempty"`
	DropsCount int `json:"drops_count,omitempty"`
}
