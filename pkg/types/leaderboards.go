package types

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/Sternrassler/aoe4world-client/pkg/pagination"
)

// LeaderboardFilter narrows a leaderboard listing.
type LeaderboardFilter struct {
	// Query filters entries by player name.
	Query string
	// Country filters entries by ISO 3166-1 alpha-2 country code.
	Country string
}

// Params renders the filter as URL query parameters.
func (f *LeaderboardFilter) Params() url.Values {
	v := url.Values{}
	if f == nil {
		return v
	}
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	if f.Country != "" {
		v.Set("country", f.Country)
	}
	return v
}

// LeaderboardInfo describes the leaderboard a page belongs to. The API
// flattens it into every leaderboard page beside the pagination block.
type LeaderboardInfo struct {
	// Key is the leaderboard category.
	Key Leaderboard `json:"key,omitempty"`
	// Query echoes the search query used when fetching, if any.
	Query string `json:"query,omitempty"`
	// Name of the leaderboard.
	Name string `json:"name,omitempty"`
	// ShortName of the leaderboard.
	ShortName string `json:"short_name,omitempty"`
	// SiteURL is the leaderboard page on aoe4world.
	SiteURL string `json:"site_url,omitempty"`
}

// LeaderboardPage is one page of leaderboard standings.
type LeaderboardPage struct {
	pagination.Pagination
	LeaderboardInfo
	Players []LeaderboardEntry `json:"players"`
	// Filters echoes the server-applied filters verbatim.
	Filters map[string]json.RawMessage `json:"filters,omitempty"`
}

// PageInfo returns the pagination block of this page.
func (p LeaderboardPage) PageInfo() pagination.Pagination { return p.Pagination }

// PageItems returns the standings on this page in rank order.
func (p LeaderboardPage) PageItems() []LeaderboardEntry { return p.Players }

// LeaderboardEntry is one row of a leaderboard: a subset of the player's
// profile plus their standing.
type LeaderboardEntry struct {
	// Name of the player.
	Name string `json:"name"`
	// ProfileID of the player on aoe4world.
	ProfileID ProfileID `json:"profile_id"`
	// SteamID of the player, when linked.
	SteamID string `json:"steam_id,omitempty"`
	// SiteURL is the profile page on aoe4world.
	SiteURL string `json:"site_url,omitempty"`
	// Avatars used by the player.
	Avatars *Avatars `json:"avatars,omitempty"`
	// Country is the ISO 3166-1 alpha-2 country code, when set.
	Country string `json:"country,omitempty"`
	// Social links of the player.
	Social *Social `json:"social,omitempty"`
	// TwitchURL is the player's Twitch stream.
	TwitchURL string `json:"twitch_url,omitempty"`
	// TwitchIsLive is true while the player's Twitch stream is live.
	TwitchIsLive bool `json:"twitch_is_live,omitempty"`
	// Rating is ranked points or ELO depending on the leaderboard.
	Rating int `json:"rating"`
	// MaxRating is the highest rating of all time.
	MaxRating int `json:"max_rating,omitempty"`
	// MaxRating7D is the highest rating within the last 7 days.
	MaxRating7D int `json:"max_rating_7d,omitempty"`
	// MaxRating1M is the highest rating within the last month.
	MaxRating1M int `json:"max_rating_1m,omitempty"`
	// Rank is the position on the leaderboard.
	Rank int `json:"rank"`
	// RankLevel is the player's league and division.
	RankLevel *League `json:"rank_level,omitempty"`
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
	// LastRatingChange is the rating delta from the most recent game.
	LastRatingChange int `json:"last_rating_change,omitempty"`
}
