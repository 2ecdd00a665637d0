package types

import (
	"net/url"
	"time"

	"github.com/Sternrassler/aoe4world-client/pkg/pagination"
)

// GameKind is the type of game being played. Equivalent to Leaderboard
// but without the rm_solo and rm_team rollups.
type GameKind string

const (
	GameKindRM1v1  GameKind = "rm_1v1"
	GameKindRM2v2  GameKind = "rm_2v2"
	GameKindRM3v3  GameKind = "rm_3v3"
	GameKindRM4v4  GameKind = "rm_4v4"
	GameKindQM1v1  GameKind = "qm_1v1"
	GameKindQM2v2  GameKind = "qm_2v2"
	GameKindQM3v3  GameKind = "qm_3v3"
	GameKindQM4v4  GameKind = "qm_4v4"
	GameKindCustom GameKind = "custom"
)

var knownGameKinds = map[GameKind]struct{}{
	GameKindRM1v1: {}, GameKindRM2v2: {}, GameKindRM3v3: {}, GameKindRM4v4: {},
	GameKindQM1v1: {}, GameKindQM2v2: {}, GameKindQM3v3: {}, GameKindQM4v4: {},
	GameKindCustom: {},
}

// Known reports whether k is a game kind this library recognizes.
func (k GameKind) Known() bool {
	_, ok := knownGameKinds[k]
	return ok
}

// Leaderboard identifies which leaderboard a game counts towards.
// Equivalent to GameKind plus the rm_solo and rm_team rollups.
type Leaderboard string

const (
	// LeaderboardRMSolo is solo ranked; rating is ranked points.
	LeaderboardRMSolo Leaderboard = "rm_solo"
	// LeaderboardRMTeam is team ranked; rating is ranked points.
	LeaderboardRMTeam Leaderboard = "rm_team"
	LeaderboardRM1v1  Leaderboard = "rm_1v1"
	LeaderboardRM2v2  Leaderboard = "rm_2v2"
	LeaderboardRM3v3  Leaderboard = "rm_3v3"
	LeaderboardRM4v4  Leaderboard = "rm_4v4"
	LeaderboardQM1v1  Leaderboard = "qm_1v1"
	LeaderboardQM2v2  Leaderboard = "qm_2v2"
	LeaderboardQM3v3  Leaderboard = "qm_3v3"
	LeaderboardQM4v4  Leaderboard = "qm_4v4"
	LeaderboardCustom Leaderboard = "custom"
)

var knownLeaderboards = map[Leaderboard]struct{}{
	LeaderboardRMSolo: {}, LeaderboardRMTeam: {},
	LeaderboardRM1v1: {}, LeaderboardRM2v2: {}, LeaderboardRM3v3: {}, LeaderboardRM4v4: {},
	LeaderboardQM1v1: {}, LeaderboardQM2v2: {}, LeaderboardQM3v3: {}, LeaderboardQM4v4: {},
	LeaderboardCustom: {},
}

// Known reports whether b is a leaderboard this library recognizes.
func (b Leaderboard) Known() bool {
	_, ok := knownLeaderboards[b]
	return ok
}

// GameResult is the outcome of a game for one player.
type GameResult string

const (
	ResultWin  GameResult = "win"
	ResultLoss GameResult = "loss"
	// ResultUnknown is reported when the API could not determine an
	// outcome, distinct from the label simply being absent.
	ResultUnknown GameResult = "unknown"
)

// InputType is the input device a player used.
type InputType string

const (
	InputKeyboard   InputType = "keyboard"
	InputController InputType = "controller"
)

// GamesFilter narrows a games listing.
type GamesFilter struct {
	// Leaderboard restricts games to one leaderboard category.
	Leaderboard Leaderboard
	// OpponentProfileID restricts games to those played against the
	// given opponent.
	OpponentProfileID ProfileID
	// Since restricts games to those started at or after the given time.
	Since time.Time
}

// Params renders the filter as URL query parameters.
func (f *GamesFilter) Params() url.Values {
	v := url.Values{}
	if f == nil {
		return v
	}
	if f.Leaderboard != "" {
		v.Set("leaderboard", string(f.Leaderboard))
	}
	if f.OpponentProfileID != 0 {
		v.Set("opponent_profile_id", f.OpponentProfileID.String())
	}
	if !f.Since.IsZero() {
		v.Set("since", f.Since.UTC().Format(time.RFC3339))
	}
	return v
}

// GamesPage is one page of a player's game history.
type GamesPage struct {
	pagination.Pagination
	Games []Game `json:"games"`
}

// PageInfo returns the pagination block of this page.
func (p GamesPage) PageInfo() pagination.Pagination { return p.Pagination }

// PageItems returns the games on this page in server order.
func (p GamesPage) PageItems() []Game { return p.Games }

// Game is a single game and its outcome.
type Game struct {
	// GameID is the ID of the game on aoe4world.
	GameID int64 `json:"game_id,omitempty"`
	// StartedAt is when the game began.
	StartedAt time.Time `json:"started_at,omitzero"`
	// UpdatedAt is when the state of the game last changed.
	UpdatedAt time.Time `json:"updated_at,omitzero"`
	// Duration is how long the game lasted, in seconds. Zero while the
	// game is ongoing.
	Duration int `json:"duration,omitempty"`
	// Map the game was played on.
	Map Map `json:"map,omitempty"`
	// Kind of game.
	Kind GameKind `json:"kind,omitempty"`
	// Leaderboard the game counts towards.
	Leaderboard Leaderboard `json:"leaderboard,omitempty"`
	// Season in which the game was played.
	Season int `json:"season,omitempty"`
	// Server region the game was hosted on.
	Server string `json:"server,omitempty"`
	// Patch the game was played on.
	Patch int `json:"patch,omitempty"`
	// AverageRating is the average rating of all players in the game.
	AverageRating float64 `json:"average_rating,omitempty"`
	// Ongoing is true while the game is still being played.
	Ongoing bool `json:"ongoing,omitempty"`
	// JustFinished is true once the game has ended but before results
	// have been decided.
	JustFinished bool `json:"just_finished,omitempty"`
	// Teams lists the players grouped by team.
	Teams [][]TeamMember `json:"teams,omitempty"`
}

// TeamMember wraps a player who is a member of a team.
type TeamMember struct {
	Player *Player `json:"player"`
}

// Player is one participant in a game.
type Player struct {
	Name      string    `json:"name,omitempty"`
	ProfileID ProfileID `json:"profile_id,omitempty"`
	// Result of the game for this player.
	Result GameResult `json:"result,omitempty"`
	// Civilization played in the game.
	Civilization Civilization `json:"civilization,omitempty"`
	// CivilizationRandomized is true when the civilization was assigned
	// by random pick rather than chosen.
	CivilizationRandomized bool `json:"civilization_randomized,omitempty"`
	// Rating is ranked points or ELO at game time.
	Rating int `json:"rating,omitempty"`
	// RatingDiff is the rating gained or lost from this game.
	RatingDiff int `json:"rating_diff,omitempty"`
	// MMR is the matchmaking rating at game time.
	MMR int `json:"mmr,omitempty"`
	// MMRDiff is the matchmaking rating gained or lost from this game.
	MMRDiff int `json:"mmr_diff,omitempty"`
	// InputType is the input device the player used.
	InputType InputType `json:"input_type,omitempty"`
}
