// Package types defines the domain records returned by the aoe4world API:
// player profiles, games, leaderboard standings, and the enum labels used
// within them.
//
// Enum types (Civilization, Map, GameKind, Leaderboard, ...) are named
// string types rather than closed sets. aoe4world adds labels with every
// game expansion, so decoding never fails on a label this library does not
// recognize; the raw value is carried through unchanged and Known reports
// whether it belongs to the vetted set.
//
// List responses arrive as one flat JSON object carrying the pagination
// block beside the item array. The page envelopes (GamesPage, SearchPage,
// LeaderboardPage) embed pagination.Pagination to match that layout and
// satisfy pagination.Paged, which lets the stream engine drive them.
package types
