package aoe4world

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"unicode/utf8"

	"github.com/Sternrassler/aoe4world-client/pkg/pagination"
	"github.com/Sternrassler/aoe4world-client/pkg/types"
)

// StreamOption adjusts how a list query streams its pages.
type StreamOption = pagination.Option

// WithLimit caps a stream at exactly n items. The engine then skips the
// total-count probe and schedules only the pages the limit needs.
func WithLimit(n int) StreamOption {
	return pagination.WithLimit(n)
}

// Profile fetches a player profile by profile ID.
func (c *Client) Profile(ctx context.Context, profileID types.ProfileID) (*types.Profile, error) {
	if profileID < 1 {
		return nil, &ValidationError{Field: "profile_id", Reason: "must be positive"}
	}

	var profile types.Profile
	if err := c.getJSON(ctx, c.endpointURL(fmt.Sprintf("/players/%d", profileID), nil), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Games streams a player's games in the server's order, newest first.
// A nil filter streams all games. The stream is lazy: no page is
// fetched until iteration begins, and abandoning it stops all fetching.
func (c *Client) Games(ctx context.Context, profileID types.ProfileID, filter *types.GamesFilter, opts ...StreamOption) (iter.Seq2[types.Game, error], error) {
	if profileID < 1 {
		return nil, &ValidationError{Field: "profile_id", Reason: "must be positive"}
	}

	endpoint := c.endpointURL(fmt.Sprintf("/players/%d/games", profileID), filter.Params())
	req, err := pagination.NewPageRequest(endpoint, c.perPage)
	if err != nil {
		return nil, err
	}
	return c.games.Items(ctx, req, opts...), nil
}

// Search streams profiles whose names match the query. The API requires
// at least 3 characters; shorter queries fail with a *ValidationError
// before any network traffic happens. With exact set, only profiles
// whose name equals the query are returned.
func (c *Client) Search(ctx context.Context, query string, exact bool, opts ...StreamOption) (iter.Seq2[types.Profile, error], error) {
	if utf8.RuneCountInString(query) < 3 {
		return nil, &ValidationError{Field: "query", Reason: "must be at least 3 characters"}
	}

	filter := types.SearchFilter{Query: query, Exact: exact}
	endpoint := c.endpointURL("/players/search", filter.Params())
	req, err := pagination.NewPageRequest(endpoint, c.perPage)
	if err != nil {
		return nil, err
	}
	return c.search.Items(ctx, req, opts...), nil
}

// Leaderboard streams the standings of one leaderboard, best rank
// first. A nil filter streams the full board.
func (c *Client) Leaderboard(ctx context.Context, board types.Leaderboard, filter *types.LeaderboardFilter, opts ...StreamOption) (iter.Seq2[types.LeaderboardEntry, error], error) {
	if board == "" {
		return nil, &ValidationError{Field: "leaderboard", Reason: "must not be empty"}
	}

	endpoint := c.endpointURL("/leaderboards/"+string(board), filter.Params())
	req, err := pagination.NewPageRequest(endpoint, c.perPage)
	if err != nil {
		return nil, err
	}
	return c.leaderboards.Items(ctx, req, opts...), nil
}

// getJSON performs a single GET and decodes the body into v. Errors
// carry the same types the pagination fetcher uses, so callers can
// handle single-object and list queries uniformly.
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &pagination.StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: rawURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &pagination.DecodeError{URL: rawURL, Err: err}
	}
	return nil
}
