package aoe4world

import (
	"context"
	"iter"
	"sync"

	"github.com/Sternrassler/aoe4world-client/pkg/types"
)

// The default client backs the package-level query functions. It is
// built on first use and lives for the process; there is no way to
// close it, so long-running applications should construct their own
// Client instead.
var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

func defaultFacade() (*Client, error) {
	defaultOnce.Do(func() {
		defaultClient, defaultErr = New(DefaultConfig())
	})
	return defaultClient, defaultErr
}

// Profile fetches a player profile using the shared default client.
func Profile(ctx context.Context, profileID types.ProfileID) (*types.Profile, error) {
	c, err := defaultFacade()
	if err != nil {
		return nil, err
	}
	return c.Profile(ctx, profileID)
}

// Games streams a player's games using the shared default client.
func Games(ctx context.Context, profileID types.ProfileID, filter *types.GamesFilter, opts ...StreamOption) (iter.Seq2[types.Game, error], error) {
	c, err := defaultFacade()
	if err != nil {
		return nil, err
	}
	return c.Games(ctx, profileID, filter, opts...)
}

// Search streams matching profiles using the shared default client.
func Search(ctx context.Context, query string, exact bool, opts ...StreamOption) (iter.Seq2[types.Profile, error], error) {
	c, err := defaultFacade()
	if err != nil {
		return nil, err
	}
	return c.Search(ctx, query, exact, opts...)
}

// Leaderboard streams one leaderboard's standings using the shared
// default client.
func Leaderboard(ctx context.Context, board types.Leaderboard, filter *types.LeaderboardFilter, opts ...StreamOption) (iter.Seq2[types.LeaderboardEntry, error], error) {
	c, err := defaultFacade()
	if err != nil {
		return nil, err
	}
	return c.Leaderboard(ctx, board, filter, opts...)
}
