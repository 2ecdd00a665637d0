// Package aoe4world is the typed entry point for the aoe4world.com API.
//
// A Client answers player, game, search, and leaderboard queries with
// decoded domain types (see pkg/types). List queries return lazy
// iter.Seq2 streams backed by the concurrent pagination engine
// (see pkg/pagination); single-object queries return structs directly.
//
// Example usage:
//
//	c, err := aoe4world.New(aoe4world.Config{
//		UserAgent: "my-app/1.0 (contact@example.com)",
//	})
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	games, err := c.Games(ctx, 1180892, &types.GamesFilter{
//		Leaderboard: types.LeaderboardRM1v1,
//	}, aoe4world.WithLimit(100))
//	if err != nil {
//		return err
//	}
//	for game, err := range games {
//		if err != nil {
//			return err
//		}
//		fmt.Println(game.Map, game.StartedAt)
//	}
//
// By default the client owns a caching, rate-limited transport
// (see pkg/client) and Close releases it. Callers that need custom
// transport behavior set Config.Transport; the facade then performs
// plain fetches through it and Close becomes a no-op.
//
// Bad arguments (short search queries, non-positive profile IDs, empty
// leaderboard keys) are rejected synchronously with a *ValidationError
// before any network traffic happens; a stream is only returned once
// its arguments are known to be well-formed.
//
// For one-off calls the package-level Profile, Games, Search, and
// Leaderboard functions share a lazily-built default client.
package aoe4world
