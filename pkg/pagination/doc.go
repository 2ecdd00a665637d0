// Package pagination turns paginated aoe4world list endpoints into single
// ordered item streams.
//
// aoe4world list endpoints return one page per request, addressed by the
// limit and page query parameters, and describe their position through a
// pagination block (page, per_page, count, total_count, offset) flattened
// into the response body. This package fetches the page sequence with a
// bounded concurrency window and emits the items as one lazy iter.Seq2,
// in ascending page order regardless of fetch completion order.
//
// Example usage:
//
//	req, _ := pagination.NewPageRequest(gamesURL, 50)
//	fetcher := pagination.NewFetcher[types.Game, types.GamesPage](httpClient)
//	stream := pagination.NewClient[types.Game, types.GamesPage](fetcher, pagination.DefaultConfig())
//	for game, err := range stream.Items(ctx, req) {
//		if err != nil {
//			return err
//		}
//		handle(game)
//	}
//
// Planning: when the caller supplies no item limit the engine probes the
// endpoint with a per_page=1 request to learn total_count and schedules
// ceil(total/per_page) pages; if the server reports no total the engine
// fetches until a page comes back short. With WithLimit(n) the probe is
// skipped and ceil(n/per_page) pages are scheduled, with emission capped
// at exactly n items.
//
// The stream engine:
//   - Issues up to Concurrency page fetches at once (default 8)
//   - Buffers out-of-order completions and emits in page order
//   - Stops scheduling after a short page, the item limit, or an error
//   - Emits one terminal error element after all earlier items
//
// A single page failure never aborts the consuming process; it arrives as
// the final stream element. The engine does not retry; retry policy lives
// in the transport (see pkg/client).
package pagination
