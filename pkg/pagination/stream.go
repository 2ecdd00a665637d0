package pagination

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// Config holds stream engine configuration.
type Config struct {
	// Concurrency is the maximum number of page fetches in flight when
	// the page count is known up front.
	Concurrency int
	// Timeout bounds each single page fetch, probe included.
	Timeout time.Duration
}

// DefaultConfig returns the defaults used against aoe4world.
func DefaultConfig() Config {
	return Config{
		Concurrency: DefaultConcurrency,
		Timeout:     15 * time.Second,
	}
}

// Client drives a paginated endpoint as a single ordered item stream.
// One Client is reusable across many Items calls; each call plans and
// fetches independently.
type Client[T any, P Paged[T]] struct {
	fetcher PageFetcher[P]
	config  Config
}

// NewClient creates a stream engine on top of a page fetcher.
func NewClient[T any, P Paged[T]](fetcher PageFetcher[P], config Config) *Client[T, P] {
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	return &Client[T, P]{fetcher: fetcher, config: config}
}

// Option adjusts how a single Items call plans its fetches.
type Option func(*streamOptions)

type streamOptions struct {
	limit int
}

// WithLimit caps the stream at n items. Planning switches to the limit
// strategy: ceil(n/per_page) pages are scheduled and no probe request is
// issued.
func WithLimit(n int) Option {
	return func(o *streamOptions) { o.limit = n }
}

// pageResult is one completed fetch on its way through the reorder buffer.
type pageResult[T any] struct {
	page  int
	items []T
	meta  Pagination
	err   error
}

// Items returns the lazy stream of every item the plan yields, in
// ascending page order with within-page order preserved. Nothing is
// fetched until the caller starts ranging; the probe request, when the
// plan needs one, is issued on first iteration.
//
// Pages with a known count are fetched concurrently within the window;
// when the server reports no total the engine fetches one page at a time
// and stops at the first short page, so no page is requested past the
// end of the data.
//
// The sequence is single-pass. A page failure ends it with exactly one
// trailing error element after all items from earlier pages; breaking out
// early cancels the in-flight fetches.
func (c *Client[T, P]) Items(ctx context.Context, req PageRequest, opts ...Option) iter.Seq2[T, error] {
	var o streamOptions
	for _, opt := range opts {
		opt(&o)
	}
	return func(yield func(T, error) bool) {
		plan, err := c.resolvePlan(ctx, req, o)
		if err != nil {
			streamsFinished.WithLabelValues("error").Inc()
			var zero T
			yield(zero, err)
			return
		}
		log.Debug().
			Int("pages", plan.Pages).
			Bool("unbounded", plan.Unbounded).
			Int("item_limit", plan.ItemLimit).
			Int("per_page", req.PerPage()).
			Msg("Page plan resolved")
		c.run(ctx, req, plan, yield)
	}
}

// Probe issues the minimal page-1 request (per_page=1) and reports the
// server's total item count. known is false when the server omits
// total_count, in which case planning falls back to unbounded fetching.
// Probe items are never emitted.
func (c *Client[T, P]) Probe(ctx context.Context, req PageRequest) (total int, known bool, err error) {
	page, err := c.fetchTimed(ctx, req.WithPage(1).WithPerPage(1))
	if err != nil {
		return 0, false, fmt.Errorf("probe total count: %w", err)
	}
	meta := page.PageInfo()
	if meta.TotalCount == nil {
		return 0, false, nil
	}
	return *meta.TotalCount, true, nil
}

func (c *Client[T, P]) resolvePlan(ctx context.Context, req PageRequest, o streamOptions) (Plan, error) {
	if o.limit > 0 {
		return PlanForLimit(o.limit, req.PerPage()), nil
	}
	total, known, err := c.Probe(ctx, req)
	if err != nil {
		return Plan{}, err
	}
	if !known {
		return UnboundedPlan(), nil
	}
	return PlanForTotal(total, req.PerPage()), nil
}

// emitter tracks emission progress across pages. emit reports the reason
// the stream must stop, or "" to continue with the next page.
type emitter[T any] struct {
	yield   func(T, error) bool
	limit   int
	emitted int
}

func (e *emitter[T]) emit(res pageResult[T]) (reason string) {
	if res.err != nil {
		var zero T
		e.yield(zero, res.err)
		return "error"
	}
	for _, item := range res.items {
		if e.limit > 0 && e.emitted >= e.limit {
			return "item_limit"
		}
		if !e.yield(item, nil) {
			return "abandoned"
		}
		e.emitted++
	}
	if e.limit > 0 && e.emitted >= e.limit {
		return "item_limit"
	}
	if res.meta.Last() {
		return "last_page"
	}
	return ""
}

func (c *Client[T, P]) run(ctx context.Context, first PageRequest, plan Plan, yield func(T, error) bool) {
	start := time.Now()
	em := &emitter[T]{yield: yield, limit: plan.ItemLimit}
	finish := func(reason string) {
		streamsFinished.WithLabelValues(reason).Inc()
		log.Debug().
			Str("reason", reason).
			Int("items", em.emitted).
			Dur("duration", time.Since(start)).
			Msg("Page stream finished")
	}

	if plan.Unbounded {
		c.runSequential(ctx, first, em, finish)
		return
	}
	if plan.Pages <= 0 {
		finish("empty")
		return
	}
	c.runConcurrent(ctx, first, plan, em, finish)
}

// runSequential fetches one page at a time. Used for unbounded plans,
// where only the previous page can tell whether another one exists.
func (c *Client[T, P]) runSequential(ctx context.Context, req PageRequest, em *emitter[T], finish func(string)) {
	for {
		res := c.fetchResult(ctx, req)
		if reason := em.emit(res); reason != "" {
			if reason == "last_page" {
				reason = "short_page"
			}
			finish(reason)
			return
		}
		req = req.Next()
	}
}

// runConcurrent fetches the planned page range with the bounded window
// and re-linearizes completions through the reorder buffer. The collector
// below is the single owner of that buffer; workers only touch the
// results channel.
func (c *Client[T, P]) runConcurrent(ctx context.Context, first PageRequest, plan Plan, em *emitter[T], finish func(string)) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// One buffer slot per window position so an in-flight worker never
	// blocks on send once the collector has moved on.
	results := make(chan pageResult[T], c.config.Concurrency)
	go c.dispatch(ctx, first, plan.Pages, results)

	pending := make(map[int]pageResult[T])
	next := 1
	for {
		var res pageResult[T]
		select {
		case res = <-results:
		case <-ctx.Done():
			var zero T
			em.yield(zero, fmt.Errorf("page stream: %w", ctx.Err()))
			finish("error")
			return
		}
		pending[res.page] = res

		for {
			cur, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)

			if reason := em.emit(cur); reason != "" {
				if reason == "last_page" {
					reason = "completed"
				}
				finish(reason)
				return
			}
			next++
			if next > plan.Pages {
				finish("completed")
				return
			}
		}
	}
}

// dispatch schedules pages 1..pages ahead of emission, at most
// Concurrency in flight. It stops on context cancellation, which the
// collector triggers on every termination path.
func (c *Client[T, P]) dispatch(ctx context.Context, first PageRequest, pages int, results chan<- pageResult[T]) {
	sem := semaphore.NewWeighted(int64(c.config.Concurrency))
	for page := 1; page <= pages; page++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}
		req := first.WithPage(page)
		go func() {
			defer sem.Release(1)
			res := c.fetchResult(ctx, req)
			select {
			case results <- res:
			case <-ctx.Done():
			}
		}()
	}
}

// fetchResult runs one page fetch with the configured timeout and wraps
// the outcome for the reorder buffer.
func (c *Client[T, P]) fetchResult(ctx context.Context, req PageRequest) pageResult[T] {
	page, err := c.fetchTimed(ctx, req)

	res := pageResult[T]{page: req.Page(), err: err}
	if err != nil {
		pagesFetched.WithLabelValues("error").Inc()
		log.Warn().Err(err).Int("page", req.Page()).Msg("Page fetch failed")
		return res
	}
	pagesFetched.WithLabelValues("success").Inc()
	res.meta = page.PageInfo()
	res.items = page.PageItems()
	return res
}

func (c *Client[T, P]) fetchTimed(ctx context.Context, req PageRequest) (P, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	start := time.Now()
	page, err := c.fetcher.FetchPage(fetchCtx, req)
	pageFetchDuration.Observe(time.Since(start).Seconds())
	return page, err
}
