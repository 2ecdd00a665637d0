package aoe4world

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Sternrassler/aoe4world-client/pkg/cache"
	"github.com/Sternrassler/aoe4world-client/pkg/client"
	"github.com/Sternrassler/aoe4world-client/pkg/pagination"
	"github.com/Sternrassler/aoe4world-client/pkg/ratelimit"
	"github.com/Sternrassler/aoe4world-client/pkg/types"
)

// DefaultUserAgent identifies this library when the caller supplies none.
// Applications should set their own Config.UserAgent with a contact
// address, as the aoe4world operators request.
const DefaultUserAgent = "aoe4world-client/1.0 (github.com/Sternrassler/aoe4world-client)"

// Config holds the facade configuration. The zero value is usable; every
// field has a default.
type Config struct {
	// BaseURL is the aoe4world API root. Defaults to client.DefaultBaseURL.
	BaseURL string

	// UserAgent identifies the application. Defaults to DefaultUserAgent.
	UserAgent string

	// PerPage is the page size requested per fetch. Defaults to
	// pagination.DefaultPerPage; the server clamps values above 50.
	PerPage int

	// Concurrency bounds the page fetch window of list queries.
	// Defaults to pagination.DefaultConcurrency.
	Concurrency int

	// Timeout bounds a single fetch. Zero keeps the engine defaults.
	Timeout time.Duration

	// Transport overrides the HTTP layer. When nil the facade builds a
	// caching, rate-limited transport (see pkg/client) and owns its
	// lifetime.
	Transport pagination.Doer

	// Cache and Limiter configure the owned transport. Both are ignored
	// when Transport is set; nil values fall back to an in-process
	// memory cache and the default limiter.
	Cache   cache.Store
	Limiter *ratelimit.Limiter
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:     client.DefaultBaseURL,
		UserAgent:   DefaultUserAgent,
		PerPage:     pagination.DefaultPerPage,
		Concurrency: pagination.DefaultConcurrency,
	}
}

// Client answers typed aoe4world queries. Construct it with New; the
// zero value is not usable. Methods are safe for concurrent use.
type Client struct {
	baseURL string
	perPage int
	doer    pagination.Doer

	// owned is set when the facade built its transport itself and is
	// responsible for closing it.
	owned *client.Client

	games        *pagination.Client[types.Game, types.GamesPage]
	search       *pagination.Client[types.Profile, types.SearchPage]
	leaderboards *pagination.Client[types.LeaderboardEntry, types.LeaderboardPage]
}

// New creates a new query client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = client.DefaultBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || !base.IsAbs() {
		return nil, fmt.Errorf("base URL must be absolute (got %q)", cfg.BaseURL)
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = pagination.DefaultPerPage
	}

	doer := cfg.Transport
	var owned *client.Client
	if doer == nil {
		store := cfg.Cache
		if store == nil {
			store = cache.NewMemory()
		}
		limiter := cfg.Limiter
		if limiter == nil {
			limiter = ratelimit.New(ratelimit.DefaultRPS, ratelimit.DefaultBurst)
		}
		transport, err := client.New(client.Config{
			BaseURL:   cfg.BaseURL,
			UserAgent: cfg.UserAgent,
			Cache:     store,
			Limiter:   limiter,
			Timeout:   cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		owned = transport
		doer = transport
	}

	pcfg := pagination.DefaultConfig()
	if cfg.Concurrency > 0 {
		pcfg.Concurrency = cfg.Concurrency
	}
	if cfg.Timeout > 0 {
		pcfg.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL: cfg.BaseURL,
		perPage: cfg.PerPage,
		doer:    doer,
		owned:   owned,
		games: pagination.NewClient[types.Game, types.GamesPage](
			pagination.NewFetcher[types.Game, types.GamesPage](doer), pcfg),
		search: pagination.NewClient[types.Profile, types.SearchPage](
			pagination.NewFetcher[types.Profile, types.SearchPage](doer), pcfg),
		leaderboards: pagination.NewClient[types.LeaderboardEntry, types.LeaderboardPage](
			pagination.NewFetcher[types.LeaderboardEntry, types.LeaderboardPage](doer), pcfg),
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the owned transport and its cache. It is a no-op when
// the caller supplied Config.Transport.
func (c *Client) Close() error {
	if c.owned != nil {
		return c.owned.Close()
	}
	return nil
}

// endpointURL joins the API root, an endpoint path, and optional query
// parameters. The pagination engine appends limit and page itself.
func (c *Client) endpointURL(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
