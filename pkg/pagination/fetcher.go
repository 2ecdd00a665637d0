package pagination

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Doer executes a single HTTP request. *http.Client satisfies it, as does
// the caching transport in pkg/client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// PageFetcher fetches one page of a paginated endpoint. Implementations
// must issue exactly one logical fetch per call and must not retry; the
// stream engine relies on one result per scheduled page.
type PageFetcher[P any] interface {
	FetchPage(ctx context.Context, req PageRequest) (P, error)
}

// Fetcher is the HTTP PageFetcher for aoe4world-style JSON list
// endpoints. It appends the limit and page parameters, requires a 2xx
// status, and decodes the body into the envelope type P.
type Fetcher[T any, P Paged[T]] struct {
	doer Doer
}

// NewFetcher creates a fetcher on top of the given transport. A nil doer
// falls back to http.DefaultClient.
func NewFetcher[T any, P Paged[T]](doer Doer) *Fetcher[T, P] {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Fetcher[T, P]{doer: doer}
}

// FetchPage performs the single GET for req and returns the decoded page
// envelope. Non-2xx statuses come back as *StatusError, undecodable or
// invariant-breaking bodies as *DecodeError, and transport failures as
// wrapped errors with the cause preserved.
func (f *Fetcher[T, P]) FetchPage(ctx context.Context, req PageRequest) (P, error) {
	var zero P

	pageURL := req.URL()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return zero, fmt.Errorf("build request for page %d: %w", req.Page(), err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.doer.Do(httpReq)
	if err != nil {
		return zero, fmt.Errorf("fetch page %d: %w", req.Page(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a bounded amount so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return zero, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: pageURL}
	}

	var page P
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return zero, &DecodeError{URL: pageURL, Err: err}
	}
	if err := page.PageInfo().Validate(); err != nil {
		return zero, &DecodeError{URL: pageURL, Err: err}
	}
	return page, nil
}
