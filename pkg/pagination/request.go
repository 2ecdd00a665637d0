package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// PageRequest describes one "fetch page N of this query" operation. Values
// are immutable once built: the next page is addressed by deriving a copy,
// never by mutating a request that concurrent fetches may share.
type PageRequest struct {
	base    *url.URL
	page    int
	perPage int
}

// NewPageRequest builds the page-1 request for a fully-filtered query URL.
// Caller filters must already be embedded as query parameters; the limit
// and page parameters are owned by this package and overwritten on render.
// A perPage <= 0 falls back to DefaultPerPage.
func NewPageRequest(rawURL string, perPage int) (PageRequest, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return PageRequest{}, fmt.Errorf("parse page request url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return PageRequest{}, fmt.Errorf("page request url %q is not absolute", rawURL)
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return PageRequest{base: u, page: 1, perPage: perPage}, nil
}

// Page returns the 1-indexed page number this request addresses.
func (r PageRequest) Page() int { return r.page }

// PerPage returns the page size this request asks for.
func (r PageRequest) PerPage() int { return r.perPage }

// Next returns a copy addressing the following page. The receiver is
// unchanged.
func (r PageRequest) Next() PageRequest {
	r.page++
	return r
}

// WithPage returns a copy addressing the given 1-indexed page.
func (r PageRequest) WithPage(page int) PageRequest {
	r.page = page
	return r
}

// WithPerPage returns a copy asking for a different page size. The probe
// request uses this to shrink the page to a single item.
func (r PageRequest) WithPerPage(perPage int) PageRequest {
	r.perPage = perPage
	return r
}

// URL renders the full request URL with the limit and page query
// parameters applied. The underlying base URL is never modified.
func (r PageRequest) URL() string {
	u := *r.base
	q := u.Query()
	q.Set("limit", strconv.Itoa(r.perPage))
	q.Set("page", strconv.Itoa(r.page))
	u.RawQuery = q.Encode()
	return u.String()
}
