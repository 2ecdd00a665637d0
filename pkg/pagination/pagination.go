package pagination

import "fmt"

// Defaults matching aoe4world API conventions.
const (
	// DefaultPerPage is the page size requested when the caller does not set one.
	DefaultPerPage = 50
	// DefaultConcurrency is the page fetch window width.
	DefaultConcurrency = 8
)

// Pagination is the position block aoe4world flattens into every list
// response, next to the item array.
type Pagination struct {
	// Page is the 1-indexed page number this response covers.
	Page int `json:"page"`
	// PerPage is the page size the server applied.
	PerPage int `json:"per_page"`
	// Count is the number of items on this page.
	Count int `json:"count"`
	// TotalCount is the size of the full result set; nil when the server
	// does not report one.
	TotalCount *int `json:"total_count"`
	// Offset is the number of items on all preceding pages.
	Offset int `json:"offset"`
}

// Validate checks the invariants a well-formed pagination block satisfies.
func (p Pagination) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("pagination: page must be >= 1, got %d", p.Page)
	}
	if p.PerPage < 1 {
		return fmt.Errorf("pagination: per_page must be >= 1, got %d", p.PerPage)
	}
	if p.Count < 0 {
		return fmt.Errorf("pagination: count must be >= 0, got %d", p.Count)
	}
	if p.Offset < 0 {
		return fmt.Errorf("pagination: offset must be >= 0, got %d", p.Offset)
	}
	// Pages addressed past the end of the data come back empty with an
	// offset beyond the total; only non-empty pages must fit inside it.
	if p.TotalCount != nil && p.Count > 0 && p.Count+p.Offset > *p.TotalCount {
		return fmt.Errorf("pagination: count %d + offset %d exceeds total_count %d",
			p.Count, p.Offset, *p.TotalCount)
	}
	return nil
}

// Last reports whether no further pages follow this one. With a known
// total_count the page is last once count+offset reaches it; otherwise a
// page shorter than per_page signals the end.
func (p Pagination) Last() bool {
	if p.TotalCount != nil {
		return p.Count+p.Offset >= *p.TotalCount
	}
	return p.Count < p.PerPage
}

// Paged is implemented by response envelopes that carry a pagination
// block plus one batch of items. Envelopes embed Pagination so the block
// stays flattened at the top JSON level, matching the wire format.
type Paged[T any] interface {
	// PageInfo returns the pagination block of this page.
	PageInfo() Pagination
	// PageItems returns the items of this page in server order.
	PageItems() []T
}
