package types

import (
	"net/url"
	"strconv"

	"github.com/Sternrassler/aoe4world-client/pkg/pagination"
)

// SearchFilter narrows a player search.
type SearchFilter struct {
	// Query is the player name to search for.
	Query string
	// Exact requires results to match the query exactly.
	Exact bool
}

// Params renders the filter as URL query parameters.
func (f *SearchFilter) Params() url.Values {
	v := url.Values{}
	if f == nil {
		return v
	}
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	if f.Exact {
		v.Set("exact", strconv.FormatBool(f.Exact))
	}
	return v
}

// SearchPage is one page of player search results.
type SearchPage struct {
	pagination.Pagination
	Players []Profile `json:"players"`
}

// PageInfo returns the pagination block of this page.
func (p SearchPage) PageInfo() pagination.Pagination { return p.Pagination }

// PageItems returns the matched profiles on this page in server order.
func (p SearchPage) PageItems() []Profile { return p.Players }
