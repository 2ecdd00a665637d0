package pagination

// Plan tells the stream engine how many pages to schedule and how many
// items to emit. The zero value is the empty plan: nothing is fetched and
// the stream ends immediately without error.
type Plan struct {
	// Pages is the number of pages to schedule. Ignored when Unbounded.
	Pages int
	// Unbounded keeps scheduling ahead until a page comes back short.
	Unbounded bool
	// ItemLimit caps emission at exactly this many items; 0 means no cap.
	ItemLimit int
}

// PlanForTotal computes the plan for a known total item count, as learned
// from a probe request. A total of zero yields the empty plan.
func PlanForTotal(totalCount, perPage int) Plan {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if totalCount <= 0 {
		return Plan{}
	}
	return Plan{Pages: ceilDiv(totalCount, perPage)}
}

// PlanForLimit computes the plan for an explicit item limit, without a
// probe. The final page may hold more items than the limit needs; the
// engine stops emitting once the limit is reached.
func PlanForLimit(limit, perPage int) Plan {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if limit <= 0 {
		return Plan{}
	}
	return Plan{Pages: ceilDiv(limit, perPage), ItemLimit: limit}
}

// UnboundedPlan schedules pages until the server signals the final one.
// Used when the server reports no total_count.
func UnboundedPlan() Plan {
	return Plan{Unbounded: true}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
