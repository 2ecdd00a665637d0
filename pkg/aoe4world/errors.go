package aoe4world

import "fmt"

// ValidationError reports a request argument rejected before any network
// traffic happened. It is returned synchronously from query methods and
// never travels inside a stream.
type ValidationError struct {
	// Field names the offending argument, e.g. "query" or "profile_id".
	Field string

	// Reason describes the constraint that failed.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
