package pagination

import "fmt"

// StatusError reports a non-2xx response for a single page fetch. The
// engine treats it as terminal for the stream but callers can still pull
// the status code out for diagnostics.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("page fetch %s: unexpected status %s", e.URL, e.Status)
}

// DecodeError reports a response body that is not valid JSON or does not
// match the page envelope schema. Kept distinct from transport and status
// failures so callers can tell a broken wire from a broken contract.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("page fetch %s: decode response: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
