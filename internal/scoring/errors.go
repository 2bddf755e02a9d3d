package scoring

import "fmt"

// UnavailableError represents a failure of an external scoring capability
// (embedder or reranker). It is fatal to the request; retry policy belongs to
// the caller's API layer, not the scoring core.
type UnavailableError struct {
	Component string
	Cause     error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring unavailable: %s: %v", e.Component, e.Cause)
	}
	return fmt.Sprintf("scoring unavailable: %s", e.Component)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
