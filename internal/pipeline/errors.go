package pipeline

import "fmt"

// InvalidInputError represents a request that cannot be scored: empty or
// whitespace-only text after cleaning. Oversized input is not an error; it is
// truncated and flagged on the result instead.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}
