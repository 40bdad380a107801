package cli

import "fmt"

// UnexpectedResponseError is returned when an API call answers with a status
// code outside the expected set for that call. It aborts the enclosing batch
// operation.
type UnexpectedResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response for %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}
