package xai

import "fmt"

// APIError is a non-2xx reply from the xAI API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("xAI API error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError is a failure before any HTTP status was received:
// connection refused, DNS failure, client-side timeout. Never retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
