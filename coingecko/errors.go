package coingecko

import "fmt"

// NetworkError signals a transport-level failure reaching the API
// (DNS, timeout, connection refused).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error requesting %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError signals a non-2xx response from the API and carries the
// upstream status code.
type APIError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}
