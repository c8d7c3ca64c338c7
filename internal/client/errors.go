package client

import (
	"errors"
	"fmt"
)

// APIError is returned for every non-2xx response. Callers branch on Status
// to distinguish validation (400), auth (401), not-found (404) and server
// (5xx) failures.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s (status %d)", e.Message, e.Status)
}

// IsStatus reports whether err is an APIError carrying the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
