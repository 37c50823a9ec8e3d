package jenkins

import (
	"errors"
	"fmt"
	"net/http"
)

// maxErrorBody bounds how much of a response body an APIError keeps.
const maxErrorBody = 512

// APIError is returned for a non-2xx response to a mutating call.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// IsAlreadyExists reports whether err is the CI server refusing to create
// a job that already exists.
func IsAlreadyExists(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest &&
		containsFold(apiErr.Body, "already exists")
}
