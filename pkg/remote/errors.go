package remote

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches StatusError with 404 code
	ErrNotFound = errors.New("not found")
	// ErrConflict matches StatusError with 409 code, returned for duplicate topics
	ErrConflict = errors.New("conflict")
)

// StatusError is returned for non-2xx responses of the remote service
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: unexpected status %d, %s", e.Method, e.Path, e.Code, e.Message)
}

// Is allows errors.Is(err, ErrNotFound) and errors.Is(err, ErrConflict)
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrConflict:
		return e.Code == http.StatusConflict
	default:
		return false
	}
}

// Temporary reports errors worth another attempt, server side failures and throttling
func (e *StatusError) Temporary() bool {
	return e.Code >= http.StatusInternalServerError || e.Code == http.StatusTooManyRequests
}
