package exceptions

import (
	"errors"
	"fmt"
)

// BackendErrorKind classifies a failed call to the REST backend.
type BackendErrorKind string

const (
	KindNetwork      BackendErrorKind = "network"
	KindUnauthorized BackendErrorKind = "unauthorized"
	KindValidation   BackendErrorKind = "validation"
	KindServer       BackendErrorKind = "server"
)

// BackendError is returned by the API client for every failed backend call.
// Message is the text that was already shown to the user.
type BackendError struct {
	Kind        BackendErrorKind
	Method      string
	Path        string
	StatusCode  int
	Message     string
	FieldErrors []string
	// RedirectTo is set when the failure must move the user to another page.
	RedirectTo string
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("apiclient: %s %s: %s: %v", e.Method, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("apiclient: %s %s: %s (%d): %s", e.Method, e.Path, e.Kind, e.StatusCode, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// AsBackendError reports whether err wraps a *BackendError.
func AsBackendError(err error) (*BackendError, bool) {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr, true
	}
	return nil, false
}
