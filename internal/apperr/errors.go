// Package apperr defines the client's failure taxonomy.
//
// Every remote-call failure is classified here at the gateway boundary and
// never propagates past a user-visible notification: Conflict (uniqueness
// violation), NotFound (lookup miss), NetworkError (request could not
// complete), RemoteError (server answered with an unexpected status), and
// ValidationError (rejected locally, no request sent).
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// NotFoundError carries the kind and id of the missing resource while
// matching errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError matches errors.Is(err, ErrConflict).
type ConflictError struct {
	Kind   string
	Detail string
}

func (e *ConflictError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s already exists", e.Kind)
	}
	return fmt.Sprintf("%s already exists: %s", e.Kind, e.Detail)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NetworkError wraps a transport failure (connection refused, timeout, bad
// body read). The request may or may not have reached the server.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError reports an unexpected HTTP status from the backend.
type RemoteError struct {
	Op     string
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.Status)
}

// ValidationError is raised before any request is sent; the failed action
// never reaches the network.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func Validation(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

// IsValidation reports whether err was a local pre-flight rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
