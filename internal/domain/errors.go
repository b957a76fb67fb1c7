package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrBusy            = errors.New("operation already in flight")
	ErrEmptyInput      = errors.New("message is empty")
	ErrNothingToExport = errors.New("no conversation to export")
	ErrTokenNotFound   = errors.New("access token not found")
	// ErrStoreUnavailable marks a token backend that is missing on this host.
	ErrStoreUnavailable = errors.New("token store unavailable")
)

// ValidationError reports bad user input caught before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// RemoteError is a non-2xx response from the backend.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.Status, e.Message)
}

// Is lets 401/403 responses match ErrUnauthenticated.
func (e *RemoteError) Is(target error) bool {
	if target != ErrUnauthenticated {
		return false
	}
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// NetworkError means no response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// PaymentError carries the provider message of a failed donation attempt.
type PaymentError struct {
	Provider Provider
	Message  string
	Err      error
}

func (e *PaymentError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s payment failed", e.Provider)
	}
	return fmt.Sprintf("%s payment failed: %s", e.Provider, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text a person should see for err.
func UserMessage(err error) string {
	var validation *ValidationError
	var remote *RemoteError
	var network *NetworkError
	var payment *PaymentError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validation):
		return validation.Error()
	case errors.As(err, &payment):
		if payment.Message != "" {
			return payment.Message
		}
		return payment.Error()
	case errors.As(err, &remote):
		return remote.Message
	case errors.As(err, &network):
		return "could not reach the server, check your connection"
	default:
		return err.Error()
	}
}
