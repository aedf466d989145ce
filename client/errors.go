// Package client is the Go SDK for the CocMarket API: storefront queries,
// session management and the hosted checkout handoff.
package client

import "fmt"

// NetworkError wraps transport failures (no response at all, including
// timeouts).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServiceError reports a non-success HTTP status from the API.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("service error %d", e.Status)
}

// DecodeError reports a response body that did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AuthError reports a rejected authentication operation. It is surfaced to
// the caller, never swallowed.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error: %s", e.Reason)
}

// ValidationError reports malformed input for a named field. Filter inputs
// are clamped rather than rejected wherever possible, so this mostly covers
// request payloads.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
