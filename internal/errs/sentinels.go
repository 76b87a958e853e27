// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Outcome sentinels for API calls. Typed errors in internal/api match these
// through errors.Is so callers can branch without knowing concrete types.
var (
	// ErrUnauthorized indicates the server rejected the session token (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict indicates a business-rule conflict, e.g. a double-booked slot (HTTP 409).
	ErrConflict = errors.New("conflict")

	// ErrServer indicates any other non-2xx response from the server.
	ErrServer = errors.New("server error")

	// ErrNetwork indicates the request failed before a response was received.
	ErrNetwork = errors.New("network failure")

	// ErrDecode indicates a 2xx response whose payload did not match the expected shape.
	ErrDecode = errors.New("decode failure")
)
