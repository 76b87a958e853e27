package api

import (
	"fmt"

	"github.com/airmates/airmates-go/internal/errs"
)

// ConflictError reports a business-rule conflict (HTTP 409), e.g. a
// double-booked slot. Body keeps the raw response bytes so a caller can
// attempt a secondary decode of structured conflict details.
type ConflictError struct {
	Message string
	Body    []byte
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == errs.ErrConflict }

// ServerError reports any non-2xx status other than 401 and 409.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

func (e *ServerError) Is(target error) bool { return target == errs.ErrServer }

// NetworkError reports a transport-level failure before a response was
// received (DNS, connection refused, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network failure: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == errs.ErrNetwork }

// DecodeError reports a successful HTTP call whose payload did not match the
// expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode response: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == errs.ErrDecode }
