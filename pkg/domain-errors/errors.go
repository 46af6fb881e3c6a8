// Package domainerrors provides coded domain errors for the service.
//
// Services attach a Code describing the failure class; transport layers map
// codes to HTTP statuses without inspecting error text. Infrastructure
// layers return sentinel errors (pkg/platform/sentinel) instead and services
// translate them into coded errors at the boundary.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	// CodeValidation marks malformed or blank input. The caller can fix the
	// request and retry.
	CodeValidation Code = "validation"
	// CodeBadRequest marks a structurally invalid request (bad JSON, wrong
	// content type).
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks a referenced entity that does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a uniqueness or concurrent-update conflict.
	CodeConflict Code = "conflict"
	// CodeInvalidState marks an operation forbidden by the current lifecycle
	// state (e.g. mutating content of a finished meeting). Not retryable.
	CodeInvalidState Code = "invalid_state"
	// CodeInvalidCredential marks a failed ticket redemption. The internal
	// cause (unknown code, wrong meeting, already redeemed) is deliberately
	// flattened so the error cannot be used as an enumeration oracle.
	CodeInvalidCredential Code = "invalid_credential"
	// CodeUnauthorized marks a missing, expired, or out-of-scope session.
	CodeUnauthorized Code = "unauthorized"
	// CodeInternal marks an unexpected infrastructure failure.
	CodeInternal Code = "internal_error"
)

// Error is a domain error with a classification code.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates err with a domain code and message while preserving the
// original error for errors.Is/errors.As chains.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var domainErr *Error
	for errors.As(err, &domainErr) {
		if domainErr.Code == code {
			return true
		}
		err = domainErr.cause
		if err == nil {
			return false
		}
	}
	return false
}

// Is is shorthand for HasCode, matching the call sites that read better as
// a predicate.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the outermost domain code in the chain, or CodeInternal if
// the error carries no code.
func CodeOf(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}
