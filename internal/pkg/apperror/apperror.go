// Package apperror defines the error classes the HTTP layer maps to status
// codes. Every failure that crosses a controller boundary is one of these.
package apperror

import (
	"errors"
	"fmt"
)

// Kind discriminates the error classes.
type Kind string

const (
	KindValidation   Kind = "validation_error"
	KindProvider     Kind = "provider_error"
	KindPrecondition Kind = "precondition_error"
	KindNotFound     Kind = "not_found"
	KindSession      Kind = "session_error"
)

// Error is a classified application error. Details carries the upstream
// message for provider failures and is safe to expose to API callers.
type Error struct {
	Kind    Kind   `json:"-"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewValidation(message string, details string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func NewProvider(message string, details string) *Error {
	return &Error{Kind: KindProvider, Message: message, Details: details}
}

func NewPrecondition(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewSession(message string) *Error {
	return &Error{Kind: KindSession, Message: message}
}

// KindOf classifies an arbitrary error; non-apperror values report as
// provider-side failures since those are the only unclassified errors the
// services let through.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindProvider
}

// Is reports whether err is an apperror of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
