// Package apperrors defines the closed set of failures the service reports.
//
// Repositories classify raw store errors into one of these kinds at the
// boundary; services add the request-level kinds (missing fields, bad
// arguments, credentials); HTTP controllers map the kind to a status code.
//
//	if errors.Is(err, apperrors.ErrDuplicateKey) {
//	    ...
//	}
//
//	var appErr *apperrors.Error
//	if errors.As(err, &appErr) {
//	    c.JSON(appErr.HTTPStatus(), ...)
//	}
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies a class of failure.
type Kind string

const (
	KindMissingField        Kind = "MISSING_FIELD"
	KindValidation          Kind = "VALIDATION_ERROR"
	KindInvalidArgument     Kind = "INVALID_ARGUMENT"
	KindDuplicateKey        Kind = "DUPLICATE_KEY"
	KindNotFound            Kind = "NOT_FOUND"
	KindMalformedIdentifier Kind = "MALFORMED_IDENTIFIER"
	KindUnauthorized        Kind = "UNAUTHORIZED"
	KindInternal            Kind = "INTERNAL"
)

// HTTPStatus returns the status code used for this kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindMissingField, KindValidation, KindInvalidArgument, KindMalformedIdentifier:
		return http.StatusBadRequest
	case KindDuplicateKey:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// FieldError is a single field-level violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a classified failure.
//
// Fields names the offending fields for MissingField and DuplicateKey.
// Violations carries one message per invalid field for Validation.
type Error struct {
	Kind       Kind
	Message    string
	Fields     []string
	Violations []FieldError
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same Kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// HTTPStatus returns the status code for this error's kind.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

// Sentinels for errors.Is.
var (
	ErrMissingField        = &Error{Kind: KindMissingField, Message: "missing field"}
	ErrValidation          = &Error{Kind: KindValidation, Message: "validation error"}
	ErrInvalidArgument     = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrDuplicateKey        = &Error{Kind: KindDuplicateKey, Message: "duplicate key"}
	ErrNotFound            = &Error{Kind: KindNotFound, Message: "not found"}
	ErrMalformedIdentifier = &Error{Kind: KindMalformedIdentifier, Message: "malformed identifier"}
	ErrUnauthorized        = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
)

// MissingField reports required fields that were absent or blank.
func MissingField(msg string, fields ...string) *Error {
	return &Error{Kind: KindMissingField, Message: msg, Fields: fields}
}

// Validation reports field-level violations.
func Validation(msg string, violations []FieldError) *Error {
	fields := make([]string, len(violations))
	for i, v := range violations {
		fields[i] = v.Field
	}
	return &Error{Kind: KindValidation, Message: msg, Fields: fields, Violations: violations}
}

// InvalidArgument reports a malformed request parameter.
func InvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

// InvalidArgumentf is InvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// DuplicateKey reports a uniqueness violation on the given fields.
func DuplicateKey(msg string, fields ...string) *Error {
	return &Error{Kind: KindDuplicateKey, Message: msg, Fields: fields}
}

// NotFound reports a referenced entity that does not exist.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NotFoundf is NotFound with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// MalformedIdentifier reports an id that is not a valid identity token.
func MalformedIdentifier(msg string) *Error {
	return &Error{Kind: KindMalformedIdentifier, Message: msg}
}

// Unauthorized reports a credential mismatch.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Internal wraps an unclassified failure.
func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: err}
}

// Wrap attaches a cause to a new error of the given kind.
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, cause: err}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
