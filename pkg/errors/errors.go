package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the domain error carried between layers. Handlers map it to
// an HTTP status through FromError; services wrap repository and driver
// failures into one of the sentinels below.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Clone returns a copy so callers can attach context without mutating
// the shared sentinel.
func (e *Error) Clone() *Error {
	return &Error{Code: e.Code, Message: e.Message, Status: e.Status, Err: e.Err}
}

// Wrap attaches a cause to a copy of the error.
func (e *Error) Wrap(err error) *Error {
	c := e.Clone()
	c.Err = err
	return c
}

// WithMessage overrides the message on a copy of the error.
func (e *Error) WithMessage(msg string) *Error {
	c := e.Clone()
	c.Message = msg
	return c
}

var (
	ErrNotFound = &Error{
		Code:    "NOT_FOUND",
		Message: "resource not found",
		Status:  http.StatusNotFound,
	}
	ErrValidation = &Error{
		Code:    "VALIDATION_ERROR",
		Message: "invalid request payload",
		Status:  http.StatusBadRequest,
	}
	ErrUnauthorized = &Error{
		Code:    "UNAUTHORIZED",
		Message: "authentication required",
		Status:  http.StatusUnauthorized,
	}
	ErrInvalidCredentials = &Error{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email or password",
		Status:  http.StatusUnauthorized,
	}
	ErrForbidden = &Error{
		Code:    "FORBIDDEN",
		Message: "insufficient permissions",
		Status:  http.StatusForbidden,
	}
	ErrConflict = &Error{
		Code:    "CONFLICT",
		Message: "resource already exists",
		Status:  http.StatusConflict,
	}
	ErrComingSoon = &Error{
		Code:    "COMING_SOON",
		Message: "notes for this module are not available yet",
		Status:  http.StatusNotFound,
	}
	ErrFileTooLarge = &Error{
		Code:    "FILE_TOO_LARGE",
		Message: "uploaded file exceeds the size limit",
		Status:  http.StatusRequestEntityTooLarge,
	}
	ErrUnsupportedFileType = &Error{
		Code:    "UNSUPPORTED_FILE_TYPE",
		Message: "uploaded file type is not allowed",
		Status:  http.StatusBadRequest,
	}
	ErrUpstreamFetch = &Error{
		Code:    "UPSTREAM_FETCH_FAILED",
		Message: "could not fetch the requested file",
		Status:  http.StatusBadGateway,
	}
	ErrCacheMiss = &Error{
		Code:    "CACHE_MISS",
		Message: "cache entry not found",
		Status:  http.StatusNotFound,
	}
	ErrInternal = &Error{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	}
)

// FromError normalizes any error into a *Error. Unknown errors become
// ErrInternal with the cause preserved.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}

	return ErrInternal.Wrap(err)
}

// Is reports whether err matches the target sentinel by code.
func Is(err error, target *Error) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == target.Code
	}
	return false
}
