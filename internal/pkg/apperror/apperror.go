// Package apperror defines the error taxonomy shared by services and the
// HTTP error handler. Every category except internal is an expected outcome
// surfaced to the caller with its status code and detail string.
package apperror

import "net/http"

type Code string

const (
	CodeNotFound        Code = "not_found"
	CodeConflict        Code = "conflict"
	CodeUnauthenticated Code = "unauthenticated"
	CodeForbidden       Code = "forbidden"
	CodeValidation      Code = "validation_failed"
	CodeRateLimited     Code = "rate_limited"
	CodeInternal        Code = "internal"
)

type Error struct {
	Code    Code
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func NotFound(message string) *Error {
	return New(CodeNotFound, http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(CodeConflict, http.StatusConflict, message)
}

func Unauthenticated(message string) *Error {
	return New(CodeUnauthenticated, http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, http.StatusForbidden, message)
}

func Validation(message string) *Error {
	return New(CodeValidation, http.StatusUnprocessableEntity, message)
}
