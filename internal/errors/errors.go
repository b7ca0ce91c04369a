// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Tour errors
var (
	ErrTourNotFound  = errors.New("tour not found")
	ErrTourNameTaken = errors.New("tour with this name already exists")
	ErrInvalidTourID = errors.New("invalid tour id")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// Auth errors
var (
	ErrUnauthorized      = errors.New("you are not logged in, please login to get access")
	ErrInvalidToken      = errors.New("invalid token, please login again")
	ErrTokenExpired      = errors.New("token expired, please login again")
	ErrPasswordChanged   = errors.New("password was changed after this token was issued, please login again")
	ErrForbidden         = errors.New("you do not have permission to perform this action")
	ErrResetTokenInvalid = errors.New("reset token is invalid or has expired")
	ErrEmailSendFailed   = errors.New("there was an error sending the email, try again later")
)

// Query errors
var (
	ErrBadQuery = errors.New("malformed query parameter")
)

// Error is an operational error: an anticipated, client-facing failure
// carrying the HTTP status code it should be reported with. Anything that is
// not operational is treated as unexpected and hidden in release mode.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an operational error with an explicit status code.
func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a status code and client-facing message to an internal cause.
func Wrap(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// BadRequest creates a 400 operational error.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound creates a 404 operational error.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// StatusCode maps an error to the HTTP status it should be reported with.
// Sentinel errors carry an implied status; operational errors carry their own.
func StatusCode(err error) int {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Code
	}

	switch {
	case errors.Is(err, ErrTourNotFound),
		errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTourNameTaken),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrInvalidTourID),
		errors.Is(err, ErrResetTokenInvalid),
		errors.Is(err, ErrBadQuery):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrPasswordChanged):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// IsOperational reports whether an error is safe to show to clients in
// release mode. Explicitly raised errors are operational even when they map
// to a 500, such as a failed reset email send.
func IsOperational(err error) bool {
	var opErr *Error
	if errors.As(err, &opErr) {
		return true
	}
	if errors.Is(err, ErrEmailSendFailed) {
		return true
	}
	return StatusCode(err) != http.StatusInternalServerError
}
