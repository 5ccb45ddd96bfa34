package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates a client-side required-field failure.
	// No upstream call is made for these.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeAuthentication indicates rejected credentials or a rejected
	// OTP code, surfaced inline on the form.
	ErrCodeAuthentication ErrorCode = "authentication"
	// ErrCodeOTPIncomplete indicates an OTP shorter than the required six
	// digits, caught before any network call.
	ErrCodeOTPIncomplete ErrorCode = "otp_incomplete"
	// ErrCodeAuthExpired indicates an upstream 401: the session is cleared
	// globally and the user must log in again.
	ErrCodeAuthExpired ErrorCode = "authorization_expired"
	// ErrCodeUpstream indicates a transport failure, timeout, non-2xx
	// response, or malformed body from the CRM API.
	ErrCodeUpstream ErrorCode = "upstream"
	// ErrCodeNotFound indicates a missing resource.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports error wrapping and unwrapping for use
// with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message. For upstream errors this
	// is the server-provided message when one was present in the body.
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
	// Status is the upstream HTTP status, when the error originated from
	// an upstream response (optional).
	Status int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Authentication creates a new Authentication error.
func Authentication(message string) *AppError {
	return &AppError{Code: ErrCodeAuthentication, Message: message}
}

// OTPIncomplete creates the client-side incomplete-OTP error.
func OTPIncomplete() *AppError {
	return &AppError{Code: ErrCodeOTPIncomplete, Message: "please enter a complete 6-digit OTP"}
}

// AuthExpired creates the global authorization-expired error raised on
// any upstream 401.
func AuthExpired() *AppError {
	return &AppError{Code: ErrCodeAuthExpired, Message: "authorization expired, sign in again"}
}

// Upstream creates an upstream error carrying the server's HTTP status
// and the message extracted from its body (or a transport message).
func Upstream(status int, message string) *AppError {
	return &AppError{Code: ErrCodeUpstream, Message: message, Status: status}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsAuthentication checks if an error is an Authentication error.
func IsAuthentication(err error) bool { return isCode(err, ErrCodeAuthentication) }

// IsOTPIncomplete checks if an error is the incomplete-OTP error.
func IsOTPIncomplete(err error) bool { return isCode(err, ErrCodeOTPIncomplete) }

// IsAuthExpired checks if an error is the authorization-expired error.
func IsAuthExpired(err error) bool { return isCode(err, ErrCodeAuthExpired) }

// IsUpstream checks if an error is an Upstream error.
func IsUpstream(err error) bool { return isCode(err, ErrCodeUpstream) }

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool { return isCode(err, ErrCodeInternal) }

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// UpstreamStatus returns the upstream HTTP status carried by an error, or
// zero when the error did not originate from an upstream response.
func UpstreamStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}
