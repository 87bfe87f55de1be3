// Package errx provides registry-based application errors with an error
// type, an HTTP status, and structured details.
package errx

import (
	"errors"
	"fmt"
)

// Type classifies an error for handling and reporting.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeInternal       Type = "INTERNAL"
	TypeExternal       Type = "EXTERNAL"
)

// Code is a registered error code within a registry.
type Code struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry holds the error codes of one domain package, namespaced by prefix.
type Registry struct {
	prefix string
}

// NewRegistry creates a registry with the given code prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register defines a new error code in the registry.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		Code:       r.prefix + "." + code,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// New instantiates an error for a registered code.
func (r *Registry) New(code Code) *Error {
	return &Error{
		Code:       code.Code,
		Type:       code.Type,
		Message:    code.Message,
		HTTPStatus: code.HTTPStatus,
	}
}

// Error is an application error with classification and details.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair to the error and returns it.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches an underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse renders the error as a JSON-serializable body.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error of the given type. If err
// is already an *Error it is returned unchanged so classification survives.
func Wrap(err error, message string, t Type) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	status := 500
	switch t {
	case TypeValidation:
		status = 400
	case TypeNotFound:
		status = 404
	case TypeConflict:
		status = 409
	case TypeExternal:
		status = 502
	}
	return &Error{
		Code:       "WRAPPED." + string(t),
		Type:       t,
		Message:    message,
		HTTPStatus: status,
		cause:      err,
	}
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, t Type) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsCode reports whether err carries the given registered code.
func IsCode(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code.Code
	}
	return false
}
