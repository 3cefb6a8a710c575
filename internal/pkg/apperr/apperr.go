// Package apperr provides the structured error type shared by all services.
// The message on an error is machine-safe and may be returned to clients;
// the wrapped cause is for logs only.
package apperr

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// Code classifies an error for propagation and HTTP mapping.
type Code uint8

const (
	// CodeInternal is for invariant violations and unclassified errors.
	CodeInternal Code = iota

	// CodeUpstreamUnavailable is for transport failures reaching a store or peer service.
	CodeUpstreamUnavailable

	// CodeUpstreamBadStatus is for peer services answering with a non-2xx, non-404 status.
	CodeUpstreamBadStatus

	// CodeNotFound is for missing profiles, products and source vectors.
	CodeNotFound

	// CodeBadRequest is for malformed input such as an unparseable object id.
	CodeBadRequest

	// CodeDataFormat is for response bodies that fail to deserialize.
	CodeDataFormat
)

// HTTPStatusCode turns a Code into an http status code.
func HTTPStatusCode(c Code) int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeBadRequest, CodeDataFormat:
		return http.StatusBadRequest
	case CodeUpstreamUnavailable, CodeUpstreamBadStatus:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a machine-safe message, a code and an optional wrapped cause.
type Error struct {
	orig error
	msg  string
	code Code
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code.
func (e *Error) Code() Code { return e.code }

// PublicMessage returns the client-visible message without the cause.
func (e *Error) PublicMessage() string { return e.msg }

// As unwraps and returns (*Error, true) if err is one of ours.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts a Code from any error, defaulting to CodeInternal.
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error.
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// PublicMessageOf returns the client-visible message for any error. Foreign
// errors collapse to a generic message so internal text never leaks.
func PublicMessageOf(err error) string {
	if e, ok := As(err); ok {
		return e.msg
	}
	return "An internal server error occurred"
}

// Constructors

// New returns a new *Error with the given code and message.
func New(code Code, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message.
func Newf(code Code, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message.
func Wrap(orig error, code Code, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message.
func Wrapf(orig error, code Code, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// Sugar

// NotFoundf returns a not found error.
func NotFoundf(format string, a ...any) error { return Newf(CodeNotFound, format, a...) }

// BadRequestf returns a bad request error.
func BadRequestf(format string, a ...any) error { return Newf(CodeBadRequest, format, a...) }

// DataFormatf returns a data format error.
func DataFormatf(format string, a ...any) error { return Newf(CodeDataFormat, format, a...) }

// Unavailablef returns an upstream unavailable error.
func Unavailablef(format string, a ...any) error { return Newf(CodeUpstreamUnavailable, format, a...) }

// BadStatusf returns an upstream bad status error.
func BadStatusf(format string, a ...any) error { return Newf(CodeUpstreamBadStatus, format, a...) }

// Internalf returns an internal error.
func Internalf(format string, a ...any) error { return Newf(CodeInternal, format, a...) }
