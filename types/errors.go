package types

import (
	"fmt"
)

// Error codes returned by the engine.
const (
	CodeAlreadyExists       = "AlreadyExists"
	CodeTableNotFound       = "TableNotFound"
	CodeItemNotFound        = "ItemNotFound"
	CodeMissingPartitionKey = "MissingPartitionKey"
	CodeMalformedAction     = "MalformedAction"
)

// An Error wraps lower level errors with code, message and an original error.
// The underlying concrete error type may also satisfy other interfaces which
// can be to used to obtain more specific information about the error.
type Error interface {
	error

	Code() string
	Message() string
	OrigErr() error
}

// NewError returns an Error object described by the code, message, and origErr.
func NewError(code, message string, origErr error) Error {
	return &baseError{
		code:    code,
		message: message,
		origErr: origErr,
	}
}

// SprintError returns a string of the formatted error code.
func SprintError(code, message string, origErr error) string {
	msg := fmt.Sprintf("%s: %s", code, message)
	if origErr != nil {
		msg = fmt.Sprintf("%s\ncaused by: %s", msg, origErr.Error())
	}

	return msg
}

// A baseError wraps the code and message which defines an error. It also
// can be used to wrap an original error object.
type baseError struct {
	code    string
	message string
	origErr error
}

// Error returns the string representation of the error.
func (b baseError) Error() string {
	return SprintError(b.code, b.message, b.origErr)
}

// String returns the string representation of the error.
// Alias for Error to satisfy the stringer interface.
func (b baseError) String() string {
	return b.Error()
}

// Code returns the short phrase depicting the classification of the error.
func (b baseError) Code() string {
	return b.code
}

// Message returns the error details message.
func (b baseError) Message() string {
	return b.message
}

// OrigErr returns the original error if one was set. Nil is returned if no
// error was set.
func (b baseError) OrigErr() error {
	return b.origErr
}
