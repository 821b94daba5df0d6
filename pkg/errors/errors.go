// Package errors provides structured error types for fsa.
//
// Every failure raised by the automaton core carries one of two codes that
// together form the error taxonomy of the engine:
//   - CONFIGURATION: the automaton is used before it is minimally ready
//     (empty alphabet, no states, no transitions, no initial or accept state)
//   - VALIDATION: a builder call or a run references a symbol, output symbol
//     or state that is not declared, or asks for a second initial state
//
// Rejection of an input sequence is not an error and never surfaces here.
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeValidation, automaton.ErrInvalidSymbol, "transition q0 -> q1 on %q", "z")
//	if errors.Is(err, errors.ErrCodeValidation) {
//	    // caller contract violation
//	}
//
// The sentinel cause stays reachable through the standard library:
//
//	stderrors.Is(err, automaton.ErrInvalidSymbol) // true
//
// Outer layers translate codes with [HTTPStatus] and [ExitCode].
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code classifies an [Error].
type Code string

const (
	// Engine taxonomy.
	ErrCodeConfiguration Code = "CONFIGURATION"
	ErrCodeValidation    Code = "VALIDATION"

	// Bad requests and flags outside the engine.
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeUnsupported   Code = "UNSUPPORTED"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// HTTPStatus maps the code to a response status. Unknown codes are 500.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeUnsupported:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Error carries a code, a message and an optional cause. It prints as
// "CODE: message: cause".
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error without a cause.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an error whose chain continues with cause, so errors.Is
// still matches sentinels inside it.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e := outermost(err); e != nil {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	c := GetCode(err)
	return c != "" && c == code
}

// UserMessage drops the code prefix of the outermost *Error.
func UserMessage(err error) string {
	e := outermost(err)
	if e == nil {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func outermost(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// HTTPStatus is the response status for err; see [Code.HTTPStatus].
func HTTPStatus(err error) int {
	return GetCode(err).HTTPStatus()
}

// ExitCode is the process exit status for err: 0 for nil, 2 for errors the
// user can fix by changing arguments or input, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeUnsupported,
		ErrCodeNotFound, ErrCodeFileNotFound:
		return 2
	}
	return 1
}
