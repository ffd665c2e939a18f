// Package errors defines the coded error type shared by discovery, the
// pipeline and the CLI.
//
// Every failure that reaches the user carries a [Code]. Discovery wraps
// file errors with the offending path, so a broken project deep in a tree
// surfaces as, for example:
//
//	INVALID_PROJECT: parse src/Web/Web.csproj: XML syntax error on line 3
//
// Callers branch on codes rather than strings:
//
//	if errors.Has(err, errors.ErrCodeFileNotFound) {
//		// the root or a project file vanished mid-run
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Options and flags.
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Discovery.
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidProject  Code = "INVALID_PROJECT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeIO              Code = "IO_ERROR"

	// Rendering and anything unexpected.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

func (c Code) String() string { return string(c) }

// Error pairs a code with a message and the error that caused it, if any.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error whose cause is err.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the outermost *Error in the chain of err has code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Has reports whether any *Error in the chain of err carries code.
// Unlike [Is], it keeps unwrapping past non-matching *Error values, so a
// FILE_NOT_FOUND buried under an INVALID_PROJECT is still found.
func Has(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage joins the messages of every *Error in the chain of err with
// ": ", dropping codes, and ends with the uncoded root cause if there is
// one. Uncoded errors are returned as err.Error().
//
//	parse Web/packages.config: package entry 1 missing "id" attribute
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	var parts []string
	for {
		parts = append(parts, e.Message)
		cause := e.Cause
		if cause == nil {
			break
		}
		if !errors.As(cause, &e) {
			parts = append(parts, cause.Error())
			break
		}
	}
	return strings.Join(parts, ": ")
}
