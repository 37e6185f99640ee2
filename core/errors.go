package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// General error codes
const (
	NOERROR     int = 0
	EMISSING    int = 122 // resource does not exist, e.g. a widget id never allocated
	EINVALID    int = 123 // validation failed
	EOVERFLOW   int = 124 // fixed capacity exceeded (layout nesting, style depth)
	EUNBALANCED int = 125 // begin/end or push/pop calls do not match
	EINTERNAL   int = 126 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EOVERFLOW:
		return "capacity exceeded"
	case EUNBALANCED:
		return "unbalanced"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	if e.msg != "" && e.msg != e.error.Error() {
		return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
	}
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's default text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints an error to stderr, preferring the user message of
// an AppError.
func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// StackDepth names one of the frame's stacks (layouts, styles, ...) and its
// depth.
type StackDepth struct {
	Stack string
	Depth int
}

func (sd StackDepth) String() string {
	return fmt.Sprintf("%s=%d", sd.Stack, sd.Depth)
}

// Overflow is an error of kind EOVERFLOW, telling that a stack would grow
// beyond its fixed capacity.
func Overflow(stack string, limit int) error {
	return Error(EOVERFLOW, "%s stack exceeds %d levels", stack, limit)
}

// Unbalanced is an error of kind EUNBALANCED listing every stack not at rest.
// Stacks of depth 0 are left out. If all stacks are at rest, Unbalanced
// returns nil.
func Unbalanced(stacks ...StackDepth) error {
	var open []string
	for _, sd := range stacks {
		if sd.Depth != 0 {
			open = append(open, sd.String())
		}
	}
	if len(open) == 0 {
		return nil
	}
	return Error(EUNBALANCED, "unbalanced stacks at end of frame: %s", strings.Join(open, ", "))
}
