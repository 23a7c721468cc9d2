// Package apperr defines user-facing application errors.
package apperr

import "fmt"

// Error is an application error with a printable message and an optional
// underlying cause.
type Error struct {
	Err     error
	Message string
	args    []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.args) > 0 {
		msg = fmt.Sprintf(e.Message, e.args...)
	}

	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fmt returns a copy of e with format arguments applied to its message.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{Message: e.Message, Err: e.Err, args: args}
}

// Wrap returns a copy of e with err as its underlying cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{Message: e.Message, Err: err, args: e.args}
}

// Is matches copies of the same error regardless of their format
// arguments or wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == e.Message
}
