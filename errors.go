package arcs

import (
	"errors"
	"fmt"
)

var (
	// ErrParse reports a malformed quotes file.
	ErrParse = errors.New("cannot parse quotes file")
	// ErrValidation reports a rejected field value.
	ErrValidation = errors.New("invalid value")
	// ErrExport reports a document rendering failure.
	ErrExport = errors.New("export failed")
)

// Error wraps a failure of the quote layer with its category, so callers can
// branch with errors.Is on the sentinel while keeping the detail message.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func parseErrorf(err error, format string, args ...any) error {
	return &Error{Kind: ErrParse, Msg: fmt.Sprintf(format, args...), Err: err}
}

func validationf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}
