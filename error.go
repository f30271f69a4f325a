package linerange

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure of a single run.
type ErrorKind int

const (
	// InvalidRangeSyntax is reported when an expression matches no grammar form or one of its
	// numbers is not a valid line number.
	InvalidRangeSyntax ErrorKind = iota + 1
	// SourceUnavailable is reported when the input file cannot be opened.
	SourceUnavailable
	// ReadFailure is reported when reading the input fails part way through.
	ReadFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidRangeSyntax:
		return "invalid range syntax"
	case SourceUnavailable:
		return "source unavailable"
	case ReadFailure:
		return "read failure"
	default:
		return "unknown error"
	}
}

// Sentinels for use with errors.Is. Any *Error matches the sentinel of the same kind.
var (
	ErrInvalidRange      = &Error{Kind: InvalidRangeSyntax}
	ErrSourceUnavailable = &Error{Kind: SourceUnavailable}
	ErrReadFailure       = &Error{Kind: ReadFailure}
)

// Error is returned by the parser, the line stream and the selector.
type Error struct {
	Kind ErrorKind
	// Input is the range expression or file path the error relates to. May be empty.
	Input string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	if e.Input != "" {
		msg = fmt.Sprintf("%s %q", e.Kind, e.Input)
	} else {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Kind == t.Kind
}
