package faults

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindParse
	KindStructure
	KindBounds
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindStructure:
		return "structure"
	case KindBounds:
		return "bounds"
	case KindIO:
		return "io"
	}
	return "invalid"
}

// Error is a fatal interpreter condition. Whoever drives the interpreter decides
// how to terminate; nothing below cmd/bp exits the process.
type Error struct {
	Kind   Kind
	Msg    string
	Offset int // byte offset in the program text, -1 if unknown
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
		Offset: -1,
	}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
		Offset: -1,
		Err:    err,
	}
}

func (e *Error) At(offset int) *Error {
	e.Offset = offset
	return e
}

// Is reports whether err carries a fault of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInvalid
}
