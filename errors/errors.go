// Package errors defines the error types produced while parsing a script.
//
// The central type is the Error interface. Parse failures carry a source
// Position; a List aggregates every failure found while scanning so a host
// can report more than just the first one.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Rastler3D/query-lang/token"
)

// New is a convenience wrapper for errors.New in the standard library. It
// does not return a query-lang Error.
func New(msg string) error { return errors.New(msg) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Message implements the error interface and defers formatting, the way
// fmt.Errorf args are deferred, so a Message can be inspected (Msg) before
// being rendered to text.
type Message struct {
	format string
	args   []interface{}
}

// NewMessagef creates a deferred error message.
func NewMessagef(format string, args ...interface{}) Message {
	return Message{format: format, args: args}
}

// Msg returns the unformatted message and its arguments.
func (m *Message) Msg() (format string, args []interface{}) { return m.format, m.args }

func (m *Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

// Error is the common interface satisfied by all errors this package
// produces: a position-tagged message.
type Error interface {
	error
	// Position returns the source position at which the error occurred,
	// or token.NoPos if none is known.
	Position() token.Pos
	// Msg returns the unformatted message and its arguments.
	Msg() (format string, args []interface{})
}

type posError struct {
	pos token.Pos
	Message
}

func (e *posError) Position() token.Pos { return e.pos }

// Newf creates an Error tagged with the given position.
func Newf(p token.Pos, format string, args ...interface{}) Error {
	return &posError{pos: p, Message: NewMessagef(format, args...)}
}

// Wrapf creates an Error tagged with p whose message also reports the cause.
func Wrapf(cause error, p token.Pos, format string, args ...interface{}) Error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, cause)
	}
	return &posError{pos: p, Message: NewMessagef("%s", msg)}
}

// List is a list of Errors encountered while parsing. A List is itself an
// Error, and renders every entry on its own line, in list order (Sort
// orders the entries by position).
type List []Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		if pos := e.Position(); pos.IsValid() {
			fmt.Fprintf(&b, "%d: %s", pos, e.Error())
		} else {
			b.WriteString(e.Error())
		}
	}
	return b.String()
}

func (l List) Position() token.Pos {
	if len(l) == 0 {
		return token.NoPos
	}
	return l[0].Position()
}

func (l List) Msg() (format string, args []interface{}) {
	if len(l) == 0 {
		return "", nil
	}
	return l[0].Msg()
}

// Append adds err to l, flattening err if it is itself a List.
func Append(l List, err error) List {
	switch x := err.(type) {
	case nil:
		return l
	case List:
		return append(l, x...)
	case Error:
		return append(l, x)
	default:
		return append(l, Newf(token.NoPos, "%s", x.Error()))
	}
}

// Sort orders l by source position, in place.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool { return l[i].Position() < l[j].Position() })
}
