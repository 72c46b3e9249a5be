// Package combinator is a small parser-combinator kit in the spirit of the
// distillation source's use of the Rust `nom` crate, generalized here with
// Go generics instead of nom's macro-generated tuple impls. It provides the
// two primitives spec §4.3 calls out by name — SeparatedTuple (ordered,
// fixed-arity) and SeparatedPermutation (order-independent, fixed-arity) —
// plus the handful of smaller combinators (Alt, Map, Many0, Cut, ...) the
// grammar package builds on top of.
//
// A Parser[T] consumes a prefix of a State's remaining input and either
// succeeds with a T and the State advanced past what it consumed, or fails
// with an error. Failures come in two flavors: ordinary (recoverable —
// Alt tries the next alternative) and "cut" (committed — Alt stops trying
// alternatives and propagates immediately), mirroring nom's cut combinator
// and the grammar's documented commit points (spec §7).
package combinator

import (
	"github.com/Rastler3D/query-lang/errors"
	"github.com/Rastler3D/query-lang/token"
)

// State is the input remaining to be parsed plus enough bookkeeping to
// resolve a token.Pos back to a line/column via the originating token.File.
type State struct {
	file *token.File
	rest string
	off  int // byte offset into file.Src() that rest starts at
}

// NewState builds the initial State for a complete input string.
func NewState(file *token.File, input string) State {
	return State{file: file, rest: input, off: 0}
}

// Rest returns the unconsumed input.
func (s State) Rest() string { return s.rest }

// Pos returns the source position of the start of the remaining input.
func (s State) Pos() token.Pos { return s.file.Pos(s.off) }

// Advance returns a State with n bytes consumed from the front.
func (s State) Advance(n int) State {
	return State{file: s.file, rest: s.rest[n:], off: s.off + n}
}

// fatal wraps an error to mark it as a committed failure: Alt must not try
// further alternatives once one is returned.
type fatal struct{ err error }

func (f *fatal) Error() string { return f.err.Error() }
func (f *fatal) Unwrap() error { return f.err }

func isFatal(err error) bool {
	_, ok := err.(*fatal)
	return ok
}

// FatalError wraps an already-constructed error as committed, for grammar
// code that recognizes a construct (e.g. a "$$" sigil) outside of a single
// Parser call and needs to signal that a subsequent failure (e.g. a
// malformed path after the sigil) must not be backtracked past by Alt.
func FatalError(err error) error {
	return &fatal{err: err}
}

// Parser consumes a prefix of s's remaining input, producing a T.
type Parser[T any] func(s State) (T, State, error)

// Fail builds a Parser that always fails with a position-tagged message.
func Fail[T any](format string, args ...interface{}) Parser[T] {
	return func(s State) (T, State, error) {
		var zero T
		return zero, s, errors.Newf(s.Pos(), format, args...)
	}
}

// Cut marks any error from p as committed: once p has started matching
// (spec calls this "the body is cut"), callers stop backtracking into
// sibling alternatives and instead report p's failure directly.
func Cut[T any](p Parser[T]) Parser[T] {
	return func(s State) (T, State, error) {
		v, rest, err := p(s)
		if err != nil && !isFatal(err) {
			return v, rest, &fatal{err: err}
		}
		return v, rest, err
	}
}

// Map transforms a successful parse result.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(s State) (U, State, error) {
		v, rest, err := p(s)
		if err != nil {
			var zero U
			return zero, s, err
		}
		return f(v), rest, nil
	}
}

// MapErr transforms a successful parse result, allowed to itself fail
// (e.g. decoding a hex escape into a rune).
func MapErr[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(s State) (U, State, error) {
		v, rest, err := p(s)
		if err != nil {
			var zero U
			return zero, s, err
		}
		u, ferr := f(v)
		if ferr != nil {
			var zero U
			return zero, s, errors.Newf(s.Pos(), "%s", ferr.Error())
		}
		return u, rest, nil
	}
}

// Alt tries each parser in order, returning the first success. A fatal
// (Cut) error from any alternative aborts immediately instead of trying
// the rest, matching the grammar's "committed after recognizing a
// construct" discipline (spec §7).
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(s State) (T, State, error) {
		var firstErr error
		for _, p := range ps {
			v, rest, err := p(s)
			if err == nil {
				return v, rest, nil
			}
			if isFatal(err) {
				return v, s, err
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		var zero T
		if firstErr == nil {
			firstErr = errors.Newf(s.Pos(), "no alternative matched")
		}
		return zero, s, firstErr
	}
}

// Opt succeeds with (value, true) if p succeeds, or (zero, false) without
// consuming input if p fails with a recoverable error. A fatal error from
// p still propagates.
func Opt[T any](p Parser[T]) Parser[struct {
	Value T
	Ok    bool
}] {
	return func(s State) (struct {
		Value T
		Ok    bool
	}, State, error) {
		v, rest, err := p(s)
		if err == nil {
			return struct {
				Value T
				Ok    bool
			}{Value: v, Ok: true}, rest, nil
		}
		if isFatal(err) {
			var zero T
			return struct {
				Value T
				Ok    bool
			}{Value: zero}, s, err
		}
		var zero T
		return struct {
			Value T
			Ok    bool
		}{Value: zero}, s, nil
	}
}

// Many0 applies p repeatedly until it fails (recoverably), collecting
// results. A fatal error from p propagates.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(s State) ([]T, State, error) {
		var out []T
		cur := s
		for {
			v, rest, err := p(cur)
			if err != nil {
				if isFatal(err) {
					return nil, s, err
				}
				return out, cur, nil
			}
			out = append(out, v)
			cur = rest
		}
	}
}

// SeparatedList0 parses zero or more elements separated by sep.
func SeparatedList0[T, S any](sep Parser[S], elem Parser[T]) Parser[[]T] {
	return func(s State) ([]T, State, error) {
		first, rest, err := elem(s)
		if err != nil {
			if isFatal(err) {
				return nil, s, err
			}
			return nil, s, nil
		}
		out := []T{first}
		cur := rest
		for {
			_, afterSep, serr := sep(cur)
			if serr != nil {
				return out, cur, nil
			}
			v, afterElem, err := elem(afterSep)
			if err != nil {
				if isFatal(err) {
					return nil, s, err
				}
				return out, cur, nil
			}
			out = append(out, v)
			cur = afterElem
		}
	}
}

// SeparatedList1 is SeparatedList0 but fails if no element is present.
func SeparatedList1[T, S any](sep Parser[S], elem Parser[T]) Parser[[]T] {
	return func(s State) ([]T, State, error) {
		out, rest, err := SeparatedList0(sep, elem)(s)
		if err != nil {
			return nil, s, err
		}
		if len(out) == 0 {
			return nil, s, errors.Newf(s.Pos(), "expected at least one element")
		}
		return out, rest, nil
	}
}

// Delimited parses open, then body, then close, returning only body's
// result. close is wrapped in Cut by the caller where the grammar commits
// to that construct already having matched (e.g. after a recognized `{`).
func Delimited[O, C, B any](open Parser[O], body Parser[B], close Parser[C]) Parser[B] {
	return func(s State) (B, State, error) {
		var zero B
		_, rest, err := open(s)
		if err != nil {
			return zero, s, err
		}
		v, rest2, err := body(rest)
		if err != nil {
			return zero, s, err
		}
		_, rest3, err := close(rest2)
		if err != nil {
			return zero, s, err
		}
		return v, rest3, nil
	}
}

// Preceded parses and discards prefix, then returns body's result.
func Preceded[P, B any](prefix Parser[P], body Parser[B]) Parser[B] {
	return func(s State) (B, State, error) {
		var zero B
		_, rest, err := prefix(s)
		if err != nil {
			return zero, s, err
		}
		return body(rest)
	}
}

// Terminated parses body, then discards suffix, returning body's result.
func Terminated[B, X any](body Parser[B], suffix Parser[X]) Parser[B] {
	return func(s State) (B, State, error) {
		var zero B
		v, rest, err := body(s)
		if err != nil {
			return zero, s, err
		}
		_, rest2, err := suffix(rest)
		if err != nil {
			return zero, s, err
		}
		return v, rest2, nil
	}
}
