// Package parse is the recursive-descent grammar (spec §4.4): literals,
// paths, predicates, operators and expressions, built directly on top of
// package combinator the way the distillation source builds its grammar
// directly on `nom` combinators over `&str` — there is no separate
// tokenizing pass (no `parse/scanner`): the grammar recognizes whitespace,
// punctuation and literal text straight out of the remaining input, which
// is exactly how the original crate's parser.rs operates and how a
// JSON-superset grammar this size is conventionally written with a
// combinator kit.
package parse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Rastler3D/query-lang/errors"
	"github.com/Rastler3D/query-lang/parse/combinator"
	"github.com/Rastler3D/query-lang/parse/literal"
)

// skipWs advances s past any leading ASCII/Unicode whitespace.
func skipWs(s combinator.State) combinator.State {
	rest := s.Rest()
	i := 0
	for i < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return s.Advance(i)
}

// Ws skips surrounding whitespace around p, matching the teacher grammar's
// pervasive `ws(...)` wrapper.
func Ws[T any](p combinator.Parser[T]) combinator.Parser[T] {
	return func(s combinator.State) (T, combinator.State, error) {
		v, rest, err := p(skipWs(s))
		if err != nil {
			var zero T
			return zero, s, err
		}
		return v, skipWs(rest), nil
	}
}

// Char matches a single literal byte (ASCII punctuation in this grammar:
// '{', '}', '[', ']', ':', ',', '"').
func Char(c byte) combinator.Parser[byte] {
	return func(s combinator.State) (byte, combinator.State, error) {
		rest := s.Rest()
		if len(rest) == 0 || rest[0] != c {
			return 0, s, errors.Newf(s.Pos(), "expected %q", c)
		}
		return c, s.Advance(1), nil
	}
}

// Tag matches a literal string exactly.
func Tag(text string) combinator.Parser[string] {
	return func(s combinator.State) (string, combinator.State, error) {
		if !strings.HasPrefix(s.Rest(), text) {
			return "", s, errors.Newf(s.Pos(), "expected %q", text)
		}
		return text, s.Advance(len(text)), nil
	}
}

// EscapedString matches a double-quoted string token and returns its raw,
// still-escaped body (the bytes between the quotes), without interpreting
// any escape sequence — callers that need the sigil ('$', '$$') peek or
// strip from this raw form before unescaping, since a sigil is never
// itself escaped, while callers that need the string's value (StringValue)
// run the body through literal.Unquote.
func EscapedString(s combinator.State) (string, combinator.State, error) {
	rest := s.Rest()
	if len(rest) == 0 || rest[0] != '"' {
		return "", s, errors.Newf(s.Pos(), "expected string")
	}
	i := 1
	for i < len(rest) {
		switch rest[i] {
		case '\\':
			if i+1 >= len(rest) {
				return "", s, errors.Newf(s.Pos(), "unterminated string")
			}
			i += 2
		case '"':
			return rest[1:i], s.Advance(i + 1), nil
		default:
			i++
		}
	}
	return "", s, errors.Newf(s.Pos(), "unterminated string")
}

// StringBody parses a double-quoted string token and unescapes its body
// into the string it denotes.
func StringBody(s combinator.State) (string, combinator.State, error) {
	raw, rest, err := EscapedString(s)
	if err != nil {
		return "", s, err
	}
	v, uerr := literal.Unquote(raw)
	if uerr != nil {
		return "", s, errors.Newf(s.Pos(), "%s", uerr.Error())
	}
	return v, rest, nil
}

// Null matches the literal token `null`.
func Null(s combinator.State) (struct{}, combinator.State, error) {
	_, rest, err := Tag("null")(s)
	return struct{}{}, rest, err
}

// Boolean matches `true` or `false`.
func Boolean(s combinator.State) (bool, combinator.State, error) {
	return combinator.Alt(
		combinator.Map(Tag("false"), func(string) bool { return false }),
		combinator.Map(Tag("true"), func(string) bool { return true }),
	)(s)
}

// numberText matches a JSON number literal's raw text: an optional '-',
// digits, an optional fractional part, an optional exponent.
func numberText(s combinator.State) (string, combinator.State, error) {
	rest := s.Rest()
	i := 0
	if i < len(rest) && rest[i] == '-' {
		i++
	}
	start := i
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == start {
		return "", s, errors.Newf(s.Pos(), "expected number")
	}
	if i < len(rest) && rest[i] == '.' {
		i++
		fracStart := i
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == fracStart {
			return "", s, errors.Newf(s.Pos(), "expected digits after '.'")
		}
	}
	if i < len(rest) && (rest[i] == 'e' || rest[i] == 'E') {
		j := i + 1
		if j < len(rest) && (rest[j] == '+' || rest[j] == '-') {
			j++
		}
		expStart := j
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return rest[:i], s.Advance(i), nil
}

// Number matches a JSON number literal.
func Number(s combinator.State) (literal.Number, combinator.State, error) {
	text, rest, err := numberText(s)
	if err != nil {
		return literal.Number{}, s, err
	}
	n, perr := literal.ParseNumber(text)
	if perr != nil {
		return literal.Number{}, s, errors.Newf(s.Pos(), "%s", perr.Error())
	}
	return n, rest, nil
}

// U64 matches an unsigned integer literal, used for array index steps.
func U64(s combinator.State) (uint64, combinator.State, error) {
	rest := s.Rest()
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, errors.Newf(s.Pos(), "expected array index")
	}
	n, err := strconv.ParseUint(rest[:i], 10, 64)
	if err != nil {
		return 0, s, errors.Newf(s.Pos(), "invalid array index %q", rest[:i])
	}
	return n, s.Advance(i), nil
}
