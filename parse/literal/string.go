// Package literal decodes the token-level literal forms the grammar
// recognizes inside a quoted string: JSON string escapes (spec §4.4,
// including \uXXXX with high/low surrogate pairing) and number literals
// (spec's int-vs-float disambiguation by presence of '.', 'e' or 'E').
//
// This is a much narrower sibling of the teacher's cue/literal package:
// CUE strings support raw strings, multiline `"""`-fenced forms, byte
// strings and numeric bases/multipliers (Ki, Mi, ...) that this grammar's
// surface syntax — a JSON superset, nothing more — has no use for. The
// surrogate-pair handling below is grounded directly on cue/literal's
// string_test.go behavior for \uXXXX pairs (including the "lone/double
// high surrogate is an error" case), the one part of the teacher's string
// handling this grammar actually needs.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrSurrogate is returned when a \uXXXX escape starts a UTF-16 high
// surrogate that isn't immediately followed by a matching low surrogate.
var ErrSurrogate = errors.New("literal: invalid surrogate pair")

// Unquote decodes the body of a double-quoted JSON string (the quotes
// themselves must already have been stripped by the caller) applying
// standard JSON escapes: \" \\ \/ \b \f \n \r \t and \uXXXX, the last with
// high/low surrogate pairing per spec §4.4.
func Unquote(body string) (string, error) {
	var b strings.Builder
	b.Grow(len(body))
	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(body[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		if i+1 >= len(body) {
			return "", fmt.Errorf("literal: dangling escape at end of string")
		}
		esc := body[i+1]
		switch esc {
		case '"', '\\', '/':
			b.WriteByte(esc)
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r, n, err := decodeUnicodeEscape(body[i:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			return "", fmt.Errorf("literal: invalid escape \\%c", esc)
		}
	}
	return b.String(), nil
}

const highSurrogateLo, highSurrogateHi = 0xD800, 0xDC00
const lowSurrogateLo, lowSurrogateHi = 0xDC00, 0xE000

// decodeUnicodeEscape decodes a \uXXXX escape (and, if it's a high
// surrogate, the \uXXXX low surrogate that must follow it) starting at
// s[0] == '\\'. It returns the decoded rune and the number of input bytes
// consumed.
func decodeUnicodeEscape(s string) (rune, int, error) {
	first, err := parseHex4(s)
	if err != nil {
		return 0, 0, err
	}
	if first < highSurrogateLo || first >= highSurrogateHi {
		// Not a high surrogate: including the case where it's a lone low
		// surrogate. JSON doesn't forbid a lone low surrogate the way it
		// forbids an unpaired high one, so it is accepted rather than
		// rejected; Unquote's WriteRune encodes it as U+FFFD.
		return rune(first), 6, nil
	}
	if len(s) < 12 || s[6] != '\\' || s[7] != 'u' {
		return 0, 0, ErrSurrogate
	}
	second, err := parseHex4(s[6:])
	if err != nil {
		return 0, 0, err
	}
	if second < lowSurrogateLo || second >= lowSurrogateHi {
		return 0, 0, ErrSurrogate
	}
	r := utf16.DecodeRune(rune(first), rune(second))
	if r == utf8.RuneError {
		return 0, 0, ErrSurrogate
	}
	return r, 12, nil
}

func parseHex4(s string) (uint16, error) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, fmt.Errorf("literal: malformed \\u escape")
	}
	n, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("literal: malformed \\u escape: %w", err)
	}
	return uint16(n), nil
}
