package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is a parsed JSON number literal, still tagged Int vs Float the
// same way spec §3's Dynamic Number is: by whether the source text
// contained a '.', 'e' or 'E', not by the magnitude of the value.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// ParseNumber classifies and parses a JSON number literal's text (as
// matched by the grammar's number production) into a Number.
func ParseNumber(text string) (Number, error) {
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Number{}, fmt.Errorf("literal: invalid number %q: %w", text, err)
		}
		return Number{IsFloat: true, Float: f}, nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// An integer literal too large for int64 (e.g. a 30-digit
		// number) still has no '.', 'e' or 'E' in its text; the
		// teacher's own number grammar would classify it as an
		// oversized integer and fall back to its arbitrary-precision
		// apd.Decimal. This value model's Number is a closed
		// int64/float64 union (spec §3), so the analogous fallback
		// here is float64, accepting the precision loss rather than
		// introducing a third Number representation the rest of the
		// evaluator would need to know about.
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return Number{}, fmt.Errorf("literal: invalid number %q: %w", text, err)
		}
		return Number{IsFloat: true, Float: f}, nil
	}
	return Number{IsFloat: false, Int: i}, nil
}
