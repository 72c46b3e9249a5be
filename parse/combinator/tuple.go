package combinator

import "github.com/Rastler3D/query-lang/errors"

// Pair and Triple are the fixed-arity heterogeneous results returned by
// SeparatedTuple/SeparatedPermutation, standing in for the tuple types Rust
// gets for free — Go has no variadic generics, so each arity this grammar
// actually needs (2 and 3) gets its own named result type and its own
// SeparatedTupleN/SeparatedPermutationN function, rather than one macro
// expanding over an arbitrary arity the way utils.rs does.
type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// SeparatedTuple2 runs p1, then sep, then p2, in that fixed order (spec
// §4.3: "runs p1, then for each subsequent pi runs sep then pi").
func SeparatedTuple2[A, B, S any](sep Parser[S], p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return func(s State) (Pair[A, B], State, error) {
		a, rest, err := p1(s)
		if err != nil {
			return Pair[A, B]{}, s, err
		}
		_, rest, err = sep(rest)
		if err != nil {
			return Pair[A, B]{}, s, err
		}
		b, rest, err := p2(rest)
		if err != nil {
			return Pair[A, B]{}, s, err
		}
		return Pair[A, B]{First: a, Second: b}, rest, nil
	}
}

// SeparatedTuple3 is SeparatedTuple2 extended to three ordered parsers.
func SeparatedTuple3[A, B, C, S any](sep Parser[S], p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[Triple[A, B, C]] {
	return func(s State) (Triple[A, B, C], State, error) {
		a, rest, err := p1(s)
		if err != nil {
			return Triple[A, B, C]{}, s, err
		}
		_, rest, err = sep(rest)
		if err != nil {
			return Triple[A, B, C]{}, s, err
		}
		b, rest, err := p2(rest)
		if err != nil {
			return Triple[A, B, C]{}, s, err
		}
		_, rest, err = sep(rest)
		if err != nil {
			return Triple[A, B, C]{}, s, err
		}
		c, rest, err := p3(rest)
		if err != nil {
			return Triple[A, B, C]{}, s, err
		}
		return Triple[A, B, C]{First: a, Second: b, Third: c}, rest, nil
	}
}

// SeparatedPermutation2 accepts p1 and p2 in either order, separated by
// sep, per spec §4.3: on each attempt every still-unfilled sub-parser is
// tried in declaration order; the first to succeed fills its slot; a
// separator is consumed before every attempt after the first. If, with
// slots remaining, the separator is missing or none of the unfilled parsers
// match, it fails with the error of the separator or of the last unfilled
// parser it tried; the sub-parsers' errors are not merged into one.
func SeparatedPermutation2[A, B, S any](sep Parser[S], p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return func(s State) (Pair[A, B], State, error) {
		var a A
		var b B
		var aFilled, bFilled bool
		cur := s
		first := true
		for !aFilled || !bFilled {
			if !first {
				_, rest, err := sep(cur)
				if err != nil {
					return Pair[A, B]{}, s, permutationError(s, err)
				}
				cur = rest
			}
			first = false

			matched := false
			var lastErr error
			if !aFilled {
				v, rest, err := p1(cur)
				if err == nil {
					a, aFilled, cur, matched = v, true, rest, true
				} else if isFatal(err) {
					return Pair[A, B]{}, s, err
				} else {
					lastErr = err
				}
			}
			if !matched && !bFilled {
				v, rest, err := p2(cur)
				if err == nil {
					b, bFilled, cur, matched = v, true, rest, true
				} else if isFatal(err) {
					return Pair[A, B]{}, s, err
				} else {
					lastErr = err
				}
			}
			if !matched {
				return Pair[A, B]{}, s, permutationError(s, lastErr)
			}
		}
		return Pair[A, B]{First: a, Second: b}, cur, nil
	}
}

// SeparatedPermutation3 is SeparatedPermutation2 extended to three
// sub-parsers.
func SeparatedPermutation3[A, B, C, S any](sep Parser[S], p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[Triple[A, B, C]] {
	return func(s State) (Triple[A, B, C], State, error) {
		var a A
		var b B
		var c C
		var aFilled, bFilled, cFilled bool
		cur := s
		first := true
		for !aFilled || !bFilled || !cFilled {
			if !first {
				_, rest, err := sep(cur)
				if err != nil {
					return Triple[A, B, C]{}, s, permutationError(s, err)
				}
				cur = rest
			}
			first = false

			matched := false
			var lastErr error
			if !aFilled {
				v, rest, err := p1(cur)
				if err == nil {
					a, aFilled, cur, matched = v, true, rest, true
				} else if isFatal(err) {
					return Triple[A, B, C]{}, s, err
				} else {
					lastErr = err
				}
			}
			if !matched && !bFilled {
				v, rest, err := p2(cur)
				if err == nil {
					b, bFilled, cur, matched = v, true, rest, true
				} else if isFatal(err) {
					return Triple[A, B, C]{}, s, err
				} else {
					lastErr = err
				}
			}
			if !matched && !cFilled {
				v, rest, err := p3(cur)
				if err == nil {
					c, cFilled, cur, matched = v, true, rest, true
				} else if isFatal(err) {
					return Triple[A, B, C]{}, s, err
				} else {
					lastErr = err
				}
			}
			if !matched {
				return Triple[A, B, C]{}, s, permutationError(s, lastErr)
			}
		}
		return Triple[A, B, C]{First: a, Second: b, Third: c}, cur, nil
	}
}

func permutationError(s State, cause error) error {
	if cause == nil {
		return errors.Newf(s.Pos(), "no permutation found")
	}
	return cause
}
