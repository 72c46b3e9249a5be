package parse

import (
	"github.com/Rastler3D/query-lang/errors"
	"github.com/Rastler3D/query-lang/parse/combinator"
)

// OperatorPair parses `"name": args`, requiring the quoted key to match
// name exactly, then running args on whatever follows the colon. This is
// also reused for a named-argument object's individual key/value entries
// (e.g. "$match"'s `"predicate": ...`), not just top-level `"$gt": ...`
// dispatch, matching the original grammar's single `operator_pair`
// helper serving both roles.
func OperatorPair[T any](name string, args combinator.Parser[T]) combinator.Parser[T] {
	return func(s combinator.State) (T, combinator.State, error) {
		var zero T
		key, rest, err := Ws(EscapedString)(s)
		if err != nil {
			return zero, s, err
		}
		if key != name {
			return zero, s, errors.Newf(s.Pos(), "expected %q, got %q", name, key)
		}
		_, rest2, err := Ws(Char(':'))(rest)
		if err != nil {
			return zero, s, err
		}
		return args(rest2)
	}
}

// Arguments2 parses `[ a1, a2 ]`, the positional-argument form used by
// Gt/Lt/Eq in expression position and Between in predicate position (spec
// §4.3/§4.4's `arguments((p1, p2))`).
func Arguments2[A, B any](p1 combinator.Parser[A], p2 combinator.Parser[B]) combinator.Parser[combinator.Pair[A, B]] {
	return func(s combinator.State) (combinator.Pair[A, B], combinator.State, error) {
		return combinator.Delimited(
			Ws(Char('[')),
			combinator.SeparatedTuple2[A, B, byte](Ws(Char(',')), p1, p2),
			combinator.Cut(Ws(Char(']'))),
		)(s)
	}
}

// NamedArguments2 parses `{ "key1": a1, "key2": a2 }` with key1/key2
// allowed in either order (spec §4.4/§4.3's `named_arguments`), as used by
// `$match`'s `{"predicate": ..., "object": ...}` form.
func NamedArguments2[A, B any](key1 string, p1 combinator.Parser[A], key2 string, p2 combinator.Parser[B]) combinator.Parser[combinator.Pair[A, B]] {
	return func(s combinator.State) (combinator.Pair[A, B], combinator.State, error) {
		return combinator.Delimited(
			Ws(Char('{')),
			combinator.SeparatedPermutation2[A, B, byte](Ws(Char(',')), OperatorPair(key1, p1), OperatorPair(key2, p2)),
			combinator.Cut(Ws(Char('}'))),
		)(s)
	}
}
