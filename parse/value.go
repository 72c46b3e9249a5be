package parse

import (
	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/dynamic"
	"github.com/Rastler3D/query-lang/parse/combinator"
	"github.com/Rastler3D/query-lang/parse/literal"
)

func toDynamicNumber(n literal.Number) dynamic.Number {
	if n.IsFloat {
		return dynamic.NumberFromFloat(n.Float)
	}
	return dynamic.NumberFromInt(n.Int)
}

// Value parses the predicate-side literal grammar (spec §4.4's `value`
// production): null, number, string, boolean, array or object, with no
// sigil handling and no operator/variable forms — the static sibling of
// Expression used by predicate operator arguments (Gt(Value), In(list),
// ...).
func Value(s combinator.State) (ast.Value, combinator.State, error) {
	return combinator.Alt(
		combinator.Map(Ws(Null), func(struct{}) ast.Value { return ast.NullValue{} }),
		combinator.Map(Ws(Boolean), func(b bool) ast.Value { return ast.BoolValue{Value: b} }),
		combinator.Map(Ws(Number), func(n literal.Number) ast.Value { return ast.NumberValue{Value: toDynamicNumber(n)} }),
		combinator.Map(Ws(StringBody), func(str string) ast.Value { return ast.StringValue{Value: str} }),
		combinator.Map(Ws(ArrayOf(Value)), func(elems []ast.Value) ast.Value { return ast.ArrayValue{Elements: elems} }),
		combinator.Map(Ws(ObjectOf(Value)), func(pairs []combinator.Pair[string, ast.Value]) ast.Value {
			out := make([]ast.ValuePair, len(pairs))
			for i, p := range pairs {
				out[i] = ast.ValuePair{Key: p.First, Value: p.Second}
			}
			return ast.ObjectValue{Pairs: out}
		}),
	)(s)
}

// ArrayOf parses `[ elem, elem, ... ]`, zero or more elements, matching
// the teacher-style `array_of` combinator from the original grammar.
func ArrayOf[T any](elem combinator.Parser[T]) combinator.Parser[[]T] {
	return func(s combinator.State) ([]T, combinator.State, error) {
		return combinator.Delimited(
			Ws(Char('[')),
			combinator.SeparatedList0(Ws(Char(',')), Ws(elem)),
			combinator.Cut(Ws(Char(']'))),
		)(s)
	}
}

// ObjectOf parses `{ "k": elem, ... }`, zero or more key/value pairs,
// preserving declaration order (spec: "Objects preserve insertion order").
func ObjectOf[T any](elem combinator.Parser[T]) combinator.Parser[[]combinator.Pair[string, T]] {
	return func(s combinator.State) ([]combinator.Pair[string, T], combinator.State, error) {
		entry := combinator.SeparatedTuple2[string, T, byte](Ws(Char(':')), Ws(StringBody), Ws(elem))
		return combinator.Delimited(
			Ws(Char('{')),
			combinator.SeparatedList0(Ws(Char(',')), entry),
			combinator.Cut(Ws(Char('}'))),
		)(s)
	}
}
