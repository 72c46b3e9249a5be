package parse

import (
	"strings"

	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/errors"
	"github.com/Rastler3D/query-lang/parse/combinator"
)

// Predicate parses `predicate := operators | leaf` (spec §4.4).
func Predicate(s combinator.State) (ast.Predicate, combinator.State, error) {
	return combinator.Alt(
		combinator.Map(Operators, func(ops []ast.PredOp) ast.Predicate { return &ast.PredicateOperators{Ops: ops} }),
		combinator.Map(Ws(Value), func(v ast.Value) ast.Predicate { return &ast.PredicateLeaf{Value: v} }),
	)(s)
}

// Operators parses `"{" list1("," , operator) "}"`: at least one operator,
// comma-separated (spec §4.4).
func Operators(s combinator.State) ([]ast.PredOp, combinator.State, error) {
	return combinator.Delimited(
		Ws(Char('{')),
		combinator.SeparatedList1(Ws(Char(',')), Operator),
		Ws(Char('}')),
	)(s)
}

// Operator tries a field constraint first, then the fixed set of
// `$`-prefixed predicate operators (spec §4.4's `operator` production,
// extended with `$exists`/`$isEmpty` per the supplemented predicate
// operator set).
func Operator(s combinator.State) (ast.PredOp, combinator.State, error) {
	return combinator.Alt(
		FieldConstraintOp,
		combinator.Map(GtOp, func(v ast.Value) ast.PredOp { return &ast.GtOp{Value: v} }),
		combinator.Map(GteOp, func(v ast.Value) ast.PredOp { return &ast.GteOp{Value: v} }),
		combinator.Map(LtOp, func(v ast.Value) ast.PredOp { return &ast.LtOp{Value: v} }),
		combinator.Map(LteOp, func(v ast.Value) ast.PredOp { return &ast.LteOp{Value: v} }),
		combinator.Map(BetweenOp, func(p combinator.Pair[ast.Value, ast.Value]) ast.PredOp {
			return &ast.BetweenOp{Lo: p.First, Hi: p.Second}
		}),
		combinator.Map(EqOp, func(v ast.Value) ast.PredOp { return &ast.EqOp{Value: v} }),
		combinator.Map(NeOp, func(v ast.Value) ast.PredOp { return &ast.NeOp{Value: v} }),
		combinator.Map(InOp, func(vs []ast.Value) ast.PredOp { return &ast.InOp{Values: vs} }),
		combinator.Map(NotOp, func(p ast.Predicate) ast.PredOp { return &ast.NotOp{Predicate: p} }),
		combinator.Map(AndOp, func(ps []ast.Predicate) ast.PredOp { return &ast.AndOp{Predicates: ps} }),
		combinator.Map(OrOp, func(ps []ast.Predicate) ast.PredOp { return &ast.OrOp{Predicates: ps} }),
		combinator.Map(ExistsOp, func(b bool) ast.PredOp { return &ast.ExistsOp{Value: b} }),
		combinator.Map(IsEmptyOp, func(b bool) ast.PredOp { return &ast.IsEmptyOp{Value: b} }),
	)(s)
}

// FieldConstraintOp parses `field ":" predicate` where field is a quoted
// non-`$`-prefixed path (spec: "field_constraint := field ':' predicate").
func FieldConstraintOp(s combinator.State) (ast.PredOp, combinator.State, error) {
	raw, rest, err := Ws(EscapedString)(s)
	if err != nil {
		return nil, s, err
	}
	if strings.HasPrefix(raw, "$") {
		return nil, s, errors.Newf(s.Pos(), "%q is an operator key, not a field constraint", raw)
	}
	path, perr := ParsePath(raw)
	if perr != nil {
		return nil, s, errors.Newf(s.Pos(), "%s", perr.Error())
	}
	_, rest2, err := Ws(Char(':'))(rest)
	if err != nil {
		return nil, s, err
	}
	pred, rest3, err := Ws(Predicate)(rest2)
	if err != nil {
		return nil, s, err
	}
	return &ast.FieldConstraint{Path: path, Predicate: pred}, rest3, nil
}

func GtOp(s combinator.State) (ast.Value, combinator.State, error) {
	return OperatorPair("$gt", combinator.Cut(Value))(s)
}

func GteOp(s combinator.State) (ast.Value, combinator.State, error) {
	return OperatorPair("$gte", combinator.Cut(Value))(s)
}

func LtOp(s combinator.State) (ast.Value, combinator.State, error) {
	return OperatorPair("$lt", combinator.Cut(Value))(s)
}

func LteOp(s combinator.State) (ast.Value, combinator.State, error) {
	return OperatorPair("$lte", combinator.Cut(Value))(s)
}

func EqOp(s combinator.State) (ast.Value, combinator.State, error) {
	return OperatorPair("$eq", combinator.Cut(Value))(s)
}

func NeOp(s combinator.State) (ast.Value, combinator.State, error) {
	return OperatorPair("$ne", combinator.Cut(Value))(s)
}

func BetweenOp(s combinator.State) (combinator.Pair[ast.Value, ast.Value], combinator.State, error) {
	return OperatorPair("$between", combinator.Cut(Arguments2(Value, Value)))(s)
}

func InOp(s combinator.State) ([]ast.Value, combinator.State, error) {
	return OperatorPair("$in", combinator.Cut(ArrayOf(Value)))(s)
}

func NotOp(s combinator.State) (ast.Predicate, combinator.State, error) {
	return OperatorPair("$not", combinator.Cut(Predicate))(s)
}

func AndOp(s combinator.State) ([]ast.Predicate, combinator.State, error) {
	return OperatorPair("$and", combinator.Cut(ArrayOf(Predicate)))(s)
}

func OrOp(s combinator.State) ([]ast.Predicate, combinator.State, error) {
	return OperatorPair("$or", combinator.Cut(ArrayOf(Predicate)))(s)
}

// ExistsOp and IsEmptyOp are not present in the distillation source (it
// defines the AST variants but never wires a parser for them); this
// grammar adds both so every PredOp the AST declares is reachable from
// source text.
func ExistsOp(s combinator.State) (bool, combinator.State, error) {
	return OperatorPair("$exists", combinator.Cut(Ws(Boolean)))(s)
}

func IsEmptyOp(s combinator.State) (bool, combinator.State, error) {
	return OperatorPair("$isEmpty", combinator.Cut(Ws(Boolean)))(s)
}
