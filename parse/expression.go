package parse

import (
	"strings"

	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/errors"
	"github.com/Rastler3D/query-lang/parse/combinator"
	"github.com/Rastler3D/query-lang/parse/literal"
)

// Expression parses `expression := variable_expr | field_path_expr |
// operator_expr | literal_expr` (spec §4.4).
func Expression(s combinator.State) (ast.Expression, combinator.State, error) {
	return combinator.Alt(
		combinator.Map(VariableExpr, func(p ast.Path) ast.Expression { return &ast.VariableRef{Path: p} }),
		combinator.Map(FieldPathExpr, func(p ast.Path) ast.Expression { return &ast.FieldPathRef{Path: p} }),
		combinator.Map(OperatorExpr, func(o ast.Operator) ast.Expression { return o }),
		LiteralExpr,
	)(s)
}

// VariableExpr parses a quoted `"$$" path` string (spec: `variable_expr :=
// quoted("$$" path)`), cutting once the "$$" sigil is recognized: no other
// expression form can start that way, so a malformed path after it is a
// hard error, not a signal to try the next alternative.
func VariableExpr(s combinator.State) (ast.Path, combinator.State, error) {
	raw, rest, err := Ws(EscapedString)(s)
	if err != nil {
		return nil, s, err
	}
	if !strings.HasPrefix(raw, "$$") {
		return nil, s, errors.Newf(s.Pos(), "not a variable reference")
	}
	path, perr := ParsePath(raw[2:])
	if perr != nil {
		return nil, s, combinator.FatalError(errors.Newf(s.Pos(), "%s", perr.Error()))
	}
	return path, rest, nil
}

// FieldPathExpr parses a quoted `"$" path` string (spec: `field_path_expr
// := quoted("$" path)`), excluding the "$$" variable-reference form.
func FieldPathExpr(s combinator.State) (ast.Path, combinator.State, error) {
	raw, rest, err := Ws(EscapedString)(s)
	if err != nil {
		return nil, s, err
	}
	if !strings.HasPrefix(raw, "$") || strings.HasPrefix(raw, "$$") {
		return nil, s, errors.Newf(s.Pos(), "not a field-path reference")
	}
	path, perr := ParsePath(raw[1:])
	if perr != nil {
		return nil, s, combinator.FatalError(errors.Newf(s.Pos(), "%s", perr.Error()))
	}
	return path, rest, nil
}

// OperatorExpr parses `"{" first_key_starts_with_$ (gt | lt | eq | match)
// "}"`. The leading `{` is consumed, then the first key is peeked (not
// consumed): if it doesn't start with '$', this isn't an operator call and
// the caller should try literal_expr's object-literal form instead. Once
// the guard passes, selection among gt/lt/eq/match is cut (spec §4.4's
// "after the guard, selection is cut (no backtracking to literal
// object)").
func OperatorExpr(s combinator.State) (ast.Operator, combinator.State, error) {
	_, afterBrace, err := Ws(Char('{'))(s)
	if err != nil {
		return nil, s, err
	}
	key, _, kerr := Ws(EscapedString)(afterBrace)
	if kerr != nil || !strings.HasPrefix(key, "$") {
		return nil, s, errors.Newf(s.Pos(), "not an operator expression")
	}
	op, rest, err := combinator.Cut(combinator.Alt(
		combinator.Map(GtOperatorExpr, func(o *ast.GtOperator) ast.Operator { return o }),
		combinator.Map(LtOperatorExpr, func(o *ast.LtOperator) ast.Operator { return o }),
		combinator.Map(EqOperatorExpr, func(o *ast.EqOperator) ast.Operator { return o }),
		combinator.Map(MatchOperatorExpr, func(o *ast.MatchOperator) ast.Operator { return o }),
	))(afterBrace)
	if err != nil {
		return nil, s, err
	}
	_, rest2, err := combinator.Cut(Ws(Char('}')))(rest)
	if err != nil {
		return nil, s, err
	}
	return op, rest2, nil
}

func GtOperatorExpr(s combinator.State) (*ast.GtOperator, combinator.State, error) {
	return combinator.Map(
		OperatorPair("$gt", combinator.Cut(Arguments2(Expression, Expression))),
		func(p combinator.Pair[ast.Expression, ast.Expression]) *ast.GtOperator {
			return &ast.GtOperator{Arg1: p.First, Arg2: p.Second}
		},
	)(s)
}

func LtOperatorExpr(s combinator.State) (*ast.LtOperator, combinator.State, error) {
	return combinator.Map(
		OperatorPair("$lt", combinator.Cut(Arguments2(Expression, Expression))),
		func(p combinator.Pair[ast.Expression, ast.Expression]) *ast.LtOperator {
			return &ast.LtOperator{Arg1: p.First, Arg2: p.Second}
		},
	)(s)
}

func EqOperatorExpr(s combinator.State) (*ast.EqOperator, combinator.State, error) {
	return combinator.Map(
		OperatorPair("$eq", combinator.Cut(Arguments2(Expression, Expression))),
		func(p combinator.Pair[ast.Expression, ast.Expression]) *ast.EqOperator {
			return &ast.EqOperator{Arg1: p.First, Arg2: p.Second}
		},
	)(s)
}

// MatchOperatorExpr parses "$match"'s argument: either a bare predicate
// (applied to ROOT, per spec: "When object is absent, the current ROOT is
// used") or a named-argument object giving both "predicate" and "object"
// in either order. The distillation source declares this operator's AST
// (MatchOperator) but never finishes its parser; this is a from-scratch
// grammar for it, grounded on the same named_arguments/arguments kit the
// other operators use.
func MatchOperatorExpr(s combinator.State) (*ast.MatchOperator, combinator.State, error) {
	return OperatorPair("$match", combinator.Alt(
		combinator.Map(NamedArguments2("predicate", Predicate, "object", Expression),
			func(p combinator.Pair[ast.Predicate, ast.Expression]) *ast.MatchOperator {
				return &ast.MatchOperator{Predicate: p.First, Object: p.Second}
			}),
		combinator.Map(Predicate, func(p ast.Predicate) *ast.MatchOperator {
			return &ast.MatchOperator{Predicate: p}
		}),
	))(s)
}

// LiteralExpr parses `literal_expr`: null, number, bool, string, array or
// object, where array/object elements are themselves full `expression`s
// (spec: "Literal ::= ... Array(Expr*) | Object(ordered map key→Expr)"),
// unlike the predicate-side `value` grammar whose elements are the
// strictly-static `Value`.
func LiteralExpr(s combinator.State) (ast.Expression, combinator.State, error) {
	return combinator.Alt(
		combinator.Map(Ws(Null), func(struct{}) ast.Expression { return &ast.NullLiteral{} }),
		combinator.Map(Ws(Boolean), func(b bool) ast.Expression { return &ast.BoolLiteral{Value: b} }),
		combinator.Map(Ws(Number), func(n literal.Number) ast.Expression {
			return &ast.NumberLiteral{Value: toDynamicNumber(n)}
		}),
		combinator.Map(Ws(StringBody), func(str string) ast.Expression { return &ast.StringLiteral{Value: str} }),
		combinator.Map(Ws(ArrayOf(Expression)), func(elems []ast.Expression) ast.Expression {
			return &ast.ArrayLiteral{Elements: elems}
		}),
		combinator.Map(Ws(ObjectOf(Expression)), func(pairs []combinator.Pair[string, ast.Expression]) ast.Expression {
			out := make([]ast.ObjectPair, len(pairs))
			for i, p := range pairs {
				out[i] = ast.ObjectPair{Key: p.First, Value: p.Second}
			}
			return &ast.ObjectLiteral{Pairs: out}
		}),
	)(s)
}
