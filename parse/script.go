package parse

import (
	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/errors"
	"github.com/Rastler3D/query-lang/parse/combinator"
	"github.com/Rastler3D/query-lang/token"
)

// Script parses a full script (spec: `script := all_consuming(ws(expression))`)
// and wraps its top-level Expression.
func Script(text string) (*ast.Script, error) {
	file := token.NewFile(text)
	s := combinator.NewState(file, text)
	expr, rest, err := Ws(Expression)(s)
	if err != nil {
		return nil, err
	}
	if rest.Rest() != "" {
		return nil, errors.Newf(rest.Pos(), "unexpected trailing input %q", truncate(rest.Rest()))
	}
	return &ast.Script{Expr: expr}, nil
}

// ParsePredicate parses a standalone predicate (spec's restored
// `FromStr`-equivalent public API, independent of `$match`): `all_consuming(ws(predicate))`.
func ParsePredicate(text string) (ast.Predicate, error) {
	file := token.NewFile(text)
	s := combinator.NewState(file, text)
	pred, rest, err := Ws(Predicate)(s)
	if err != nil {
		return nil, err
	}
	if rest.Rest() != "" {
		return nil, errors.Newf(rest.Pos(), "unexpected trailing input %q", truncate(rest.Rest()))
	}
	return pred, nil
}

func truncate(s string) string {
	const max = 40
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
