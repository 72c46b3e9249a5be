package eval

import (
	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/dynamic"
)

// Eval walks expr against ctx, producing the Dynamic it denotes (spec
// §4.5). It is the single recursive entry point every Expression variant
// dispatches through.
func Eval(expr ast.Expression, ctx *Context) (dynamic.Dynamic, error) {
	switch e := expr.(type) {
	case *ast.NullLiteral:
		return dynamic.Null, nil
	case *ast.BoolLiteral:
		return dynamic.Bool(e.Value), nil
	case *ast.NumberLiteral:
		return dynamic.FromNumber(e.Value), nil
	case *ast.StringLiteral:
		return dynamic.String(e.Value), nil
	case *ast.ArrayLiteral:
		return evalArray(e, ctx)
	case *ast.ObjectLiteral:
		return evalObject(e, ctx)
	case *ast.VariableRef:
		v, ok := ResolveVariablePath(ctx, e.Path)
		if !ok {
			return dynamic.Dynamic{}, undefinedVariable(VariablePathString(e.Path))
		}
		return v, nil
	case *ast.FieldPathRef:
		v, ok := ResolveFieldPath(ctx.GetRoot(), e.Path)
		if !ok {
			return dynamic.Dynamic{}, undefinedVariable(FieldPathString(e.Path))
		}
		return v, nil
	case *ast.Precomputed:
		return e.Value, nil
	case *ast.GtOperator:
		return evalCompare(e.Arg1, e.Arg2, ctx, func(c int) bool { return c > 0 })
	case *ast.LtOperator:
		return evalCompare(e.Arg1, e.Arg2, ctx, func(c int) bool { return c < 0 })
	case *ast.EqOperator:
		return evalEq(e.Arg1, e.Arg2, ctx)
	case *ast.MatchOperator:
		return evalMatch(e, ctx)
	default:
		return dynamic.Null, nil
	}
}

func evalArray(e *ast.ArrayLiteral, ctx *Context) (dynamic.Dynamic, error) {
	items := make([]dynamic.Dynamic, len(e.Elements))
	for i, elem := range e.Elements {
		v, err := Eval(elem, ctx)
		if err != nil {
			return dynamic.Dynamic{}, err
		}
		items[i] = v
	}
	return dynamic.FromArray(dynamic.NewArray(items...)), nil
}

func evalObject(e *ast.ObjectLiteral, ctx *Context) (dynamic.Dynamic, error) {
	kvs := make([]dynamic.KV, len(e.Pairs))
	for i, pair := range e.Pairs {
		v, err := Eval(pair.Value, ctx)
		if err != nil {
			return dynamic.Dynamic{}, err
		}
		kvs[i] = dynamic.KV{Key: pair.Key, Value: v}
	}
	return dynamic.FromObject(dynamic.NewMapFromPairs(kvs)), nil
}

func evalCompare(a1, a2 ast.Expression, ctx *Context, pred func(int) bool) (dynamic.Dynamic, error) {
	v1, err := Eval(a1, ctx)
	if err != nil {
		return dynamic.Dynamic{}, err
	}
	v2, err := Eval(a2, ctx)
	if err != nil {
		return dynamic.Dynamic{}, err
	}
	return dynamic.Bool(pred(dynamic.Compare(v1, v2))), nil
}

func evalEq(a1, a2 ast.Expression, ctx *Context) (dynamic.Dynamic, error) {
	v1, err := Eval(a1, ctx)
	if err != nil {
		return dynamic.Dynamic{}, err
	}
	v2, err := Eval(a2, ctx)
	if err != nil {
		return dynamic.Dynamic{}, err
	}
	return dynamic.Bool(dynamic.Equal(v1, v2)), nil
}

func evalMatch(e *ast.MatchOperator, ctx *Context) (dynamic.Dynamic, error) {
	var subject dynamic.Dynamic
	if e.Object != nil {
		v, err := Eval(e.Object, ctx)
		if err != nil {
			return dynamic.Dynamic{}, err
		}
		subject = v
	} else {
		subject = ctx.GetRoot()
	}

	var result bool
	var testErr error
	_, err := ctx.WithVariableInScope(CurrentKey, subject, func() (dynamic.Dynamic, error) {
		result, testErr = Test(e.Predicate, ctx)
		return dynamic.Dynamic{}, testErr
	})
	if err != nil {
		return dynamic.Dynamic{}, err
	}
	return dynamic.Bool(result), nil
}
