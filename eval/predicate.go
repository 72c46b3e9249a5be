package eval

import (
	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/dynamic"
)

// Test evaluates pred against ctx's current CURRENT binding, returning its
// boolean truth value (spec §4.5 "Predicate test").
func Test(pred ast.Predicate, ctx *Context) (bool, error) {
	switch p := pred.(type) {
	case *ast.PredicateLeaf:
		return dynamic.Equal(p.Value.ToDynamic(), ctx.GetCurrent()), nil
	case *ast.PredicateOperators:
		return testAllOps(p.Ops, ctx)
	default:
		return false, nil
	}
}

func testAllOps(ops []ast.PredOp, ctx *Context) (bool, error) {
	for _, op := range ops {
		ok, err := testOp(op, ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func testOp(op ast.PredOp, ctx *Context) (bool, error) {
	switch o := op.(type) {
	case *ast.FieldConstraint:
		narrowed := ResolveFieldPathOrNull(ctx.GetCurrent(), o.Path)
		return ctx.WithCurrentInScope(narrowed, func() (bool, error) {
			return Test(o.Predicate, ctx)
		})
	case *ast.GtOp:
		return dynamic.Compare(ctx.GetCurrent(), o.Value.ToDynamic()) > 0, nil
	case *ast.GteOp:
		return dynamic.Compare(ctx.GetCurrent(), o.Value.ToDynamic()) >= 0, nil
	case *ast.LtOp:
		return dynamic.Compare(ctx.GetCurrent(), o.Value.ToDynamic()) < 0, nil
	case *ast.LteOp:
		return dynamic.Compare(ctx.GetCurrent(), o.Value.ToDynamic()) <= 0, nil
	case *ast.EqOp:
		return dynamic.Equal(ctx.GetCurrent(), o.Value.ToDynamic()), nil
	case *ast.NeOp:
		return !dynamic.Equal(ctx.GetCurrent(), o.Value.ToDynamic()), nil
	case *ast.BetweenOp:
		cur := ctx.GetCurrent()
		return dynamic.Compare(o.Lo.ToDynamic(), cur) <= 0 && dynamic.Compare(cur, o.Hi.ToDynamic()) <= 0, nil
	case *ast.InOp:
		cur := ctx.GetCurrent()
		for _, v := range o.Values {
			if dynamic.Equal(cur, v.ToDynamic()) {
				return true, nil
			}
		}
		return false, nil
	case *ast.NotOp:
		ok, err := Test(o.Predicate, ctx)
		if err != nil {
			return false, err
		}
		return !ok, nil
	case *ast.AndOp:
		return testAllPredicates(o.Predicates, ctx, true)
	case *ast.OrOp:
		return testAllPredicates(o.Predicates, ctx, false)
	case *ast.ExistsOp:
		return (!ctx.GetCurrent().IsNull()) == o.Value, nil
	case *ast.IsEmptyOp:
		return ctx.GetCurrent().IsEmpty() == o.Value, nil
	default:
		return false, nil
	}
}

// testAllPredicates implements both AndOp (stopAt=true: short-circuit on
// the first false) and OrOp (stopAt=false: short-circuit on the first
// true). An empty list yields And([])=true, Or([])=false.
func testAllPredicates(preds []ast.Predicate, ctx *Context, stopAt bool) (bool, error) {
	for _, p := range preds {
		ok, err := Test(p, ctx)
		if err != nil {
			return false, err
		}
		if ok != stopAt {
			return !stopAt, nil
		}
	}
	return stopAt, nil
}
