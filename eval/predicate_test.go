package eval_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/dynamic"
	"github.com/Rastler3D/query-lang/eval"
)

func testPred(t *testing.T, pred ast.Predicate, current dynamic.Dynamic) bool {
	t.Helper()
	ctx := eval.NewContext()
	ctx.SetCurrent(current)
	ok, err := eval.Test(pred, ctx)
	qt.Assert(t, qt.IsNil(err))
	return ok
}

func TestPredicateLeafEquality(t *testing.T) {
	leaf := &ast.PredicateLeaf{Value: ast.NumberValue{Value: dynamic.NumberFromInt(5)}}
	qt.Assert(t, qt.IsTrue(testPred(t, leaf, dynamic.Int(5))))
	qt.Assert(t, qt.IsFalse(testPred(t, leaf, dynamic.Int(6))))
}

func TestPredicateBetweenInclusive(t *testing.T) {
	between := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.BetweenOp{Lo: ast.NumberValue{Value: dynamic.NumberFromInt(1)}, Hi: ast.NumberValue{Value: dynamic.NumberFromInt(10)}},
	}}
	qt.Assert(t, qt.IsTrue(testPred(t, between, dynamic.Int(1))))
	qt.Assert(t, qt.IsTrue(testPred(t, between, dynamic.Int(10))))
	qt.Assert(t, qt.IsFalse(testPred(t, between, dynamic.Int(11))))
}

func TestPredicateInMembership(t *testing.T) {
	in := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.InOp{Values: []ast.Value{
			ast.StringValue{Value: "a"},
			ast.StringValue{Value: "b"},
		}},
	}}
	qt.Assert(t, qt.IsTrue(testPred(t, in, dynamic.String("a"))))
	qt.Assert(t, qt.IsFalse(testPred(t, in, dynamic.String("c"))))
}

func TestPredicateNotNegates(t *testing.T) {
	not := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.NotOp{Predicate: &ast.PredicateOperators{Ops: []ast.PredOp{&ast.GtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(10)}}}}},
	}}
	qt.Assert(t, qt.IsTrue(testPred(t, not, dynamic.Int(5))))
	qt.Assert(t, qt.IsFalse(testPred(t, not, dynamic.Int(20))))
}

func TestPredicateAndConjunction(t *testing.T) {
	and := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.AndOp{Predicates: []ast.Predicate{
			&ast.PredicateOperators{Ops: []ast.PredOp{&ast.LtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(0)}}}}, // false, should short-circuit
			&ast.PredicateOperators{Ops: []ast.PredOp{&ast.GtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(0)}}}},
		}},
	}}
	qt.Assert(t, qt.IsFalse(testPred(t, and, dynamic.Int(5))))

	and2 := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.AndOp{Predicates: []ast.Predicate{
			&ast.PredicateOperators{Ops: []ast.PredOp{&ast.GtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(0)}}}},
			&ast.PredicateOperators{Ops: []ast.PredOp{&ast.LtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(10)}}}},
		}},
	}}
	qt.Assert(t, qt.IsTrue(testPred(t, and2, dynamic.Int(5))))
}

func TestPredicateOrDisjunction(t *testing.T) {
	or := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.OrOp{Predicates: []ast.Predicate{
			&ast.PredicateOperators{Ops: []ast.PredOp{&ast.GtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(0)}}}}, // true, should short-circuit
			&ast.PredicateOperators{Ops: []ast.PredOp{&ast.LtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(0)}}}},
		}},
	}}
	qt.Assert(t, qt.IsTrue(testPred(t, or, dynamic.Int(5))))

	or2 := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.OrOp{Predicates: []ast.Predicate{
			&ast.PredicateOperators{Ops: []ast.PredOp{&ast.GtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(100)}}}},
			&ast.PredicateOperators{Ops: []ast.PredOp{&ast.LtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(0)}}}},
		}},
	}}
	qt.Assert(t, qt.IsFalse(testPred(t, or2, dynamic.Int(5))))
}

func TestPredicateEmptyAndOrIdentities(t *testing.T) {
	and := &ast.PredicateOperators{Ops: []ast.PredOp{&ast.AndOp{}}}
	qt.Assert(t, qt.IsTrue(testPred(t, and, dynamic.Null)))
	or := &ast.PredicateOperators{Ops: []ast.PredOp{&ast.OrOp{}}}
	qt.Assert(t, qt.IsFalse(testPred(t, or, dynamic.Null)))
}

func TestPredicateFieldConstraintNarrowsAndRestoresCurrent(t *testing.T) {
	obj := dynamic.FromObject(dynamic.NewMapFromPairs([]dynamic.KV{
		{Key: "age", Value: dynamic.Int(30)},
	}))
	fc := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.FieldConstraint{
			Path:      &ast.BasePath{Name: "age"},
			Predicate: &ast.PredicateOperators{Ops: []ast.PredOp{&ast.GtOp{Value: ast.NumberValue{Value: dynamic.NumberFromInt(18)}}}},
		},
	}}
	ctx := eval.NewContext()
	ctx.SetCurrent(obj)
	ok, err := eval.Test(fc, ctx)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ctx.GetCurrent(), obj))
}

func TestPredicateFieldConstraintMissBecomesNullNotError(t *testing.T) {
	obj := dynamic.FromObject(dynamic.NewMap())
	fc := &ast.PredicateOperators{Ops: []ast.PredOp{
		&ast.FieldConstraint{
			Path:      &ast.BasePath{Name: "missing"},
			Predicate: &ast.PredicateLeaf{Value: ast.NullValue{}},
		},
	}}
	ok := testPred(t, fc, obj)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestPredicateExistsAndIsEmpty(t *testing.T) {
	exists := &ast.PredicateOperators{Ops: []ast.PredOp{&ast.ExistsOp{Value: true}}}
	qt.Assert(t, qt.IsTrue(testPred(t, exists, dynamic.Int(1))))
	qt.Assert(t, qt.IsFalse(testPred(t, exists, dynamic.Null)))

	isEmpty := &ast.PredicateOperators{Ops: []ast.PredOp{&ast.IsEmptyOp{Value: true}}}
	qt.Assert(t, qt.IsTrue(testPred(t, isEmpty, dynamic.String(""))))
	qt.Assert(t, qt.IsFalse(testPred(t, isEmpty, dynamic.String("x"))))
	qt.Assert(t, qt.IsFalse(testPred(t, isEmpty, dynamic.Null)))
}
