package parse_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/parse"
)

func TestScriptParsesLiterals(t *testing.T) {
	script, err := parse.Script(`{"a": 1, "b": [true, null, "x"]}`)
	qt.Assert(t, qt.IsNil(err))
	obj, ok := script.Expr.(*ast.ObjectLiteral)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(obj.Pairs, 2))
	qt.Assert(t, qt.Equals(obj.Pairs[0].Key, "a"))
	qt.Assert(t, qt.Equals(obj.Pairs[1].Key, "b"))
}

func TestScriptParsesFieldPathAndVariableRefs(t *testing.T) {
	script, err := parse.Script(`"$user.address[0]"`)
	qt.Assert(t, qt.IsNil(err))
	ref, ok := script.Expr.(*ast.FieldPathRef)
	qt.Assert(t, qt.IsTrue(ok))
	idx, ok := ref.Path.(*ast.IndexStep)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(idx.Index, uint64(0)))
	member, ok := idx.Base.(*ast.MemberStep)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(member.Name, "address"))
	base, ok := member.Base.(*ast.BasePath)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(base.Name, "user"))

	script2, err := parse.Script(`"$$VAR.path"`)
	qt.Assert(t, qt.IsNil(err))
	vref, ok := script2.Expr.(*ast.VariableRef)
	qt.Assert(t, qt.IsTrue(ok))
	member2, ok := vref.Path.(*ast.MemberStep)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(member2.Name, "path"))
}

func TestScriptParsesComparisonOperators(t *testing.T) {
	script, err := parse.Script(`{"$gt": [1, 2]}`)
	qt.Assert(t, qt.IsNil(err))
	gt, ok := script.Expr.(*ast.GtOperator)
	qt.Assert(t, qt.IsTrue(ok))
	n1, ok := gt.Arg1.(*ast.NumberLiteral)
	qt.Assert(t, qt.IsTrue(ok))
	i1, _ := n1.Value.Int()
	qt.Assert(t, qt.Equals(i1, int64(1)))
}

func TestScriptParsesMatchWithBarePredicate(t *testing.T) {
	script, err := parse.Script(`{"$match": {"age": {"$gt": 18}}}`)
	qt.Assert(t, qt.IsNil(err))
	m, ok := script.Expr.(*ast.MatchOperator)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsNil(m.Object))
	ops, ok := m.Predicate.(*ast.PredicateOperators)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(ops.Ops, 1))
	fc, ok := ops.Ops[0].(*ast.FieldConstraint)
	qt.Assert(t, qt.IsTrue(ok))
	base, ok := fc.Path.(*ast.BasePath)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(base.Name, "age"))
}

func TestScriptParsesMatchWithNamedArgumentsEitherOrder(t *testing.T) {
	for _, text := range []string{
		`{"$match": {"predicate": {"$eq": 1}, "object": "$x"}}`,
		`{"$match": {"object": "$x", "predicate": {"$eq": 1}}}`,
	} {
		script, err := parse.Script(text)
		qt.Assert(t, qt.IsNil(err))
		m, ok := script.Expr.(*ast.MatchOperator)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.IsNotNil(m.Object))
		ref, ok := m.Object.(*ast.FieldPathRef)
		qt.Assert(t, qt.IsTrue(ok))
		base, ok := ref.Path.(*ast.BasePath)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(base.Name, "x"))
	}
}

func TestParsePredicateStandalone(t *testing.T) {
	pred, err := parse.ParsePredicate(`{"$between": [1, 10], "$ne": 5}`)
	qt.Assert(t, qt.IsNil(err))
	ops, ok := pred.(*ast.PredicateOperators)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(ops.Ops, 2))
	_, ok = ops.Ops[0].(*ast.BetweenOp)
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = ops.Ops[1].(*ast.NeOp)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestParsePredicateLogicalCombinators(t *testing.T) {
	pred, err := parse.ParsePredicate(`{"$and": [{"$gt": 1}, {"$lt": 10}]}`)
	qt.Assert(t, qt.IsNil(err))
	ops := pred.(*ast.PredicateOperators)
	and, ok := ops.Ops[0].(*ast.AndOp)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(and.Predicates, 2))
}

func TestParsePredicateExistsAndIsEmpty(t *testing.T) {
	pred, err := parse.ParsePredicate(`{"$exists": true, "$isEmpty": false}`)
	qt.Assert(t, qt.IsNil(err))
	ops := pred.(*ast.PredicateOperators)
	ex, ok := ops.Ops[0].(*ast.ExistsOp)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(ex.Value))
	ie, ok := ops.Ops[1].(*ast.IsEmptyOp)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsFalse(ie.Value))
}

func TestScriptRejectsTrailingGarbage(t *testing.T) {
	_, err := parse.Script(`1 garbage`)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestScriptRejectsMalformedOperatorAfterCommit(t *testing.T) {
	_, err := parse.Script(`{"$gt": not valid}`)
	qt.Assert(t, qt.IsNotNil(err))
}
