package ast

import "github.com/Rastler3D/query-lang/dynamic"

// Expression is any node that, given a Context, evaluates to a Dynamic
// (spec §3's Expression ::= Literal | Operator | VariableRef | FieldPathRef
// | Precomputed).
type Expression interface {
	exprNode()
}

// Literal expressions.

type NullLiteral struct{}

func (*NullLiteral) exprNode() {}

type BoolLiteral struct{ Value bool }

func (*BoolLiteral) exprNode() {}

type NumberLiteral struct{ Value dynamic.Number }

func (*NumberLiteral) exprNode() {}

type StringLiteral struct{ Value string }

func (*StringLiteral) exprNode() {}

type ArrayLiteral struct{ Elements []Expression }

func (*ArrayLiteral) exprNode() {}

// ObjectPair is one "key": expr entry of an ObjectLiteral, kept in
// declaration order.
type ObjectPair struct {
	Key   string
	Value Expression
}

type ObjectLiteral struct{ Pairs []ObjectPair }

func (*ObjectLiteral) exprNode() {}

// VariableRef resolves a path against the context (a "$$name.path"
// reference).
type VariableRef struct{ Path Path }

func (*VariableRef) exprNode() {}

// FieldPathRef resolves a path against ROOT (a "$name.path" reference).
type FieldPathRef struct{ Path Path }

func (*FieldPathRef) exprNode() {}

// Precomputed re-evaluates to an already-evaluated Dynamic, letting a host
// splice a pre-supplied value into an otherwise-parsed tree, or a constant
// subtree be folded once and reused.
type Precomputed struct{ Value dynamic.Dynamic }

func (*Precomputed) exprNode() {}

// Operator is any of the expression-position operators ($gt, $lt, $eq,
// $match).
type Operator interface {
	Expression
	operatorNode()
}

type GtOperator struct{ Arg1, Arg2 Expression }

func (*GtOperator) exprNode()     {}
func (*GtOperator) operatorNode() {}

type LtOperator struct{ Arg1, Arg2 Expression }

func (*LtOperator) exprNode()     {}
func (*LtOperator) operatorNode() {}

type EqOperator struct{ Arg1, Arg2 Expression }

func (*EqOperator) exprNode()     {}
func (*EqOperator) operatorNode() {}

// MatchOperator is "$match": a predicate tested against Object (or, if
// Object is nil, against the current ROOT).
type MatchOperator struct {
	Predicate Predicate
	Object    Expression // nil if omitted
}

func (*MatchOperator) exprNode()     {}
func (*MatchOperator) operatorNode() {}
