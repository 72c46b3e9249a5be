package ast

import "github.com/Rastler3D/query-lang/dynamic"

// Value is the static sibling of dynamic.Dynamic (spec §3): the literal
// form a predicate operator's argument takes in the grammar, before any
// evaluation happens. Unlike Expression, a Value can never itself reference
// a variable or field path or an operator — it is exactly what the JSON
// literal grammar produces.
type Value interface {
	valueNode()
	// ToDynamic converts this static literal into the runtime value it
	// denotes, for comparison against the current subject.
	ToDynamic() dynamic.Dynamic
}

type NullValue struct{}

func (NullValue) valueNode()               {}
func (NullValue) ToDynamic() dynamic.Dynamic { return dynamic.Null }

type BoolValue struct{ Value bool }

func (v BoolValue) valueNode()               {}
func (v BoolValue) ToDynamic() dynamic.Dynamic { return dynamic.Bool(v.Value) }

type NumberValue struct{ Value dynamic.Number }

func (v NumberValue) valueNode()               {}
func (v NumberValue) ToDynamic() dynamic.Dynamic { return dynamic.FromNumber(v.Value) }

type StringValue struct{ Value string }

func (v StringValue) valueNode()               {}
func (v StringValue) ToDynamic() dynamic.Dynamic { return dynamic.String(v.Value) }

type ArrayValue struct{ Elements []Value }

func (v ArrayValue) valueNode() {}
func (v ArrayValue) ToDynamic() dynamic.Dynamic {
	items := make([]dynamic.Dynamic, len(v.Elements))
	for i, e := range v.Elements {
		items[i] = e.ToDynamic()
	}
	return dynamic.FromArray(dynamic.NewArray(items...))
}

type ValuePair struct {
	Key   string
	Value Value
}

type ObjectValue struct{ Pairs []ValuePair }

func (v ObjectValue) valueNode() {}
func (v ObjectValue) ToDynamic() dynamic.Dynamic {
	kvs := make([]dynamic.KV, len(v.Pairs))
	for i, p := range v.Pairs {
		kvs[i] = dynamic.KV{Key: p.Key, Value: p.Value.ToDynamic()}
	}
	return dynamic.FromObject(dynamic.NewMapFromPairs(kvs))
}
