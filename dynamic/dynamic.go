// Package dynamic implements the dynamically-typed value tree that scripts
// are evaluated against and that they produce: null, bool, number, string,
// array and object, plus the polymorphic object abstraction (an owned,
// insertion-ordered map, or a read-only view over a host struct).
//
// Values with shared contents (Array, Object) use reference semantics: a
// Dynamic holding one of those kinds points at a shared, lock-guarded
// container, so copies of the Dynamic observe mutations made through any
// other copy. This mirrors the source language's Arc<RwLock<..>>-backed
// Array/Object, which lets a parsed Script's output be handed around and
// partially mutated (via a host's View, or an owned Map) without a deep
// clone on every pass.
package dynamic

import (
	"fmt"
)

// Kind identifies which variant a Dynamic holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// rank is the fixed variant-rank used to break ties when comparing values of
// different Kind (spec §3): Null=1 < Number=2 < String=3 < Object=4 <
// Array=5 < Bool=6. Kept as a single lookup table so Equal and Compare can
// never disagree about cross-variant ordering.
var rank = map[Kind]int{
	KindNull:   1,
	KindNumber: 2,
	KindString: 3,
	KindObject: 4,
	KindArray:  5,
	KindBool:   6,
}

// Dynamic is the tagged union of runtime values.
type Dynamic struct {
	kind Kind
	b    bool
	num  Number
	str  string
	arr  *Array
	obj  Object
}

// Null is the singular null value.
var Null = Dynamic{kind: KindNull}

// Bool constructs a boolean Dynamic.
func Bool(b bool) Dynamic { return Dynamic{kind: KindBool, b: b} }

// Int constructs an integer Number Dynamic.
func Int(n int64) Dynamic { return Dynamic{kind: KindNumber, num: Number{isFloat: false, i: n}} }

// Float constructs a floating Number Dynamic.
func Float(f float64) Dynamic { return Dynamic{kind: KindNumber, num: Number{isFloat: true, f: f}} }

// FromNumber wraps an already-built Number.
func FromNumber(n Number) Dynamic { return Dynamic{kind: KindNumber, num: n} }

// String constructs a string Dynamic.
func String(s string) Dynamic { return Dynamic{kind: KindString, str: s} }

// FromArray wraps a shared Array.
func FromArray(a *Array) Dynamic { return Dynamic{kind: KindArray, arr: a} }

// FromObject wraps any Object implementation (Map or View).
func FromObject(o Object) Dynamic { return Dynamic{kind: KindObject, obj: o} }

// Kind reports which variant v holds.
func (v Dynamic) Kind() Kind { return v.kind }

func (v Dynamic) IsNull() bool   { return v.kind == KindNull }
func (v Dynamic) IsBool() bool   { return v.kind == KindBool }
func (v Dynamic) IsNumber() bool { return v.kind == KindNumber }
func (v Dynamic) IsString() bool { return v.kind == KindString }
func (v Dynamic) IsArray() bool  { return v.kind == KindArray }
func (v Dynamic) IsObject() bool { return v.kind == KindObject }

// AsBool returns the boolean value and whether v held one.
func (v Dynamic) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the Number value and whether v held one.
func (v Dynamic) AsNumber() (Number, bool) {
	if v.kind != KindNumber {
		return Number{}, false
	}
	return v.num, true
}

// AsString returns the string value and whether v held one.
func (v Dynamic) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsArray returns the shared Array and whether v held one.
func (v Dynamic) AsArray() (*Array, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the Object and whether v held one.
func (v Dynamic) AsObject() (Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// GetObjectField looks up a field by name, whether the backing object is a
// Map or a host-backed View. Returns false if v is not an Object or the
// field is absent.
func (v Dynamic) GetObjectField(name string) (Dynamic, bool) {
	obj, ok := v.AsObject()
	if !ok {
		return Dynamic{}, false
	}
	return obj.Get(name)
}

// ErrKind enumerates the value-model error kinds from spec §4.1/§7.
type ErrKind int

const (
	ErrNotAnObject ErrKind = iota
	ErrNotAnArray
	ErrImmutableObject
	ErrUnableToRead
	ErrUnableToWrite
)

func (k ErrKind) String() string {
	switch k {
	case ErrNotAnObject:
		return "not an object"
	case ErrNotAnArray:
		return "not an array"
	case ErrImmutableObject:
		return "immutable object"
	case ErrUnableToRead:
		return "unable to read"
	case ErrUnableToWrite:
		return "unable to write"
	default:
		return "unknown"
	}
}

// Error wraps an ErrKind so DynamicError propagation (spec §7) can type-switch
// on it via errors.As.
type Error struct {
	Kind ErrKind
}

func (e *Error) Error() string { return e.Kind.String() }

func errOf(k ErrKind) error { return &Error{Kind: k} }

// SetObjectField sets a field on v's backing object. Fails with
// ErrNotAnObject if v is not an Object, or ErrImmutableObject if the
// backing object is a read-only View.
func (v Dynamic) SetObjectField(name string, value Dynamic) (prev Dynamic, hadPrev bool, err error) {
	obj, ok := v.AsObject()
	if !ok {
		return Dynamic{}, false, errOf(ErrNotAnObject)
	}
	m, ok := obj.(*Map)
	if !ok {
		return Dynamic{}, false, errOf(ErrImmutableObject)
	}
	return m.Set(name, value)
}

// RemoveObjectField removes a field from v's backing object, with the same
// failure modes as SetObjectField.
func (v Dynamic) RemoveObjectField(name string) (prev Dynamic, hadPrev bool, err error) {
	obj, ok := v.AsObject()
	if !ok {
		return Dynamic{}, false, errOf(ErrNotAnObject)
	}
	m, ok := obj.(*Map)
	if !ok {
		return Dynamic{}, false, errOf(ErrImmutableObject)
	}
	return m.Remove(name)
}

// GetArrayItem returns the element at index, or ErrNotAnArray if v is not
// an Array. An out-of-range index returns (Null, false, nil): per spec
// §4.5 path resolution, a missing element is a miss, not an error.
func (v Dynamic) GetArrayItem(index uint64) (Dynamic, bool, error) {
	arr, ok := v.AsArray()
	if !ok {
		return Dynamic{}, false, errOf(ErrNotAnArray)
	}
	return arr.Get(index)
}

// PushArrayItem appends to v's backing Array, or fails with ErrNotAnArray.
func (v Dynamic) PushArrayItem(item Dynamic) error {
	arr, ok := v.AsArray()
	if !ok {
		return errOf(ErrNotAnArray)
	}
	arr.Push(item)
	return nil
}

// IsEmpty reports whether v is an empty string, array or object. Null is
// never empty (spec §4.5 IsEmpty predicate note).
func (v Dynamic) IsEmpty() bool {
	switch v.kind {
	case KindString:
		return v.str == ""
	case KindArray:
		return v.arr.Len() == 0
	case KindObject:
		return len(v.obj.Fields()) == 0
	default:
		return false
	}
}

func (v Dynamic) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindNumber:
		return v.num.String()
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindArray:
		return v.arr.String()
	case KindObject:
		return objectString(v.obj)
	default:
		return "<invalid>"
	}
}

func objectString(o Object) string {
	s := "{"
	for i, name := range o.Fields() {
		if i > 0 {
			s += ","
		}
		val, _ := o.Get(name)
		s += fmt.Sprintf("%q:%s", name, val.String())
	}
	return s + "}"
}
