package dynamic

import "reflect"

// ViewOf builds a read-only View over an arbitrary Go struct (or pointer to
// one), using reflection to list its exported fields in declaration order
// and to resolve field lookups lazily. This is the concrete realization of
// spec §6's "opaque host objects exposing an ordered field list and field
// lookup": example.rs/bench.rs in the distillation source construct a
// Dynamic straight from a host struct (TestObj/TestObj2) without writing a
// bespoke Object impl per type, so the query language needs a default
// reflection-based adapter rather than requiring every embedder to hand-
// write one.
//
// A field can be renamed or hidden with a `query:"name"` struct tag, the
// same shape as encoding/json's tag: `query:"-"` omits the field,
// `query:"otherName"` renames it. Fields are converted recursively: nested
// structs become nested Views, slices/arrays become Dynamic Arrays, maps
// with string keys become Dynamic Objects (as Maps, so nested map fields
// remain host-independent once read), and everything else is converted by
// FromGoValue.
func ViewOf(host any) Object {
	rv := reflect.ValueOf(host)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return NewView(nil, func(string) (Dynamic, bool) { return Dynamic{}, false })
		}
		rv = rv.Elem()
	}
	return structView{v: rv}
}

type structView struct {
	v reflect.Value
}

func (s structView) Fields() []string {
	t := s.v.Type()
	out := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := fieldName(f)
		if skip {
			continue
		}
		out = append(out, name)
	}
	return out
}

func (s structView) Get(name string) (Dynamic, bool) {
	t := s.v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fname, skip := fieldName(f)
		if skip || fname != name {
			continue
		}
		return FromGoValue(s.v.Field(i).Interface()), true
	}
	return Dynamic{}, false
}

func fieldName(f reflect.StructField) (name string, skip bool) {
	tag, ok := f.Tag.Lookup("query")
	if !ok || tag == "" {
		return f.Name, false
	}
	if tag == "-" {
		return "", true
	}
	return tag, false
}

// FromGoValue converts an arbitrary Go value into a Dynamic, the same way
// FromJSON converts a decoded JSON document: structs become host Views,
// maps/slices/primitives become owned Map/Array/scalar Dynamics.
func FromGoValue(v any) Dynamic {
	if v == nil {
		return Null
	}
	if d, ok := v.(Dynamic); ok {
		return d
	}
	rv := reflect.ValueOf(v)
	return fromReflect(rv)
}

func fromReflect(rv reflect.Value) Dynamic {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		items := make([]Dynamic, n)
		for i := 0; i < n; i++ {
			items[i] = fromReflect(rv.Index(i))
		}
		return FromArray(NewArray(items...))
	case reflect.Map:
		m := NewMap()
		iter := rv.MapRange()
		for iter.Next() {
			m.Set(keyString(iter.Key()), fromReflect(iter.Value()))
		}
		return FromObject(m)
	case reflect.Struct:
		return FromObject(structView{v: rv})
	default:
		return Null
	}
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return ""
}
