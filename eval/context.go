// Package eval walks a parsed ast.Script (or ast.Predicate) against a
// Context, producing a dynamic.Dynamic or a typed EvalError (spec §4.5).
package eval

import "github.com/Rastler3D/query-lang/dynamic"

// RootKey and CurrentKey name the two distinguished Context bindings
// (spec §3/§6).
const (
	RootKey    = "ROOT"
	CurrentKey = "CURRENT"
)

// Context is the variable environment a Script evaluates against: itself
// a dynamic.Dynamic of Object::Map kind (spec §4.2), holding at minimum
// the ROOT and CURRENT bindings. The source language caches a hash of
// those two key names for O(1) raw-entry access into its backing
// hashlink map; a Go map already resolves a string key in O(1), so
// GetRoot/GetCurrent/SetRoot/SetCurrent here are plain map operations
// with no separate cache to maintain.
type Context struct {
	vars *dynamic.Map
}

// NewContext builds a Context with ROOT and CURRENT both pre-installed as
// Null.
func NewContext() *Context {
	m := dynamic.NewMap()
	m.Set(RootKey, dynamic.Null)
	m.Set(CurrentKey, dynamic.Null)
	return &Context{vars: m}
}

// Binding is a single name/value pair used to build a Context.
type Binding struct {
	Name  string
	Value dynamic.Dynamic
}

// NewContextFrom builds a Context from an ordered list of name/value
// pairs, as the embedding API's Context::from does (spec §6). ROOT and
// CURRENT are pre-installed as Null first, then the given bindings are
// applied in order (so an explicit ROOT/CURRENT binding overrides the
// default).
func NewContextFrom(bindings []Binding) *Context {
	ctx := NewContext()
	for _, b := range bindings {
		ctx.SetVariable(b.Name, b.Value)
	}
	return ctx
}

// AsDynamic returns the context's backing map as a Dynamic Object, for
// path/variable resolution that walks it just like any other object.
func (c *Context) AsDynamic() dynamic.Dynamic {
	return dynamic.FromObject(c.vars)
}

// SetVariable inserts or replaces a binding, returning the previous value
// if any.
func (c *Context) SetVariable(name string, value dynamic.Dynamic) (prev dynamic.Dynamic, hadPrev bool) {
	prev, hadPrev, _ = c.vars.Set(name, value)
	return prev, hadPrev
}

// GetVariable looks up a binding by name.
func (c *Context) GetVariable(name string) (dynamic.Dynamic, bool) {
	return c.vars.Get(name)
}

// RemoveVariable deletes a binding, returning the previous value if any.
func (c *Context) RemoveVariable(name string) (prev dynamic.Dynamic, hadPrev bool) {
	prev, hadPrev, _ = c.vars.Remove(name)
	return prev, hadPrev
}

// GetRoot returns the ROOT binding, or Null if somehow absent.
func (c *Context) GetRoot() dynamic.Dynamic {
	v, ok := c.vars.Get(RootKey)
	if !ok {
		return dynamic.Null
	}
	return v
}

// GetCurrent returns the CURRENT binding, or Null if somehow absent.
func (c *Context) GetCurrent() dynamic.Dynamic {
	v, ok := c.vars.Get(CurrentKey)
	if !ok {
		return dynamic.Null
	}
	return v
}

// SetRoot replaces ROOT, returning the previous value if any.
func (c *Context) SetRoot(v dynamic.Dynamic) (prev dynamic.Dynamic, hadPrev bool) {
	return c.SetVariable(RootKey, v)
}

// SetCurrent replaces CURRENT, returning the previous value if any.
func (c *Context) SetCurrent(v dynamic.Dynamic) (prev dynamic.Dynamic, hadPrev bool) {
	return c.SetVariable(CurrentKey, v)
}

// WithVariableInScope saves the current binding for name (or its absence),
// runs body, then restores it — whether body returned an error or not
// (spec §4.2's set_variable_in_scope). Nested scopes restore in reverse
// order because each call's defer only ever touches the binding it saved.
func (c *Context) WithVariableInScope(name string, value dynamic.Dynamic, body func() (dynamic.Dynamic, error)) (dynamic.Dynamic, error) {
	prev, hadPrev := c.SetVariable(name, value)
	defer func() {
		if hadPrev {
			c.SetVariable(name, prev)
		} else {
			c.RemoveVariable(name)
		}
	}()
	return body()
}

// WithCurrentInScope is WithVariableInScope specialized to CURRENT, used
// by FieldConstraint predicate evaluation ($match scopes CURRENT through
// WithVariableInScope directly).
func (c *Context) WithCurrentInScope(value dynamic.Dynamic, body func() (bool, error)) (bool, error) {
	prev := c.GetCurrent()
	c.SetCurrent(value)
	defer c.SetCurrent(prev)
	return body()
}
