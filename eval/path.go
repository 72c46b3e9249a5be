package eval

import (
	"fmt"

	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/dynamic"
)

// ResolveFieldPath walks path against root field-by-field, including its
// base: path's BasePath names a field of root itself (spec §4.5's
// FieldPathRef, "$name.sub" resolves against ROOT). A Path is built
// inside-out by the parser (each step wraps its base), so resolution
// recurses down to the BasePath first, then applies steps outward. The
// returned bool is false the moment any step misses — a missing field, a
// nil array slot, or a step applied to a value of the wrong kind — and the
// caller decides what a miss means: UndefinedVariable in expression
// position, Null in predicate position (spec §4.5).
func ResolveFieldPath(root dynamic.Dynamic, path ast.Path) (dynamic.Dynamic, bool) {
	switch p := path.(type) {
	case *ast.BasePath:
		return root.GetObjectField(p.Name)
	case *ast.MemberStep:
		base, ok := ResolveFieldPath(root, p.Base)
		if !ok {
			return dynamic.Null, false
		}
		return base.GetObjectField(p.Name)
	case *ast.IndexStep:
		base, ok := ResolveFieldPath(root, p.Base)
		if !ok {
			return dynamic.Null, false
		}
		v, ok, err := base.GetArrayItem(p.Index)
		if err != nil {
			return dynamic.Null, false
		}
		return v, ok
	default:
		return dynamic.Null, false
	}
}

// ResolveFieldPathOrNull is ResolveFieldPath with a miss collapsed to Null,
// for predicate-position field constraints (spec: "set CURRENT :=
// path.resolve(CURRENT) ?? Null").
func ResolveFieldPathOrNull(root dynamic.Dynamic, path ast.Path) dynamic.Dynamic {
	v, ok := ResolveFieldPath(root, path)
	if !ok {
		return dynamic.Null
	}
	return v
}

// ResolveVariablePath resolves path's BasePath as a variable name against
// ctx (spec §4.5's VariableRef, "$$name.sub"), then walks any remaining
// Member/Index steps against that variable's value — unlike
// ResolveFieldPath, the base name is a context lookup, not a field lookup.
func ResolveVariablePath(ctx *Context, path ast.Path) (dynamic.Dynamic, bool) {
	switch p := path.(type) {
	case *ast.BasePath:
		return ctx.GetVariable(p.Name)
	case *ast.MemberStep:
		base, ok := ResolveVariablePath(ctx, p.Base)
		if !ok {
			return dynamic.Null, false
		}
		return base.GetObjectField(p.Name)
	case *ast.IndexStep:
		base, ok := ResolveVariablePath(ctx, p.Base)
		if !ok {
			return dynamic.Null, false
		}
		v, ok, err := base.GetArrayItem(p.Index)
		if err != nil {
			return dynamic.Null, false
		}
		return v, ok
	default:
		return dynamic.Null, false
	}
}

// PathString renders path back into its dotted/indexed source form, e.g.
// "field.sub[3]", for use in UndefinedVariable error messages.
func PathString(path ast.Path) string {
	switch p := path.(type) {
	case *ast.BasePath:
		return p.Name
	case *ast.MemberStep:
		return PathString(p.Base) + "." + p.Name
	case *ast.IndexStep:
		return fmt.Sprintf("%s[%d]", PathString(p.Base), p.Index)
	default:
		return "<invalid path>"
	}
}

// VariablePathString renders a VariableRef's path with its "$$" sigil, as
// it would have appeared in source, for error messages.
func VariablePathString(path ast.Path) string {
	return "$$" + PathString(path)
}

// FieldPathString renders a FieldPathRef's path with its "$" sigil.
func FieldPathString(path ast.Path) string {
	return "$" + PathString(path)
}
