package eval

import (
	"github.com/Rastler3D/query-lang/ast"
	"github.com/Rastler3D/query-lang/dynamic"
)

// Script wraps a parsed ast.Script with the evaluation entry points the
// original embedding API exposes: a fresh-context eval, a ROOT-only
// convenience, and an eval against a caller-supplied Context.
//
// ast.Script itself stays a plain data node (package ast holds no
// evaluation behavior, by design — see that package's doc comment); Go
// has no equivalent of adding an impl block from a different crate
// without an import cycle (eval already imports ast to walk its nodes),
// so the wrapper lives here instead of as a method set on ast.Script.
type Script struct {
	AST *ast.Script
}

// WrapScript adapts a parsed ast.Script into the Script wrapper.
func WrapScript(s *ast.Script) *Script {
	return &Script{AST: s}
}

// Eval evaluates the script against ctx.
func (s *Script) Eval(ctx *Context) (dynamic.Dynamic, error) {
	return Eval(s.AST.Expr, ctx)
}

// EvalWithRoot evaluates the script against a fresh Context whose ROOT is
// root and whose CURRENT is Null.
func (s *Script) EvalWithRoot(root dynamic.Dynamic) (dynamic.Dynamic, error) {
	ctx := NewContext()
	ctx.SetRoot(root)
	return s.Eval(ctx)
}

// EvalWithContext is Eval under another name, matching the original
// embedding API's three-entry-point naming (eval / eval_with_root /
// eval_with_context) so callers porting from it find a familiar name.
func (s *Script) EvalWithContext(ctx *Context) (dynamic.Dynamic, error) {
	return s.Eval(ctx)
}

// Predicate wraps a parsed ast.Predicate with the standalone Test entry
// point, for use outside of $match (spec's restored FromStr-equivalent
// public API). See Script's doc comment for why this lives here instead
// of as a method on ast.Predicate.
type Predicate struct {
	AST ast.Predicate
}

// WrapPredicate adapts a parsed ast.Predicate into the Predicate wrapper.
func WrapPredicate(p ast.Predicate) *Predicate {
	return &Predicate{AST: p}
}

// Test evaluates the predicate against ctx's current CURRENT binding.
func (p *Predicate) Test(ctx *Context) (bool, error) {
	return Test(p.AST, ctx)
}

// TestAgainst is a convenience that installs subject as CURRENT in a
// fresh Context before testing, for the common case of testing a
// standalone predicate against one value with no other bindings.
func (p *Predicate) TestAgainst(subject dynamic.Dynamic) (bool, error) {
	ctx := NewContext()
	ctx.SetCurrent(subject)
	return p.Test(ctx)
}
