package ast

// Script wraps a single top-level Expression: the whole of a parsed
// program (spec §3). A Script is immutable once parsed and may be
// evaluated any number of times, concurrently, provided each evaluation
// uses its own Context (spec §5).
type Script struct {
	Expr Expression
}
