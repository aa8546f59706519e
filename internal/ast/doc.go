// Package ast provides typed, read-only views over CST nodes.
//
// A view is a thin wrapper around *syntax.Node; constructing one never copies
// or rebuilds anything. Cast functions follow the comma-ok form:
//
//	if bin, ok := ast.AsBinOp(n); ok { ... }
//
// Accessors return nil when the parser recovered from an error and the part
// is missing, so callers must check before use.
package ast
