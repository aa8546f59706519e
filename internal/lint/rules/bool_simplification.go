package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
	"nixlint/internal/token"
)

const boolSimplificationDoc = "## What it does\n" +
	"Checks for boolean expressions that can be simplified.\n\n" +
	"## Why is this bad?\n" +
	"Complex booleans affect readibility.\n\n" +
	"## Example\n\n" +
	"```nix\nif !(x == y) then 0 else 1\n```\n\n" +
	"Use `!=` instead:\n\n" +
	"```nix\nif x != y then 0 else 1\n```\n"

type boolSimplification struct{ base }

func newBoolSimplification() lint.Rule {
	return boolSimplification{base{lint.Meta{
		Name:        "bool_simplification",
		Code:        18,
		Note:        "This boolean expression can be simplified",
		Explanation: boolSimplificationDoc,
		Kinds:       []syntax.Kind{syntax.NodeUnaryOp},
	}}}
}

func (r boolSimplification) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	un, _ := ast.AsUnaryOp(n)
	if un.Operator() != token.Invert {
		return nil
	}
	paren, ok := ast.AsParen(un.Value())
	if !ok {
		return nil
	}
	eq, ok := ast.AsBinOp(paren.Inner())
	if !ok || eq.Operator() != token.Equal || eq.LHS() == nil || eq.RHS() == nil {
		return nil
	}
	fix := synth.Binary(eq.LHS(), "!=", eq.RHS())
	// `x + !(a == b)` must stay grouped
	if parent, ok := ast.AsBinOp(n.Parent()); ok && tighterThanEquality(parent.Operator()) {
		fix = synth.Parenthesize(fix)
	}
	return r.meta.Report().WithSuggestion(n.Span(), "Try `!=` instead of `!(... == ...)`",
		diag.NewSuggestion(n.Span(), fix))
}
