package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

const manualInheritDoc = "## What it does\n" +
	"Checks for bindings of the form `a = a`.\n\n" +
	"## Why is this bad?\n" +
	"If the aim is to bring attributes from a larger scope into\n" +
	"the current scope, prefer an inherit statement.\n\n" +
	"## Example\n\n" +
	"```nix\nlet\n  a = 2;\nin\n  { a = a; b = 3; }\n```\n\n" +
	"Try `inherit` instead:\n\n" +
	"```nix\nlet\n  a = 2;\nin\n  { inherit a; b = 3; }\n```\n"

type manualInherit struct{ base }

func newManualInherit() lint.Rule {
	return manualInherit{base{lint.Meta{
		Name:        "manual_inherit",
		Code:        3,
		Note:        "Assignment instead of inherit",
		Explanation: manualInheritDoc,
		Kinds:       []syntax.Kind{syntax.NodeAttrpathValue},
	}}}
}

func (r manualInherit) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	kv, _ := ast.AsAttrpathValue(n)
	key, ok := kv.Key()
	if !ok {
		return nil
	}
	if !ast.IsIdentNamed(kv.Value(), key.Name()) {
		return nil
	}
	return r.meta.Report().WithSuggestion(n.Span(), "This assignment is better written with `inherit`",
		diag.NewSuggestion(n.Span(), synth.InheritStmt(key.Name())))
}
