package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

const manualInheritFromDoc = "## What it does\n" +
	"Checks for bindings of the form `a = someAttr.a`.\n\n" +
	"## Why is this bad?\n" +
	"If the aim is to extract or bring attributes of an attrset into\n" +
	"scope, prefer an inherit statement.\n\n" +
	"## Example\n\n" +
	"```nix\nlet\n  mtl = pkgs.haskellPackages.mtl;\nin\n  null\n```\n\n" +
	"Try `inherit` instead:\n\n" +
	"```nix\nlet\n  inherit (pkgs.haskellPackages) mtl;\nin\n  null\n```\n"

type manualInheritFrom struct{ base }

func newManualInheritFrom() lint.Rule {
	return manualInheritFrom{base{lint.Meta{
		Name:        "manual_inherit_from",
		Code:        4,
		Note:        "Assignment instead of inherit from",
		Explanation: manualInheritFromDoc,
		Kinds:       []syntax.Kind{syntax.NodeAttrpathValue},
	}}}
}

func (r manualInheritFrom) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	kv, _ := ast.AsAttrpathValue(n)
	key, ok := kv.Key()
	if !ok {
		return nil
	}
	from, ok := selectsLast(kv.Value(), key.Name())
	if !ok {
		return nil
	}
	return r.meta.Report().WithSuggestion(n.Span(), "This assignment is better written with `inherit`",
		diag.NewSuggestion(n.Span(), synth.InheritFromStmt(from, key.Name())))
}
