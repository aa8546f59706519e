package rules

import (
	"fmt"

	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

const uselessHasAttrDoc = "## What it does\n" +
	"Checks for expressions that use the \"has attribute\" operator: `?`,\n" +
	"where the `or` operator would suffice.\n\n" +
	"## Why is this bad?\n" +
	"The `or` operator is more readable.\n\n" +
	"## Example\n\n" +
	"```nix\nif x ? a then x.a else some_default\n```\n\n" +
	"Use `or` instead:\n\n" +
	"```nix\nx.a or some_default\n```\n"

type uselessHasAttr struct{ base }

func newUselessHasAttr() lint.Rule {
	return uselessHasAttr{base{lint.Meta{
		Name:        "useless_has_attr",
		Code:        19,
		Note:        "This `if` expression can be simplified with `or`",
		Explanation: uselessHasAttrDoc,
		Kinds:       []syntax.Kind{syntax.NodeIfElse},
	}}}
}

func (r uselessHasAttr) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	ifElse, _ := ast.AsIfElse(n)
	has, ok := ast.AsHasAttr(ifElse.Cond())
	if !ok || has.Set() == nil {
		return nil
	}
	path, ok := has.Attrpath()
	if !ok {
		return nil
	}
	then, def := ifElse.Then(), ifElse.Else()
	if then == nil || def == nil || def.Kind() == syntax.NodeError {
		return nil
	}
	if then.Kind() != syntax.NodeSelect || then.Text() != synth.Select(has.Set(), path).Text() {
		return nil
	}
	switch def.Kind() {
	case syntax.NodeList, syntax.NodeParen, syntax.NodeString,
		syntax.NodeAttrSet, syntax.NodeIdent, syntax.NodeSelect:
	default:
		def = synth.Parenthesize(def)
	}
	fix := synth.OrDefault(has.Set(), path, def)
	msg := fmt.Sprintf("Consider using `%s` instead of this `if` expression", fix.Text())
	return r.meta.Report().WithSuggestion(n.Span(), msg, diag.NewSuggestion(n.Span(), fix))
}
