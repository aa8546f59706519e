package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
)

const emptyLetInDoc = "## What it does\n" +
	"Checks for `let-in` expressions which create no new bindings.\n\n" +
	"## Why is this bad?\n" +
	"`let-in` expressions that create no new bindings are useless.\n" +
	"These are probably remnants from debugging or editing expressions.\n\n" +
	"## Example\n\n" +
	"```nix\nlet in pkgs.statix\n```\n\n" +
	"Preserve only the body of the `let-in` expression:\n\n" +
	"```nix\npkgs.statix\n```\n"

type emptyLetIn struct{ base }

func newEmptyLetIn() lint.Rule {
	return emptyLetIn{base{lint.Meta{
		Name:        "empty_let_in",
		Code:        2,
		Note:        "Useless let-in expression",
		Explanation: emptyLetInDoc,
		Kinds:       []syntax.Kind{syntax.NodeLetIn},
	}}}
}

func (r emptyLetIn) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	let, _ := ast.AsLetIn(n)
	if len(let.All()) != 0 {
		return nil
	}
	body := let.Body()
	if body == nil || body.Kind() == syntax.NodeError {
		return nil
	}
	return r.meta.Report().WithSuggestion(n.Span(), "This let-in expression has no entries",
		diag.NewSuggestion(n.Span(), body))
}
