package rules

import (
	"slices"

	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/source"
	"nixlint/internal/syntax"
)

const collapsibleLetInDoc = "## What it does\n" +
	"Checks for `let-in` expressions whose body is another `let-in`\n" +
	"expression.\n\n" +
	"## Why is this bad?\n" +
	"Unnecessary code, the `let-in` expressions can be merged.\n\n" +
	"## Example\n\n" +
	"```nix\nlet\n  a = 2;\nin\nlet\n  b = 3;\nin\n  a + b\n```\n\n" +
	"Merge both `let-in` expressions:\n\n" +
	"```nix\nlet\n  a = 2;\n  b = 3;\nin\n  a + b\n```\n"

type collapsibleLetIn struct{ base }

func newCollapsibleLetIn() lint.Rule {
	return collapsibleLetIn{base{lint.Meta{
		Name:        "collapsible_let_in",
		Code:        6,
		Note:        "These let-in expressions are collapsible",
		Explanation: collapsibleLetInDoc,
		Kinds:       []syntax.Kind{syntax.NodeLetIn},
	}}}
}

func (r collapsibleLetIn) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	outer, _ := ast.AsLetIn(n)
	inner, ok := ast.AsLetIn(outer.Body())
	if !ok {
		return nil
	}
	in, let := outer.InToken(), inner.LetToken()
	if in == nil || let == nil {
		return nil
	}
	// merging must not rebind a name the outer bindings already see
	innerNames := bindingNames(inner.Bindings)
	outerNames := bindingNames(outer.Bindings)
	for _, name := range innerNames {
		if slices.Contains(outerNames, name) {
			return nil
		}
		for _, b := range outer.All() {
			if mentionsIdent(b, name) {
				return nil
			}
		}
	}

	cut := source.Span{File: in.Span().File, Start: in.Span().Start, End: let.Span().End}
	return r.meta.Report().
		WithDiagnostic(n.Span(), "This `let in` expression contains a nested `let in` expression").
		WithSuggestion(inner.Span(), "This `let in` expression is nested", diag.Deletion(cut))
}
