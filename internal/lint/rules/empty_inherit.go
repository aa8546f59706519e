package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/source"
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

const emptyInheritDoc = "## What it does\n" +
	"Checks for empty inherit statements.\n\n" +
	"## Why is this bad?\n" +
	"Useless code, probably the result of a refactor.\n\n" +
	"## Example\n\n" +
	"```nix\ninherit;\n```\n\n" +
	"Remove it altogether.\n"

type emptyInherit struct{ base }

func newEmptyInherit() lint.Rule {
	return emptyInherit{base{lint.Meta{
		Name:        "empty_inherit",
		Code:        14,
		Note:        "Found empty inherit statement",
		Explanation: emptyInheritDoc,
		Kinds:       []syntax.Kind{syntax.NodeInherit},
	}}}
}

func (r emptyInherit) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	inh, _ := ast.AsInherit(n)
	if inh.From() != nil || len(inh.Attrs()) != 0 {
		return nil
	}
	return r.meta.Report().WithSuggestion(n.Span(), "Remove this empty `inherit` statement",
		diag.Deletion(withPrecedingWhitespace(n)))
}

// withPrecedingWhitespace widens n's span over the whitespace token right
// before it.
func withPrecedingWhitespace(n *syntax.Node) source.Span {
	sp := n.Span()
	if prev, ok := syntax.PrevSibling(n).(*syntax.Token); ok && prev != nil && prev.TokenKind() == token.Whitespace {
		sp.Start = prev.Span().Start
	}
	return sp
}
