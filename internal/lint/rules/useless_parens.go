package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
)

const uselessParensDoc = "## What it does\n" +
	"Checks for unnecessary parentheses.\n\n" +
	"## Why is this bad?\n" +
	"Unnecessarily parenthesized code is hard to read.\n\n" +
	"## Example\n\n" +
	"```nix\nlet\n  double = (x: 2 * x);\n  ls = map (double) [ 1 2 3 ];\nin\n  (2 + 3)\n```\n\n" +
	"Remove unnecessary parentheses:\n\n" +
	"```nix\nlet\n  double = x: 2 * x;\n  ls = map double [ 1 2 3 ];\nin\n  2 + 3\n```\n"

type uselessParens struct{ base }

func newUselessParens() lint.Rule {
	return uselessParens{base{lint.Meta{
		Name:        "useless_parens",
		Code:        8,
		Note:        "These parentheses can be omitted",
		Explanation: uselessParensDoc,
		Kinds:       []syntax.Kind{syntax.NodeAttrpathValue, syntax.NodeParen, syntax.NodeLetIn},
	}}}
}

func (r uselessParens) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	var (
		paren ast.Paren
		msg   string
	)
	switch n.Kind() {
	case syntax.NodeAttrpathValue:
		kv, _ := ast.AsAttrpathValue(n)
		if paren, ok = ast.AsParen(kv.Value()); !ok {
			return nil
		}
		msg = "Useless parentheses around value in binding"
	case syntax.NodeLetIn:
		let, _ := ast.AsLetIn(n)
		if paren, ok = ast.AsParen(let.Body()); !ok {
			return nil
		}
		msg = "Useless parentheses around body of `let` expression"
	case syntax.NodeParen:
		// bindings and let bodies are reported from the parent
		if p := n.Parent(); p != nil && (p.Kind() == syntax.NodeAttrpathValue || p.Kind() == syntax.NodeLetIn) {
			return nil
		}
		paren, _ = ast.AsParen(n)
		switch k := kindOf(paren.Inner()); k {
		case syntax.NodeList, syntax.NodeParen, syntax.NodeString,
			syntax.NodeAttrSet, syntax.NodeSelect, syntax.NodeIdent:
		default:
			return nil
		}
		// `(a.b or c).d` would regroup the default
		if sel, ok := ast.AsSelect(paren.Inner()); ok && sel.Default() != nil && n.Parent().Kind() == syntax.NodeSelect {
			return nil
		}
		msg = "Useless parentheses around primitive expression"
	default:
		return nil
	}
	inner := paren.Inner()
	if inner == nil || inner.Kind() == syntax.NodeError || gluesToNeighbours(paren.Node, inner.Text()) {
		return nil
	}
	return r.meta.Report().WithSuggestion(paren.Span(), msg, diag.NewSuggestion(paren.Span(), inner))
}

func kindOf(n *syntax.Node) syntax.Kind {
	if n == nil {
		return syntax.NodeError
	}
	return n.Kind()
}
