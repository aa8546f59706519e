package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

const emptyListConcatDoc = "## What it does\n" +
	"Checks for concatenations to empty lists.\n\n" +
	"## Why is this bad?\n" +
	"Concatenation with the empty list is a no-op.\n\n" +
	"## Example\n\n" +
	"```nix\n[] ++ something\n```\n\n" +
	"Remove the operation:\n\n" +
	"```nix\nsomething\n```\n"

type emptyListConcat struct{ base }

func newEmptyListConcat() lint.Rule {
	return emptyListConcat{base{lint.Meta{
		Name:        "empty_list_concat",
		Code:        23,
		Note:        "Unnecessary concatenation with empty list",
		Explanation: emptyListConcatDoc,
		Kinds:       []syntax.Kind{syntax.NodeBinOp},
	}}}
}

func (r emptyListConcat) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	bin, _ := ast.AsBinOp(n)
	if bin.Operator() != token.Concat {
		return nil
	}
	lhs, rhs := bin.LHS(), bin.RHS()
	if lhs == nil || rhs == nil {
		return nil
	}
	var keep *syntax.Node
	switch {
	case ast.IsEmptyList(lhs):
		keep = rhs
	case ast.IsEmptyList(rhs):
		keep = lhs
	default:
		return nil
	}
	return r.meta.Report().WithSuggestion(n.Span(), "Concatenation with the empty list, `[]`, is a no-op",
		diag.NewSuggestion(n.Span(), keep))
}
