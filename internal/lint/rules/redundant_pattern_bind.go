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

const redundantPatternBindDoc = "## What it does\n" +
	"Checks for binds of the form `inputs @ { ... }` in function\n" +
	"arguments.\n\n" +
	"## Why is this bad?\n" +
	"The variadic pattern here is redundant, as it does not capture\n" +
	"anything.\n\n" +
	"## Example\n\n" +
	"```nix\ninputs @ { ... }: inputs.nixpkgs\n```\n\n" +
	"Remove the pattern altogether:\n\n" +
	"```nix\ninputs: inputs.nixpkgs\n```\n"

type redundantPatternBind struct{ base }

func newRedundantPatternBind() lint.Rule {
	return redundantPatternBind{base{lint.Meta{
		Name:        "redundant_pattern_bind",
		Code:        11,
		Note:        "Found redundant pattern bind in function argument",
		Explanation: redundantPatternBindDoc,
		Kinds:       []syntax.Kind{syntax.NodePattern},
	}}}
}

func (r redundantPatternBind) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	pat, _ := ast.AsPattern(n)
	if len(pat.Entries()) != 0 || !pat.Ellipsis() {
		return nil
	}
	bind, ok := pat.Bind()
	if !ok || bind.Name() == "" {
		return nil
	}
	msg := fmt.Sprintf("This pattern bind is redundant, use `%s` instead", bind.Name())
	return r.meta.Report().WithSuggestion(n.Span(), msg, diag.NewSuggestion(n.Span(), synth.Ident(bind.Name())))
}
