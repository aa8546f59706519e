package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

const emptyPatternDoc = "## What it does\n" +
	"Checks for an empty variadic pattern: `{...}`, in a function\n" +
	"argument.\n\n" +
	"## Why is this bad?\n" +
	"The intention with empty patterns is not instantly obvious. Prefer\n" +
	"an underscore identifier instead, to indicate that the argument\n" +
	"is being ignored.\n\n" +
	"## Example\n\n" +
	"```nix\nclient = { ... }: {\n  services.irmaseal-pkg.enable = true;\n};\n```\n\n" +
	"Replace the empty variadic pattern with `_` to indicate that you\n" +
	"intend to ignore the argument:\n\n" +
	"```nix\nclient = _: {\n  services.irmaseal-pkg.enable = true;\n};\n```\n"

type emptyPattern struct{ base }

func newEmptyPattern() lint.Rule {
	return emptyPattern{base{lint.Meta{
		Name:        "empty_pattern",
		Code:        10,
		Note:        "Found empty pattern in function argument",
		Explanation: emptyPatternDoc,
		Kinds:       []syntax.Kind{syntax.NodeLambda},
	}}}
}

func (r emptyPattern) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	lambda, _ := ast.AsLambda(n)
	pat, ok := lambda.Pattern()
	if !ok || len(pat.Entries()) != 0 {
		return nil
	}
	if _, bound := pat.Bind(); bound {
		return nil
	}
	if isModule(lambda.Body()) {
		return nil
	}
	return r.meta.Report().WithSuggestion(pat.Span(), "This pattern is empty, use `_` instead",
		diag.NewSuggestion(pat.Span(), synth.Ident("_")))
}

// isModule reports whether body looks like a NixOS module: an attribute set
// with an `imports` key.
func isModule(body *syntax.Node) bool {
	set, ok := ast.AsAttrSet(body)
	if !ok {
		return false
	}
	for _, kv := range set.Entries() {
		path, ok := kv.Attrpath()
		if !ok {
			continue
		}
		if attrs := path.Attrs(); len(attrs) > 0 && ast.IsIdentNamed(attrs[0], "imports") {
			return true
		}
	}
	return false
}
