package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

const deprecatedIsNullDoc = "## What it does\n" +
	"Checks for usage of the `isNull` function.\n\n" +
	"## Why is this bad?\n" +
	"The use of `isNull` is discouraged. `null` checks should be\n" +
	"performed with an equality check instead.\n\n" +
	"## Example\n\n" +
	"```nix\nisNull x\n```\n\n" +
	"Check equality with `null` instead:\n\n" +
	"```nix\nx == null\n```\n"

type deprecatedIsNull struct{ base }

func newDeprecatedIsNull() lint.Rule {
	return deprecatedIsNull{base{lint.Meta{
		Name:        "deprecated_is_null",
		Code:        13,
		Note:        "Found usage of deprecated builtin isNull",
		Explanation: deprecatedIsNullDoc,
		Kinds:       []syntax.Kind{syntax.NodeApply},
	}}}
}

func (r deprecatedIsNull) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	app, _ := ast.AsApply(n)
	arg := app.Arg()
	if !ast.IsIdentNamed(app.Func(), "isNull") || arg == nil {
		return nil
	}
	fix := synth.Parenthesize(synth.Binary(arg, "==", synth.Ident("null")))
	return r.meta.Report().WithSuggestion(n.Span(), "`isNull` is deprecated, check equality with `null` instead",
		diag.NewSuggestion(n.Span(), fix))
}
