package rules

import (
	"fmt"

	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
)

const etaReductionDoc = "## What it does\n" +
	"Checks for eta-reducible functions, i.e.: converts lambda\n" +
	"expressions into free standing functions where applicable.\n\n" +
	"## Why is this bad?\n" +
	"Oftentimes, eta-reduction results in code that is more natural\n" +
	"to read.\n\n" +
	"## Example\n\n" +
	"```nix\nlet\n  double = i: 2 * i;\nin\nmap (x: double x) [ 1 2 3 ]\n```\n\n" +
	"The lambda passed to the `map` function is eta-reducible, and the\n" +
	"result reads more naturally:\n\n" +
	"```nix\nlet\n  double = i: 2 * i;\nin\nmap double [ 1 2 3 ]\n```\n"

type etaReduction struct{ base }

func newEtaReduction() lint.Rule {
	return etaReduction{base{lint.Meta{
		Name:        "eta_reduction",
		Code:        7,
		Note:        "This function expression is eta reducible",
		Explanation: etaReductionDoc,
		Kinds:       []syntax.Kind{syntax.NodeLambda},
	}}}
}

func (r etaReduction) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	lambda, _ := ast.AsLambda(n)
	param, ok := lambda.ParamIdent()
	if !ok {
		return nil
	}
	app, ok := ast.AsApply(lambda.Body())
	if !ok {
		return nil
	}
	fn := app.Func()
	if fn == nil || !ast.IsIdentNamed(app.Arg(), param.Name()) || mentionsIdent(fn, param.Name()) {
		return nil
	}
	msg := fmt.Sprintf("Found eta-reduction: `%s`", fn.Text())
	return r.meta.Report().WithSuggestion(n.Span(), msg, diag.NewSuggestion(n.Span(), fn))
}
