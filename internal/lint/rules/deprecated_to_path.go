package rules

import (
	"fmt"

	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
)

const deprecatedToPathDoc = "## What it does\n" +
	"Checks for usage of the `toPath` function.\n\n" +
	"## Why is this bad?\n" +
	"`toPath` is deprecated.\n\n" +
	"## Example\n\n" +
	"```nix\nbuiltins.toPath \"/path\"\n```\n\n" +
	"Try these instead:\n\n" +
	"```nix\n# to convert the string to an absolute path:\n" +
	"/. + \"/path\"\n# => /abc\n\n" +
	"# to convert the string to a path relative to the current directory:\n" +
	"./. + \"/bin\"\n# => /home/np/statix/bin\n```\n"

type deprecatedToPath struct{ base }

func newDeprecatedToPath() lint.Rule {
	return deprecatedToPath{base{lint.Meta{
		Name:        "deprecated_to_path",
		Code:        17,
		Note:        "Found usage of deprecated builtin toPath",
		Explanation: deprecatedToPathDoc,
		Kinds:       []syntax.Kind{syntax.NodeApply},
	}}}
}

func (r deprecatedToPath) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	app, _ := ast.AsApply(n)
	fn := app.Func()
	if fn == nil {
		return nil
	}
	name := fn.Text()
	if name != "builtins.toPath" && name != "toPath" {
		return nil
	}
	msg := fmt.Sprintf("`%s` is deprecated, see `:doc builtins.toPath` within the REPL for more", name)
	return r.meta.Report().WithDiagnostic(n.Span(), msg)
}
