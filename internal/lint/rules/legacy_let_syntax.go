package rules

import (
	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

const legacyLetSyntaxDoc = "## What it does\n" +
	"Checks for legacy-let syntax that was never formalized.\n\n" +
	"## Why is this bad?\n" +
	"This syntax construct is undocumented, refrain from using it.\n\n" +
	"## Example\n\n" +
	"Legacy let syntax makes use of an attribute set annotated with\n" +
	"`let` and expects a `body` attribute.\n\n" +
	"```nix\nlet {\n  body = x + y;\n  x = 2;\n  y = 3;\n}\n```\n\n" +
	"This is trivially representable via `rec`, which is documented\n" +
	"and more widely known:\n\n" +
	"```nix\nrec {\n  body = x + y;\n  x = 2;\n  y = 3;\n}.body\n```\n"

type legacyLetSyntax struct{ base }

func newLegacyLetSyntax() lint.Rule {
	return legacyLetSyntax{base{lint.Meta{
		Name:        "legacy_let_syntax",
		Code:        5,
		Note:        "Using undocumented `let` syntax",
		Explanation: legacyLetSyntaxDoc,
		Kinds:       []syntax.Kind{syntax.NodeLegacyLet},
	}}}
}

func (r legacyLetSyntax) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	let, _ := ast.AsLegacyLet(n)
	hasBody := false
	for _, kv := range let.Entries() {
		path, ok := kv.Attrpath()
		if !ok {
			continue
		}
		if attrs := path.Attrs(); len(attrs) > 0 && ast.IsIdentNamed(attrs[0], "body") {
			hasBody = true
			break
		}
	}
	if !hasBody {
		return nil
	}
	set := synth.AttrSet(let.All(), true)
	fix := synth.Select(synth.Parenthesize(set), synth.Ident("body"))
	return r.meta.Report().WithSuggestion(n.Span(), "Prefer `rec` over undocumented `let` syntax",
		diag.NewSuggestion(n.Span(), fix))
}
