package rules

import (
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

const unquotedSpliceDoc = "## What it does\n" +
	"Checks for antiquote/splice expressions that are not quoted.\n\n" +
	"## Why is this bad?\n" +
	"An *anti-quoted* expression should always occur within a *quoted*\n" +
	"expression.\n\n" +
	"## Example\n\n" +
	"```nix\nlet\n  pkgs = nixpkgs.legacyPackages.${system};\nin\n  pkgs\n```\n\n" +
	"Quote the splice expression:\n\n" +
	"```nix\nlet\n  pkgs = nixpkgs.legacyPackages.\"${system}\";\nin\n  pkgs\n```\n"

type unquotedSplice struct{ base }

func newUnquotedSplice() lint.Rule {
	return unquotedSplice{base{lint.Meta{
		Name:        "unquoted_splice",
		Code:        9,
		Note:        "Found unquoted splice expression",
		Explanation: unquotedSpliceDoc,
		Kinds:       []syntax.Kind{syntax.NodeDynamic},
	}}}
}

func (r unquotedSplice) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok || n.FirstChildNode() == nil {
		return nil
	}
	return r.meta.Report().WithSuggestion(n.Span(), "Consider quoting this splice expression",
		diag.NewSuggestion(n.Span(), synth.Quote(n)))
}
