package rules

import (
	"fmt"

	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

const fasterGroupByDoc = "## What it does\n" +
	"Checks for `lib.groupBy`.\n\n" +
	"## Why is this bad?\n" +
	"Nix 2.5 introduces `builtins.groupBy` which is faster and does\n" +
	"not require a lib import.\n\n" +
	"## Example\n\n" +
	"```nix\nlib.groupBy (x: if x > 2 then \"big\" else \"small\") [ 1 2 3 4 5 6 ];\n" +
	"# { big = [ 3 4 5 6 ]; small = [ 1 2 ]; }\n```\n\n" +
	"Replace `lib.groupBy` with `builtins.groupBy`:\n\n" +
	"```nix\nbuiltins.groupBy (x: if x > 2 then \"big\" else \"small\") [ 1 2 3 4 5 6 ];\n```\n"

const fasterZipAttrsWithDoc = "## What it does\n" +
	"Checks for `lib.zipAttrsWith`.\n\n" +
	"## Why is this bad?\n" +
	"Nix 2.6 introduces `builtins.zipAttrsWith` which is faster and does\n" +
	"not require a lib import.\n\n" +
	"## Example\n\n" +
	"```nix\nlib.zipAttrsWith (name: values: values) [ {a = \"x\";} {a = \"y\"; b = \"z\";} ]\n" +
	"# { a = [\"x\" \"y\"]; b = [\"z\"] }\n```\n\n" +
	"Replace `lib.zipAttrsWith` with `builtins.zipAttrsWith`:\n\n" +
	"```nix\nbuiltins.zipAttrsWith (name: values: values) [ {a = \"x\";} {a = \"y\"; b = \"z\";} ]\n```\n"

// fasterBuiltin flags `<set>.name` for a function that became a builtin in
// since.
type fasterBuiltin struct {
	base
	function string
	since    session.Version
}

func newFasterGroupBy() lint.Rule {
	return fasterBuiltin{
		base: base{lint.Meta{
			Name:        "faster_groupby",
			Code:        15,
			Note:        "Found lib.groupBy",
			Explanation: fasterGroupByDoc,
			Kinds:       []syntax.Kind{syntax.NodeSelect},
		}},
		function: "groupBy",
		since:    session.V(2, 5),
	}
}

func newFasterZipAttrsWith() lint.Rule {
	return fasterBuiltin{
		base: base{lint.Meta{
			Name:        "faster_zipattrswith",
			Code:        16,
			Note:        "Found lib.zipAttrsWith",
			Explanation: fasterZipAttrsWithDoc,
			Kinds:       []syntax.Kind{syntax.NodeSelect},
		}},
		function: "zipAttrsWith",
		since:    session.V(2, 6),
	}
}

func (r fasterBuiltin) Validate(el syntax.Element, sess *session.Info) *diag.Report {
	if sess.Version().Less(r.since) {
		return nil
	}
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	prefix, ok := selectsLast(n, r.function)
	if !ok || prefix == "builtins" {
		return nil
	}
	replacement := "builtins." + r.function
	msg := fmt.Sprintf("Prefer `%s` over `%s.%s`", replacement, prefix, r.function)
	fix := synth.Select(synth.Ident("builtins"), synth.Ident(r.function))
	return r.meta.Report().WithSuggestion(n.Span(), msg, diag.NewSuggestion(n.Span(), fix))
}
