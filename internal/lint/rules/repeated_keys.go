package rules

import (
	"fmt"
	"strings"

	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
)

const repeatedKeysDoc = "## What it does\n" +
	"Checks for keys in attribute sets with repetitive keys, and suggests\n" +
	"using an attribute set instead.\n\n" +
	"## Why is this bad?\n" +
	"Avoiding repetition helps improve readibility.\n\n" +
	"## Example\n\n" +
	"```nix\n{\n  foo.a = 1;\n  foo.b = 2;\n  foo.c = 3;\n}\n```\n\n" +
	"Don't repeat.\n\n" +
	"```nix\n{\n  foo = {\n    a = 1;\n    b = 2;\n    c = 3;\n  };\n}\n```\n"

// minRepeats is the number of occurrences from which a prefix is reported.
const minRepeats = 3

type repeatedKeys struct{ base }

func newRepeatedKeys() lint.Rule {
	return repeatedKeys{base{lint.Meta{
		Name:        "repeated_keys",
		Code:        20,
		Note:        "Avoid repeated keys in attribute sets",
		Explanation: repeatedKeysDoc,
		Kinds:       []syntax.Kind{syntax.NodeAttrpathValue},
	}}}
}

// prefixOf splits a multi-component key into its leading identifier and the
// remaining path text.
func prefixOf(kv ast.AttrpathValue) (first, rest string, ok bool) {
	path, ok := kv.Attrpath()
	if !ok {
		return "", "", false
	}
	attrs := path.Attrs()
	if len(attrs) < 2 {
		return "", "", false
	}
	id, ok := ast.AsIdent(attrs[0])
	if !ok {
		return "", "", false
	}
	parts := make([]string, 0, len(attrs)-1)
	for _, a := range attrs[1:] {
		parts = append(parts, a.Text())
	}
	return id.Name(), strings.Join(parts, "."), true
}

func (r repeatedKeys) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	kv, _ := ast.AsAttrpathValue(n)
	first, _, ok := prefixOf(kv)
	if !ok {
		return nil
	}
	set, ok := ast.AsAttrSet(n.Parent())
	if !ok || set.Rec() {
		return nil
	}

	type occurrence struct {
		kv   ast.AttrpathValue
		rest string
	}
	var occs []occurrence
	for _, other := range set.Entries() {
		name, rest, ok := prefixOf(other)
		if ok && name == first {
			occs = append(occs, occurrence{other, rest})
		}
	}
	// report once, from the first occurrence
	if len(occs) < minRepeats || occs[0].kv.Node != n {
		return nil
	}

	keyPath := func(o occurrence) *syntax.Node {
		path, _ := o.kv.Attrpath()
		return path.Node
	}
	rep := r.meta.Report().
		WithDiagnostic(keyPath(occs[0]).Span(), fmt.Sprintf("The key `%s` is first assigned here ...", first)).
		WithDiagnostic(keyPath(occs[1]).Span(), "... repeated here ...")

	third := fmt.Sprintf("... and here (`%d` occurrences omitted).", len(occs)-minRepeats)
	if len(occs) == minRepeats {
		third = "... and here."
	}
	subkeys := make([]string, 0, minRepeats)
	for _, o := range occs[:minRepeats] {
		subkeys = append(subkeys, o.rest+"=...;")
	}
	third += fmt.Sprintf(" Try `%s = { %s }` instead.", first, strings.Join(subkeys, " "))
	return rep.WithDiagnostic(keyPath(occs[2]).Span(), third)
}
