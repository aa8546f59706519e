package parser_test

import (
	"strings"
	"testing"

	"nixlint/internal/parser"
	"nixlint/internal/syntax"
	"nixlint/internal/testkit"
)

// nodeKinds: виды всех узлов дерева в прямом порядке обхода.
func nodeKinds(tree *syntax.Tree) []string {
	var out []string
	syntax.Walk(tree.Root(), func(e syntax.Element) bool {
		if n, ok := e.(*syntax.Node); ok {
			out = append(out, strings.TrimPrefix(n.Kind().String(), "NODE_"))
			return true
		}
		return false
	})
	return out
}

func errorsSummary(tree *syntax.Tree) string {
	if len(tree.Errors) == 0 {
		return "<none>"
	}
	msgs := make([]string, len(tree.Errors))
	for i, e := range tree.Errors {
		msgs[i] = e.Span.String() + " " + e.Message
	}
	return strings.Join(msgs, "; ")
}

// checkLossless verifies the tree reproduces the input and that spans nest
// and follow each other.
func checkLossless(t *testing.T, src string, tree *syntax.Tree) {
	t.Helper()
	if err := testkit.CheckTree(tree, src); err != nil {
		t.Fatal(err)
	}
}

func mustParse(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	tree := parser.Parse(src)
	checkLossless(t, src, tree)
	if !tree.OK() {
		t.Fatalf("parse %q: %s", src, errorsSummary(tree))
	}
	return tree
}
