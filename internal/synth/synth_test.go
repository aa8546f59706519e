package synth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"nixlint/internal/ast"
	"nixlint/internal/parser"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

func node(t *testing.T, src string, kind syntax.Kind) *syntax.Node {
	t.Helper()
	tree := parser.Parse(src)
	require.True(t, tree.OK(), "parse %q: %v", src, tree.Errors)
	n := tree.Root().FirstDescendant(kind)
	require.NotNil(t, n, "no %s in %q", kind, src)
	return n
}

func TestBuilders(t *testing.T) {
	a := synth.Ident("a")
	b := synth.Ident("b")
	tests := []struct {
		name string
		got  *syntax.Node
		kind syntax.Kind
		text string
	}{
		{"paren", synth.Parenthesize(synth.Binary(a, "==", b)), syntax.NodeParen, "(a == b)"},
		{"not", synth.UnaryNot(a), syntax.NodeUnaryOp, "!a"},
		{"binary", synth.Binary(a, "!=", b), syntax.NodeBinOp, "a != b"},
		{"select", synth.Select(synth.Ident("builtins"), synth.Ident("groupBy")), syntax.NodeSelect, "builtins.groupBy"},
		{"or", synth.OrDefault(a, b, synth.Ident("null")), syntax.NodeSelect, "a.b or null"},
		{"inherit", synth.InheritStmt("a", "b"), syntax.NodeInherit, "inherit a b;"},
		{"inheritFrom", synth.InheritFromStmt(a.Text(), "b"), syntax.NodeInherit, "inherit (a) b;"},
		{"quote", synth.Quote(node(t, "{ ${x} = 1; }", syntax.NodeDynamic)), syntax.NodeString, `"${x}"`},
		{"apply", synth.Apply(a, b), syntax.NodeApply, "a b"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.kind, tt.got.Kind(), tt.name)
		require.Equal(t, tt.text, tt.got.Text(), tt.name)
	}
}

func TestAttrSet(t *testing.T) {
	let, _ := ast.AsLegacyLet(node(t, "let { a = 1; body = a; }", syntax.NodeLegacyLet))
	set := synth.AttrSet(let.All(), true)
	require.Equal(t, "rec {\n  a = 1;\n  body = a;\n}", set.Text())
}

func TestMultilinePattern(t *testing.T) {
	pat, _ := ast.AsPattern(node(t, "{ lib, a ? 1, ... } @ args: lib", syntax.NodePattern))
	got := synth.MultilinePattern(pat)
	require.Equal(t, "{\n  lib,\n  a ? 1,\n  ...\n} @ args", got.Text())

	pat, _ = ast.AsPattern(node(t, "args@{ lib, a }: lib", syntax.NodePattern))
	got = synth.MultilinePattern(pat)
	require.Equal(t, "args @ {\n  lib,\n  a,\n}", got.Text())
}

func TestCacheSharesTrees(t *testing.T) {
	before := synth.CacheStats()
	first := synth.Ident("cachedIdentifier")
	second := synth.Ident("cachedIdentifier")
	require.Same(t, first, second)
	after := synth.CacheStats()
	require.GreaterOrEqual(t, after.Hits, before.Hits+1)
}

func TestMissingTargetPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok)
		var se *synth.Error
		require.True(t, errors.As(err, &se))
		require.Equal(t, syntax.NodeLambda, se.Kind)
	}()
	synth.Extract("a + b", syntax.NodeLambda)
}

func TestBrokenSnippetPanics(t *testing.T) {
	require.Panics(t, func() { synth.Parse("{ a = ; }") })
}
