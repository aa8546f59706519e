package lint

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"nixlint/internal/diag"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
)

// identRule reports every identifier with its name as the message.
type identRule struct{ meta Meta }

func (r identRule) Meta() Meta { return r.meta }

func (r identRule) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	if el.Kind() != syntax.NodeIdent {
		return nil
	}
	return r.meta.Report().WithDiagnostic(el.Span(), el.Text())
}

func stub(name string, code diag.Code, kinds ...syntax.Kind) Rule {
	return identRule{Meta{Name: name, Code: code, Note: name, Explanation: "explains " + name, Kinds: kinds}}
}

func names(rs []Rule) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Meta().Name)
	}
	return out
}

func TestNewMapGroupsByKind(t *testing.T) {
	m := NewMap([]Rule{
		stub("first", 1, syntax.NodeBinOp, syntax.NodeIdent),
		stub("second", 2, syntax.NodeBinOp),
		stub("off", 3, syntax.NodeIdent),
	}, []string{"off"})

	if diff := cmp.Diff([]string{"first", "second"}, names(m.Rules(syntax.NodeBinOp))); diff != "" {
		t.Fatalf("bin op rules (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"first"}, names(m.Rules(syntax.NodeIdent))); diff != "" {
		t.Fatalf("ident rules (-want +got):\n%s", diff)
	}
	require.Empty(t, m.Rules(syntax.NodeList))
	require.Equal(t, 2, m.Len())
	require.Equal(t, []syntax.Kind{syntax.NodeBinOp, syntax.NodeIdent}, m.Kinds())
}

func TestNewMapRejectsBadMetadata(t *testing.T) {
	require.Panics(t, func() {
		NewMap([]Rule{stub("a", 1), stub("a", 2)}, nil)
	}, "duplicate name")
	require.Panics(t, func() {
		NewMap([]Rule{stub("a", 1), stub("b", 1)}, nil)
	}, "duplicate code")
	require.Panics(t, func() {
		NewMap([]Rule{stub("a", diag.CodeSyntax)}, nil)
	}, "syntax code")
	// disabled rules still take part in the uniqueness check
	require.Panics(t, func() {
		NewMap([]Rule{stub("a", 1), stub("a", 2)}, []string{"a"})
	})
}

func TestLintTraversalOrderAndSyntaxReports(t *testing.T) {
	m := NewMap([]Rule{stub("ident", 1, syntax.NodeIdent)}, nil)
	res := Lint(context.Background(), "f (a b", m, nil)

	require.False(t, res.Tree.OK())
	require.GreaterOrEqual(t, len(res.Reports), 4)

	var msgs []string
	for _, r := range res.Reports[:3] {
		require.Equal(t, diag.Code(1), r.Code)
		msgs = append(msgs, r.Diagnostics[0].Message)
	}
	if diff := cmp.Diff([]string{"f", "a", "b"}, msgs); diff != "" {
		t.Fatalf("traversal order (-want +got):\n%s", diff)
	}
	for _, r := range res.Reports[3:] {
		require.Equal(t, diag.CodeSyntax, r.Code)
		require.Equal(t, diag.SyntaxNote, r.Note)
		require.False(t, r.HasSuggestion())
		require.Equal(t, diag.SevError, r.Severity())
	}
	require.Len(t, res.Reports[3:], len(res.Tree.Errors))
}

func TestLintEmptyMap(t *testing.T) {
	res := Lint(context.Background(), "{ a = 1; }", NewMap(nil, nil), nil)
	require.True(t, res.Tree.OK())
	require.Empty(t, res.Reports)
}

func TestVisitStops(t *testing.T) {
	m := NewMap([]Rule{stub("ident", 1, syntax.NodeIdent)}, nil)
	res := Lint(context.Background(), "[ a b c ]", m, nil)
	require.Len(t, res.Reports, 3)

	seen := 0
	Visit(res.Tree, m, nil, func(*diag.Report) bool {
		seen++
		return seen < 2
	})
	require.Equal(t, 2, seen)
}

func TestExplain(t *testing.T) {
	rules := []Rule{stub("a", 1), stub("b", 4)}

	text, err := Explain(rules, 4)
	require.NoError(t, err)
	require.Equal(t, "explains b", text)

	text, err = Explain(rules, diag.CodeSyntax)
	require.NoError(t, err)
	require.Equal(t, SyntaxExplanation, text)

	_, err = Explain(rules, 42)
	require.Error(t, err)
	require.Equal(t, "lint with code `42` not found", err.Error())
	if !errors.Is(err, ErrLintNotFound) {
		t.Fatalf("expected ErrLintNotFound in chain, got %v", err)
	}

	r, ok := ByName(rules, "a")
	require.True(t, ok)
	require.Equal(t, diag.Code(1), r.Meta().Code)
	_, ok = ByName(rules, "zzz")
	require.False(t, ok)
}

func TestParseCode(t *testing.T) {
	for in, want := range map[string]diag.Code{
		"W04": 4,
		"w04": 4,
		"04":  4,
		"4":   4,
		"E00": 0,
		"W23": 23,
	} {
		got, err := ParseCode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "W", "X04", "-1", "W4x"} {
		if _, err := ParseCode(in); err == nil {
			t.Errorf("ParseCode(%q) should fail", in)
		}
	}
}
