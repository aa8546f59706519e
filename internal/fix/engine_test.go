package fix

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/lint/rules"
	"nixlint/internal/session"
	"nixlint/internal/source"
	"nixlint/internal/syntax"
)

func defaultMap() *lint.Map { return rules.Default(nil) }

func codes(fixed []diag.Fixed) []diag.Code {
	out := make([]diag.Code, 0, len(fixed))
	for _, f := range fixed {
		out = append(out, f.Code)
	}
	return out
}

func TestAllScenarios(t *testing.T) {
	tests := []struct {
		name    string
		version string
		in      string
		want    string
		codes   []diag.Code
	}{
		{
			name:    "negated equality",
			version: "2.4",
			in:      "!(a == b)",
			want:    "a != b",
			codes:   []diag.Code{18},
		},
		{
			name:    "empty list concat",
			version: "2.4",
			in:      "[] ++ something",
			want:    "something",
			codes:   []diag.Code{23},
		},
		{
			name:    "long root pattern before groupBy builtin",
			version: "2.4",
			in:      "{ lib, a, b, c, d, e, f }: lib.groupBy f a",
			want:    "{\n  lib,\n  a,\n  b,\n  c,\n  d,\n  e,\n  f,\n}: lib.groupBy f a",
			codes:   []diag.Code{21},
		},
		{
			name:    "long root pattern with groupBy builtin",
			version: "2.5",
			in:      "{ lib, a, b, c, d, e, f }: lib.groupBy f a",
			want:    "{\n  lib,\n  a,\n  b,\n  c,\n  d,\n  e,\n  f,\n}: builtins.groupBy f a",
			codes:   []diag.Code{21, 15},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := session.FromString(tt.version)
			require.NoError(t, err)
			res, err := All(context.Background(), tt.in, defaultMap(), sess)
			require.NoError(t, err)
			if res.Source != tt.want {
				t.Fatalf("source mismatch:\n got: %q\nwant: %q", res.Source, tt.want)
			}
			if diff := cmp.Diff(tt.codes, codes(res.Fixed)); diff != "" {
				t.Fatalf("fixed codes (-want +got):\n%s", diff)
			}
			require.True(t, res.Changed())
		})
	}
}

func TestAllIsIdempotent(t *testing.T) {
	inputs := []string{
		"!(a == b)",
		"let in let in (x)",
		"{ a = a; b = c.b; d = (e); }",
		"let { body = x; x = 1; }",
		"map (x: f x) [ (a) ]",
		"if s ? p then s.p else d + 1",
		"x == true && isNull y",
		"{ ... } @ inputs: inputs",
	}
	sess := session.New(session.Default)
	for _, in := range inputs {
		first, err := All(context.Background(), in, defaultMap(), sess)
		require.NoError(t, err, in)
		second, err := All(context.Background(), first.Source, defaultMap(), sess)
		require.NoError(t, err, in)
		if second.Changed() {
			t.Errorf("%q: second pass changed %q into %q", in, first.Source, second.Source)
		}
	}
}

func TestAllRejectsSyntaxErrors(t *testing.T) {
	in := "{ a = !(x == y); b = ; }"
	res, err := All(context.Background(), in, defaultMap(), nil)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
	require.Equal(t, in, res.Source)
	require.False(t, res.Changed())
}

func TestAllNoReports(t *testing.T) {
	res, err := All(context.Background(), "{ a = 1; }", defaultMap(), nil)
	require.NoError(t, err)
	require.Equal(t, "{ a = 1; }", res.Source)
	require.Zero(t, res.Rounds)
}

func TestAllHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := All(ctx, "[] ++ x", defaultMap(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

// dropRHS deletes the right operand of every binary operation, which never
// parses.
type dropRHS struct{}

func (dropRHS) Meta() lint.Meta {
	return lint.Meta{Name: "drop_rhs", Code: 90, Note: "drop", Kinds: []syntax.Kind{syntax.NodeBinOp}}
}

func (d dropRHS) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	bin, ok := ast.AsBinOp(el.(*syntax.Node))
	if !ok || bin.RHS() == nil {
		return nil
	}
	return d.Meta().Report().WithSuggestion(el.Span(), "drop", diag.Deletion(bin.RHS().Span()))
}

func TestAllReportsBrokenFix(t *testing.T) {
	m := lint.NewMap([]lint.Rule{dropRHS{}}, nil)
	_, err := All(context.Background(), "a + b", m, nil)
	require.ErrorIs(t, err, ErrInternal)

	var broken *BrokenFixError
	require.ErrorAs(t, err, &broken)
	require.Equal(t, 1, broken.Round)
	require.Equal(t, []diag.Code{90}, broken.Codes)
	require.NotEmpty(t, broken.Errors)
}

func TestSelectCandidatesNeverOverlap(t *testing.T) {
	span := func(s, e uint32) source.Span { return source.Span{Start: s, End: e} }
	cands := []candidate{
		{span: span(10, 20), report: diag.Report{Code: 2}, order: 0},
		{span: span(0, 30), report: diag.Report{Code: 1}, order: 1},
		{span: span(0, 5), report: diag.Report{Code: 3}, order: 2},
		{span: span(5, 12), report: diag.Report{Code: 4}, order: 3},
		{span: span(20, 25), report: diag.Report{Code: 5}, order: 4},
	}
	sortCandidates(cands)
	got := selectCandidates(cands)

	var picked []diag.Code
	for i, c := range got {
		picked = append(picked, c.report.Code)
		if i > 0 && c.span.Start < got[i-1].span.End {
			t.Fatalf("selected spans overlap: %v then %v", got[i-1].span, c.span)
		}
	}
	// [0,5) wins over [0,30) by length, [5,12) follows, [10,20) overlaps it
	if diff := cmp.Diff([]diag.Code{3, 4, 5}, picked); diff != "" {
		t.Fatalf("selection (-want +got):\n%s", diff)
	}
}

func TestFasterGroupByVersionGate(t *testing.T) {
	const in = "lib.groupBy f xs"
	for _, tt := range []struct {
		version string
		fires   bool
	}{
		{"2.4", false},
		{"2.4.1", false},
		{"2.4pre20211006_53e4794", false},
		{"2.5.0", true},
		{"2.6.0", true},
	} {
		sess, err := session.FromString(tt.version)
		require.NoError(t, err)
		res, err := All(context.Background(), in, defaultMap(), sess)
		require.NoError(t, err)
		if res.Changed() != tt.fires {
			t.Errorf("nix %s: changed=%v, want %v (%q)", tt.version, res.Changed(), tt.fires, res.Source)
		}
		if tt.fires && res.Source != "builtins.groupBy f xs" {
			t.Errorf("nix %s: got %q", tt.version, res.Source)
		}
	}
}
