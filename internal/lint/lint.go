package lint

import (
	"context"
	"strconv"

	"nixlint/internal/diag"
	"nixlint/internal/parser"
	"nixlint/internal/session"
	"nixlint/internal/source"
	"nixlint/internal/syntax"
	"nixlint/internal/trace"
)

// Result is the outcome of linting one text.
type Result struct {
	Tree    *syntax.Tree
	Reports []diag.Report
}

// Lint parses text with the tolerant parser and runs every rule in m over
// the tree. It never fails: syntax errors become code-0 reports appended
// after the rule reports.
func Lint(ctx context.Context, text string, m *Map, sess *session.Info) Result {
	return LintFile(ctx, &source.File{Content: []byte(text)}, m, sess)
}

// LintFile is Lint over a file from a FileSet, so report spans carry its ID.
func LintFile(ctx context.Context, file *source.File, m *Map, sess *session.Info) Result {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeFile, "lint "+file.Path, trace.CurrentSpan(ctx).SpanID)

	tree := parser.ParseFile(file, parser.Options{})
	reports := LintTree(tree, m, sess)

	span.WithExtra("reports", strconv.Itoa(len(reports))).End("")
	return Result{Tree: tree, Reports: reports}
}

// LintTree runs the rules over an existing tree; reports keep preorder
// traversal order, then one report per parse error.
func LintTree(tree *syntax.Tree, m *Map, sess *session.Info) []diag.Report {
	var reports []diag.Report
	Visit(tree, m, sess, func(r *diag.Report) bool {
		reports = append(reports, *r)
		return true
	})
	for _, pe := range tree.Errors {
		reports = append(reports, SyntaxReport(pe))
	}
	return reports
}

// Visit walks tree in preorder, nodes and tokens alike, and calls fn for
// every report in dispatch order. Returning false stops the walk.
func Visit(tree *syntax.Tree, m *Map, sess *session.Info, fn func(*diag.Report) bool) {
	stop := false
	syntax.Walk(tree.Root(), func(el syntax.Element) bool {
		if stop {
			return false
		}
		for _, r := range m.Rules(el.Kind()) {
			rep := r.Validate(el, sess)
			if rep == nil {
				continue
			}
			if !fn(rep) {
				stop = true
				return false
			}
		}
		return true
	})
}

// SyntaxReport turns a parse error into a code-0 report without suggestion.
func SyntaxReport(pe syntax.ParseError) diag.Report {
	return *diag.NewReport(diag.SyntaxNote, diag.CodeSyntax).WithDiagnostic(pe.Span, pe.Message)
}
