// Package fix applies lint suggestions: one at a position, or all of them
// until the text stops changing.
package fix

import (
	"context"
	"slices"
	"strconv"

	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/parser"
	"nixlint/internal/session"
	"nixlint/internal/source"
	"nixlint/internal/syntax"
	"nixlint/internal/trace"
)

// AllResult is the fixpoint of repeated fix rounds.
type AllResult struct {
	Source string
	Fixed  []diag.Fixed
	Rounds int
}

// Changed reports whether at least one suggestion was applied.
func (r AllResult) Changed() bool { return len(r.Fixed) > 0 }

type candidate struct {
	report diag.Report
	span   source.Span
	order  int
}

// All applies every non-overlapping suggestion, reparses and repeats until a
// round produces nothing. The input must parse without errors.
func All(ctx context.Context, text string, m *lint.Map, sess *session.Info) (AllResult, error) {
	res := AllResult{Source: text}
	tree := parser.Parse(text)
	if !tree.OK() {
		return res, ErrSyntax
	}

	tr := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		cands := gatherCandidates(tree, m, sess)
		if len(cands) == 0 {
			return res, nil
		}
		res.Rounds++
		span := trace.Begin(tr, trace.ScopePass, "fix round "+strconv.Itoa(res.Rounds), parent)

		sortCandidates(cands)
		selected := selectCandidates(cands)
		out, err := applyCandidates(res.Source, selected)
		if err != nil {
			span.End("error")
			return res, err
		}

		next := parser.Parse(out)
		if !next.OK() {
			span.End("broken")
			codes := make([]diag.Code, 0, len(selected))
			for _, c := range selected {
				codes = append(codes, c.report.Code)
			}
			return res, &BrokenFixError{Codes: codes, Round: res.Rounds, Errors: next.Errors}
		}

		for _, c := range selected {
			res.Fixed = append(res.Fixed, diag.Fixed{Span: c.span, Code: c.report.Code})
		}
		res.Source = out
		tree = next
		span.WithExtra("applied", strconv.Itoa(len(selected))).End("")
	}
}

// gatherCandidates keeps the reports that carry a suggestion, in traversal
// order.
func gatherCandidates(tree *syntax.Tree, m *lint.Map, sess *session.Info) []candidate {
	var cands []candidate
	lint.Visit(tree, m, sess, func(r *diag.Report) bool {
		sp, ok := r.SuggestionSpan()
		if !ok {
			return true
		}
		cands = append(cands, candidate{report: *r, span: sp, order: len(cands)})
		return true
	})
	return cands
}

// sortCandidates orders by span start, shorter spans first, then code and
// traversal order.
func sortCandidates(cands []candidate) {
	slices.SortStableFunc(cands, func(a, b candidate) int {
		switch {
		case a.span.Start != b.span.Start:
			return cmpU32(a.span.Start, b.span.Start)
		case a.span.End != b.span.End:
			return cmpU32(a.span.End, b.span.End)
		case a.report.Code != b.report.Code:
			return cmpU32(uint32(a.report.Code), uint32(b.report.Code))
		}
		return a.order - b.order
	})
}

func cmpU32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// selectCandidates greedily keeps sorted candidates that start at or after
// the end of the last kept one.
func selectCandidates(sorted []candidate) []candidate {
	var selected []candidate
	for _, c := range sorted {
		if len(selected) > 0 && spansConflict(selected[len(selected)-1].span, c.span) {
			continue
		}
		selected = append(selected, c)
	}
	return selected
}

// spansConflict reports whether b starts before a ends. Spans are half-open
// and b never starts before a.
func spansConflict(a, b source.Span) bool {
	return b.Start < a.End
}

// applyCandidates splices the selected reports back to front so that earlier
// offsets stay valid.
func applyCandidates(src string, selected []candidate) (string, error) {
	var err error
	for i := len(selected) - 1; i >= 0; i-- {
		if src, err = selected[i].report.Apply(src); err != nil {
			return src, err
		}
	}
	return src, nil
}
