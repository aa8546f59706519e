package fix

import (
	"context"
	"strings"

	"fortio.org/safecast"

	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/parser"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
)

// SingleResult is the text after one suggestion was applied.
type SingleResult struct {
	Source string
	Fixed  diag.Fixed
}

// Single applies the suggestion of the innermost report covering the 1-based
// position line:col. The text may contain syntax errors; rules see the
// tolerant tree.
func Single(ctx context.Context, line, col int, text string, m *lint.Map, sess *session.Info) (SingleResult, error) {
	if err := ctx.Err(); err != nil {
		return SingleResult{}, err
	}
	off, err := Offset(text, line, col)
	if err != nil {
		return SingleResult{}, err
	}

	tree := parser.Parse(text)
	rep, sug := findSuggestion(tree, off, m, sess)
	if rep == nil {
		return SingleResult{}, ErrNoOp
	}
	out, err := sug.Apply(text)
	if err != nil {
		return SingleResult{}, err
	}
	return SingleResult{
		Source: out,
		Fixed:  diag.Fixed{Span: sug.Span, Code: rep.Code},
	}, nil
}

// Offset converts a 1-based line and column into a byte offset inside text.
func Offset(text string, line, col int) (uint32, error) {
	if line < 1 || col < 1 {
		return 0, &OutOfBoundsError{Line: line, Col: col}
	}
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		return 0, &ConversionError{Value: line}
	}
	c, err := safecast.Conv[uint32](col)
	if err != nil {
		return 0, &ConversionError{Value: col}
	}

	var start uint64
	rest := text
	for i := uint32(1); i < l; i++ {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return 0, &OutOfBoundsError{Line: line, Col: col}
		}
		start += uint64(nl) + 1
		rest = rest[nl+1:]
	}
	off := start + uint64(c) - 1
	if off >= uint64(len(text)) {
		return 0, &OutOfBoundsError{Line: line, Col: col}
	}
	return safecast.MustConv[uint32](off), nil
}

// findSuggestion walks from the token at off outwards; the first report with
// a suggestion containing off wins.
func findSuggestion(tree *syntax.Tree, off uint32, m *lint.Map, sess *session.Info) (*diag.Report, *diag.Suggestion) {
	tok := tree.Root().TokenAt(off)
	if tok == nil {
		return nil, nil
	}
	candidates := []syntax.Element{tok}
	for _, a := range syntax.Ancestors(tok) {
		candidates = append(candidates, a)
	}
	for _, el := range candidates {
		for _, r := range m.Rules(el.Kind()) {
			rep := r.Validate(el, sess)
			if rep == nil {
				continue
			}
			for _, s := range rep.Suggestions() {
				if s.Span.Start <= off && off < s.Span.End {
					return rep, s
				}
			}
		}
	}
	return nil, nil
}
