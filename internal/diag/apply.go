package diag

import (
	"fmt"
	"slices"
	"strings"

	"nixlint/internal/source"
)

// Splice replaces sp in src with text.
func Splice(src string, sp source.Span, text string) (string, error) {
	if sp.Start > sp.End || int(sp.End) > len(src) {
		return src, fmt.Errorf("span %s outside text of length %d", sp, len(src))
	}
	var sb strings.Builder
	sb.Grow(len(src) - int(sp.Len()) + len(text))
	sb.WriteString(src[:sp.Start])
	sb.WriteString(text)
	sb.WriteString(src[sp.End:])
	return sb.String(), nil
}

// Apply splices one suggestion into src.
func (s *Suggestion) Apply(src string) (string, error) {
	return Splice(src, s.Span, s.Text())
}

// Apply splices every suggestion of the report into src, back to front, so
// earlier offsets stay valid.
func (r *Report) Apply(src string) (string, error) {
	sugs := r.Suggestions()
	slices.SortStableFunc(sugs, func(a, b *Suggestion) int {
		return int(b.Span.Start) - int(a.Span.Start)
	})
	var err error
	for _, s := range sugs {
		if src, err = s.Apply(src); err != nil {
			return src, fmt.Errorf("%s: %w", r.Code, err)
		}
	}
	return src, nil
}
