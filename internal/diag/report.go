package diag

import (
	"nixlint/internal/source"
	"nixlint/internal/syntax"
)

// Suggestion replaces Span with the text of Fix; nil Fix deletes the span.
type Suggestion struct {
	Span source.Span
	Fix  syntax.Element
}

// NewSuggestion builds a replacement suggestion.
func NewSuggestion(sp source.Span, fix syntax.Element) *Suggestion {
	return &Suggestion{Span: sp, Fix: fix}
}

// Deletion builds a suggestion that removes sp.
func Deletion(sp source.Span) *Suggestion {
	return &Suggestion{Span: sp}
}

// Text is the replacement text.
func (s *Suggestion) Text() string {
	if s.Fix == nil {
		return ""
	}
	return s.Fix.Text()
}

type Diagnostic struct {
	Span       source.Span
	Message    string
	Suggestion *Suggestion
}

// Report is one rule firing.
type Report struct {
	Note        string
	Code        Code
	Diagnostics []Diagnostic
}

// Fixed records an applied report.
type Fixed struct {
	Span source.Span
	Code Code
}

// NewReport starts an empty report for a rule.
func NewReport(note string, code Code) *Report {
	return &Report{Note: note, Code: code}
}

// WithDiagnostic appends a diagnostic without a suggestion.
func (r *Report) WithDiagnostic(sp source.Span, msg string) *Report {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Span: sp, Message: msg})
	return r
}

// WithSuggestion appends a diagnostic carrying a fix.
func (r *Report) WithSuggestion(sp source.Span, msg string, s *Suggestion) *Report {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Span: sp, Message: msg, Suggestion: s})
	return r
}

// Severity of the report, derived from the code.
func (r *Report) Severity() Severity {
	return r.Code.Severity()
}

// Span covers every diagnostic of the report.
func (r *Report) Span() source.Span {
	var out source.Span
	for i, d := range r.Diagnostics {
		if i == 0 {
			out = d.Span
			continue
		}
		out = out.Cover(d.Span)
	}
	return out
}

// SuggestionSpan covers every suggestion of the report; ok is false when the
// report has none.
func (r *Report) SuggestionSpan() (sp source.Span, ok bool) {
	for _, d := range r.Diagnostics {
		if d.Suggestion == nil {
			continue
		}
		if !ok {
			sp, ok = d.Suggestion.Span, true
			continue
		}
		sp = sp.Cover(d.Suggestion.Span)
	}
	return sp, ok
}

// HasSuggestion reports whether any diagnostic carries a fix.
func (r *Report) HasSuggestion() bool {
	_, ok := r.SuggestionSpan()
	return ok
}

// Suggestions returns the fixes of the report in diagnostic order.
func (r *Report) Suggestions() []*Suggestion {
	var out []*Suggestion
	for _, d := range r.Diagnostics {
		if d.Suggestion != nil {
			out = append(out, d.Suggestion)
		}
	}
	return out
}
