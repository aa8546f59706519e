package diagfmt

import (
	"encoding/json"
	"io"

	"nixlint/internal/diag"
	"nixlint/internal/source"
)

// PositionJSON is 1-based; Column counts bytes.
type PositionJSON struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// RangeJSON: диапазон в файле
type RangeJSON struct {
	From PositionJSON `json:"from"`
	To   PositionJSON `json:"to"`
}

// SuggestionJSON is the replacement text for a range.
type SuggestionJSON struct {
	At  RangeJSON `json:"at"`
	Fix string    `json:"fix"`
}

type DiagnosticJSON struct {
	At         RangeJSON       `json:"at"`
	Message    string          `json:"message"`
	Suggestion *SuggestionJSON `json:"suggestion"`
}

type ReportJSON struct {
	Note        string           `json:"note"`
	Code        uint32           `json:"code"`
	Severity    string           `json:"severity"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// FileJSON is one object of json output.
type FileJSON struct {
	File   string       `json:"file"`
	Report []ReportJSON `json:"report"`
}

func makeRange(f *source.File, sp source.Span) RangeJSON {
	start, end := f.Resolve(sp)
	return RangeJSON{
		From: PositionJSON{Line: start.Line, Column: start.Col},
		To:   PositionJSON{Line: end.Line, Column: end.Col},
	}
}

// BuildFile формирует структуру JSON-вывода без сериализации.
func BuildFile(fr FileReports, opts Opts) FileJSON {
	out := FileJSON{File: displayPath(fr.File, opts), Report: make([]ReportJSON, 0, len(fr.Reports))}
	for _, r := range fr.Reports {
		out.Report = append(out.Report, buildReport(fr.File, r))
	}
	return out
}

func buildReport(f *source.File, r diag.Report) ReportJSON {
	rj := ReportJSON{
		Note:        r.Note,
		Code:        uint32(r.Code),
		Severity:    r.Severity().String(),
		Diagnostics: make([]DiagnosticJSON, 0, len(r.Diagnostics)),
	}
	for _, d := range r.Diagnostics {
		dj := DiagnosticJSON{At: makeRange(f, d.Span), Message: d.Message}
		if d.Suggestion != nil {
			dj.Suggestion = &SuggestionJSON{
				At:  makeRange(f, d.Suggestion.Span),
				Fix: d.Suggestion.Text(),
			}
		}
		rj.Diagnostics = append(rj.Diagnostics, dj)
	}
	return rj
}

// JSON writes one indented object per file.
func JSON(w io.Writer, files []FileReports, opts Opts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	for _, fr := range files {
		if err := enc.Encode(BuildFile(fr, opts)); err != nil {
			return err
		}
	}
	return nil
}

// Write dispatches on format.
func Write(w io.Writer, format Format, files []FileReports, opts Opts) error {
	switch format {
	case FormatErrfmt:
		return Errfmt(w, files, opts)
	case FormatJSON:
		return JSON(w, files, opts)
	default:
		return Pretty(w, files, opts)
	}
}
