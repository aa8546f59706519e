package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"nixlint/internal/diag"
	"nixlint/internal/source"
)

const tabWidth = 4

type palette struct {
	warning, error, gutter, path *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		warning: color.New(color.FgYellow, color.Bold),
		error:   color.New(color.FgRed, color.Bold),
		gutter:  color.New(color.FgHiBlack),
		path:    color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.warning, p.error, p.gutter, p.path} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	if s == diag.SevError {
		return p.error
	}
	return p.warning
}

// Pretty печатает отчёты в рамке, по одной строке исходника на диагностику:
//
//	[W02] Warning: Useless let-in expression
//	   ╭─[a.nix:1:1]
//	   │
//	 1 │ let in x
//	   · ^^^^^^^^ This let-in expression has no entries
//	───╯
func Pretty(w io.Writer, files []FileReports, opts Opts) error {
	p := newPalette(opts.Color)
	for _, fr := range files {
		path := displayPath(fr.File, opts)
		for i := range fr.Reports {
			if err := prettyReport(w, fr.File, path, &fr.Reports[i], p); err != nil {
				return err
			}
		}
	}
	return nil
}

func prettyReport(w io.Writer, file *source.File, path string, r *diag.Report, p palette) error {
	sev := p.severity(r.Severity())
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", sev.Sprintf("[%s] %s:", r.Code, r.Severity()), r.Note)

	gutter := 1
	for _, d := range r.Diagnostics {
		start, _ := file.Resolve(d.Span)
		gutter = max(gutter, len(strconv.FormatUint(uint64(start.Line), 10)))
	}
	pad := strings.Repeat(" ", gutter+2)

	var at source.LineCol
	if len(r.Diagnostics) > 0 {
		at, _ = file.Resolve(r.Diagnostics[0].Span)
	}
	fmt.Fprintf(&b, "%s%s%s%s\n", pad, p.gutter.Sprint("╭─["), p.path.Sprintf("%s:%d:%d", path, at.Line, at.Col), p.gutter.Sprint("]"))
	fmt.Fprintf(&b, "%s%s\n", pad, p.gutter.Sprint("│"))

	for _, d := range r.Diagnostics {
		start, end := file.Resolve(d.Span)
		line := file.GetLine(start.Line)
		lineNo := fmt.Sprintf("%*d", gutter, start.Line)
		fmt.Fprintf(&b, " %s %s %s\n", p.gutter.Sprint(lineNo), p.gutter.Sprint("│"), expandTabs(line))

		from := int(start.Col) - 1
		to := len(line)
		if end.Line == start.Line {
			to = int(end.Col) - 1
		}
		from = min(max(from, 0), len(line))
		to = min(max(to, from), len(line))
		indent := runewidth.StringWidth(expandTabs(line[:from]))
		width := max(runewidth.StringWidth(expandTabs(line[from:to])), 1)
		fmt.Fprintf(&b, "%s%s %s%s %s\n", pad, p.gutter.Sprint("·"),
			strings.Repeat(" ", indent), sev.Sprint(strings.Repeat("^", width)), d.Message)
	}
	fmt.Fprintf(&b, "%s\n\n", p.gutter.Sprint(strings.Repeat("─", gutter+2)+"╯"))
	_, err := io.WriteString(w, b.String())
	return err
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
