package diagfmt

import (
	"bufio"
	"fmt"
	"io"

	"nixlint/internal/diag"
)

// Errfmt writes one line per diagnostic:
//
//	path>line:col:W:code:message
//
// which editors parse with an errorformat of "%f>%l:%c:%t:%n:%m".
func Errfmt(w io.Writer, files []FileReports, opts Opts) error {
	bw := bufio.NewWriter(w)
	for _, fr := range files {
		path := displayPath(fr.File, opts)
		for _, r := range fr.Reports {
			for _, d := range r.Diagnostics {
				start, _ := fr.File.Resolve(d.Span)
				fmt.Fprintf(bw, "%s>%d:%d:%s:%d:%s\n",
					path, start.Line, start.Col, r.Severity().Letter(), uint32(r.Code), diag.OneLine(d.Message))
			}
		}
	}
	return bw.Flush()
}
