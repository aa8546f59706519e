package diagfmt

import (
	"io"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffContext is the number of unchanged lines around each hunk.
const DiffContext = 4

// Diff writes a unified diff between the original and the fixed text.
// Nothing is written when they are equal.
func Diff(w io.Writer, path, before, after string) error {
	if before == after {
		return nil
	}
	return difflib.WriteUnifiedDiff(w, difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " [fixed]",
		Context:  DiffContext,
	})
}
