package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders the subtree in an indented debug form:
//
//	NODE_IDENT@0..1
//	  TOKEN_IDENT@0..1 "a"
func Dump(e Element) string {
	var sb strings.Builder
	depth := map[Element]int{}
	Walk(e, func(el Element) bool {
		d := 0
		if p := el.Parent(); p != nil {
			if pd, ok := depth[p]; ok {
				d = pd + 1
			}
		}
		depth[el] = d
		sp := el.Span()
		fmt.Fprintf(&sb, "%s%s@%d..%d", strings.Repeat("  ", d), el.Kind(), sp.Start, sp.End)
		if _, ok := el.(*Token); ok {
			sb.WriteString(" " + strconv.Quote(el.Text()))
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
