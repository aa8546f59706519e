// Package lint holds the rule contract, the kind-indexed rule registry and
// the lint driver that walks a tree and dispatches to rules.
package lint

import (
	"nixlint/internal/diag"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
)

// Meta describes a rule. Names and codes are unique across the catalogue;
// codes are never reused.
type Meta struct {
	Name        string
	Code        diag.Code
	Note        string
	Explanation string
	// Kinds are the element kinds the rule is dispatched on. A kind match is
	// necessary, not sufficient.
	Kinds []syntax.Kind
}

// Report starts an empty report carrying the rule's note and code.
func (m Meta) Report() *diag.Report {
	return diag.NewReport(m.Note, m.Code)
}

// Rule is a pure check over one element. Validate returns nil when the rule
// does not fire.
type Rule interface {
	Meta() Meta
	Validate(el syntax.Element, sess *session.Info) *diag.Report
}
