package lint

import (
	"fmt"
	"slices"

	"nixlint/internal/diag"
	"nixlint/internal/syntax"
)

// Map groups rules by the kinds they match. It is built once per run and
// read-only afterwards, so it can be shared between goroutines.
type Map struct {
	byKind map[syntax.Kind][]Rule
	rules  []Rule
}

// NewMap registers rules in input order, skipping those whose name is in
// disabled. Duplicate names or codes are a programming error and panic.
func NewMap(rules []Rule, disabled []string) *Map {
	m := &Map{byKind: make(map[syntax.Kind][]Rule)}
	names := make(map[string]struct{}, len(rules))
	codes := make(map[diag.Code]string, len(rules))
	for _, r := range rules {
		meta := r.Meta()
		if _, dup := names[meta.Name]; dup {
			panic(fmt.Sprintf("lint: duplicate rule name %q", meta.Name))
		}
		if other, dup := codes[meta.Code]; dup {
			panic(fmt.Sprintf("lint: rules %q and %q share code %s", other, meta.Name, meta.Code))
		}
		if meta.Code == diag.CodeSyntax {
			panic(fmt.Sprintf("lint: rule %q uses the reserved syntax code", meta.Name))
		}
		names[meta.Name] = struct{}{}
		codes[meta.Code] = meta.Name
		if slices.Contains(disabled, meta.Name) {
			continue
		}
		m.rules = append(m.rules, r)
		for _, k := range meta.Kinds {
			m.byKind[k] = append(m.byKind[k], r)
		}
	}
	return m
}

// Rules returns the rules registered for kind in registration order.
func (m *Map) Rules(kind syntax.Kind) []Rule {
	return m.byKind[kind]
}

// All returns every enabled rule in registration order.
func (m *Map) All() []Rule {
	return m.rules
}

// Len is the number of enabled rules.
func (m *Map) Len() int {
	return len(m.rules)
}

// Kinds returns the kinds with at least one rule, ascending.
func (m *Map) Kinds() []syntax.Kind {
	out := make([]syntax.Kind, 0, len(m.byKind))
	for k := range m.byKind {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
