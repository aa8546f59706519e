package rules

import (
	"strings"

	"nixlint/internal/ast"
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

func asNode(el syntax.Element) (*syntax.Node, bool) {
	n, ok := el.(*syntax.Node)
	return n, ok && n != nil
}

// mentionsIdent reports whether any identifier under n is named name.
// Attribute names count too, so the answer errs on the side of "yes".
func mentionsIdent(n *syntax.Node, name string) bool {
	found := false
	syntax.Walk(n, func(el syntax.Element) bool {
		if found {
			return false
		}
		if c, ok := asNode(el); ok && ast.IsIdentNamed(c, name) {
			found = true
			return false
		}
		return true
	})
	return found
}

// bindingNames lists the first attribute of every entry and every inherited
// name of a binding list.
func bindingNames(b ast.Bindings) []string {
	var out []string
	for _, kv := range b.Entries() {
		path, ok := kv.Attrpath()
		if !ok {
			continue
		}
		attrs := path.Attrs()
		if len(attrs) == 0 {
			continue
		}
		if id, ok := ast.AsIdent(attrs[0]); ok {
			out = append(out, id.Name())
		}
	}
	for _, inh := range b.Inherits() {
		for _, a := range inh.Attrs() {
			if id, ok := ast.AsIdent(a); ok {
				out = append(out, id.Name())
			}
		}
	}
	return out
}

// tighterThanEquality is true for binary operators that bind at least as
// tightly as `==`.
func tighterThanEquality(op token.Kind) bool {
	switch op {
	case token.Equal, token.NotEqual,
		token.Less, token.LessOrEq, token.More, token.MoreOrEq,
		token.Update, token.Add, token.Sub, token.Mul, token.Div, token.Concat:
		return true
	}
	return false
}

// selectsLast matches `prefix.name` without an `or` default and returns the
// prefix text.
func selectsLast(n *syntax.Node, name string) (string, bool) {
	sel, ok := ast.AsSelect(n)
	if !ok || sel.Default() != nil {
		return "", false
	}
	path, ok := sel.Attrpath()
	if !ok {
		return "", false
	}
	attrs := path.Attrs()
	if len(attrs) == 0 || !ast.IsIdentNamed(attrs[len(attrs)-1], name) {
		return "", false
	}
	last := attrs[len(attrs)-1]
	prefix := n.Tree().Text()[n.Span().Start:last.Span().Start]
	prefix = strings.TrimSpace(prefix)
	prefix = strings.TrimSpace(strings.TrimSuffix(prefix, "."))
	return prefix, prefix != ""
}

func isWordByte(c byte) bool {
	return c == '_' || c == '\'' || c == '-' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// gluesToNeighbours reports whether replacing n by text would merge it with
// an adjacent token, as in `f(a)` or `x:(y)`.
func gluesToNeighbours(n *syntax.Node, text string) bool {
	if text == "" {
		return false
	}
	src, sp := n.Tree().Text(), n.Span()
	if sp.Start > 0 {
		before := src[sp.Start-1]
		if isWordByte(before) && isWordByte(text[0]) {
			return true
		}
		if before == ':' && !strings.ContainsRune("\"[{( \t\n", rune(text[0])) {
			return true
		}
	}
	if int(sp.End) < len(src) && isWordByte(text[len(text)-1]) && isWordByte(src[sp.End]) {
		return true
	}
	return false
}
