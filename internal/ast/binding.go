package ast

import (
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

// Bindings is shared by let-in, legacy let and attribute sets.
type Bindings struct{ *syntax.Node }

// Entries returns `a.b = v;` bindings in source order.
func (b Bindings) Entries() []AttrpathValue {
	var out []AttrpathValue
	for _, c := range b.ChildNodes() {
		if kv, ok := AsAttrpathValue(c); ok {
			out = append(out, kv)
		}
	}
	return out
}

// Inherits returns `inherit` statements in source order.
func (b Bindings) Inherits() []Inherit {
	var out []Inherit
	for _, c := range b.ChildNodes() {
		if in, ok := AsInherit(c); ok {
			out = append(out, in)
		}
	}
	return out
}

// All returns both kinds of bindings in source order.
func (b Bindings) All() []*syntax.Node {
	var out []*syntax.Node
	for _, c := range b.ChildNodes() {
		if c.Kind() == syntax.NodeAttrpathValue || c.Kind() == syntax.NodeInherit {
			out = append(out, c)
		}
	}
	return out
}

type LetIn struct{ Bindings }

func AsLetIn(n *syntax.Node) (LetIn, bool) {
	return LetIn{Bindings{n}}, cast(n, syntax.NodeLetIn)
}

func (l LetIn) Body() *syntax.Node { return nodeAfter(l.Node, token.KwIn) }

// InToken is the `in` keyword.
func (l LetIn) InToken() *syntax.Token { return l.FirstToken(token.KwIn) }

// LetToken is the `let` keyword.
func (l LetIn) LetToken() *syntax.Token { return l.FirstToken(token.KwLet) }

type LegacyLet struct{ Bindings }

func AsLegacyLet(n *syntax.Node) (LegacyLet, bool) {
	return LegacyLet{Bindings{n}}, cast(n, syntax.NodeLegacyLet)
}

type AttrSet struct{ Bindings }

func AsAttrSet(n *syntax.Node) (AttrSet, bool) {
	return AttrSet{Bindings{n}}, cast(n, syntax.NodeAttrSet)
}

// Rec reports whether the set is recursive.
func (a AttrSet) Rec() bool { return a.FirstToken(token.KwRec) != nil }

type AttrpathValue struct{ *syntax.Node }

func AsAttrpathValue(n *syntax.Node) (AttrpathValue, bool) {
	return AttrpathValue{n}, cast(n, syntax.NodeAttrpathValue)
}

func (kv AttrpathValue) Attrpath() (Attrpath, bool) { return AsAttrpath(kv.NthChildNode(0)) }

func (kv AttrpathValue) Value() *syntax.Node { return nodeAfter(kv.Node, token.Assign) }

// Key returns the single identifier of a one-component attrpath.
func (kv AttrpathValue) Key() (Ident, bool) {
	path, ok := kv.Attrpath()
	if !ok {
		return Ident{}, false
	}
	attrs := path.Attrs()
	if len(attrs) != 1 {
		return Ident{}, false
	}
	return AsIdent(attrs[0])
}

type Attrpath struct{ *syntax.Node }

func AsAttrpath(n *syntax.Node) (Attrpath, bool) {
	return Attrpath{n}, cast(n, syntax.NodeAttrpath)
}

// Attrs returns the components: Ident, String or Dynamic nodes.
func (p Attrpath) Attrs() []*syntax.Node { return p.ChildNodes() }

type Inherit struct{ *syntax.Node }

func AsInherit(n *syntax.Node) (Inherit, bool) {
	return Inherit{n}, cast(n, syntax.NodeInherit)
}

// From is the `(expr)` source, or nil.
func (i Inherit) From() *syntax.Node { return i.FirstChild(syntax.NodeInheritFrom) }

// Attrs returns the inherited names.
func (i Inherit) Attrs() []*syntax.Node {
	var out []*syntax.Node
	for _, c := range i.ChildNodes() {
		if c.Kind() != syntax.NodeInheritFrom {
			out = append(out, c)
		}
	}
	return out
}
