package ast

import (
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

type Lambda struct{ *syntax.Node }

func AsLambda(n *syntax.Node) (Lambda, bool) {
	return Lambda{n}, cast(n, syntax.NodeLambda)
}

// Param is a NodeIdentParam or a NodePattern.
func (l Lambda) Param() *syntax.Node { return l.NthChildNode(0) }

func (l Lambda) Body() *syntax.Node { return nodeAfter(l.Node, token.Colon) }

// ParamIdent returns the identifier of an `x: ...` lambda.
func (l Lambda) ParamIdent() (Ident, bool) {
	p := l.Param()
	if !cast(p, syntax.NodeIdentParam) {
		return Ident{}, false
	}
	return AsIdent(p.FirstChildNode())
}

// Pattern returns the pattern of a `{ ... }: ...` lambda.
func (l Lambda) Pattern() (Pattern, bool) { return AsPattern(l.Param()) }

type Pattern struct{ *syntax.Node }

func AsPattern(n *syntax.Node) (Pattern, bool) {
	return Pattern{n}, cast(n, syntax.NodePattern)
}

func (p Pattern) Entries() []PatEntry {
	var out []PatEntry
	for _, c := range p.ChildNodes() {
		if e, ok := AsPatEntry(c); ok {
			out = append(out, e)
		}
	}
	return out
}

// Ellipsis reports whether the pattern accepts extra attributes.
func (p Pattern) Ellipsis() bool { return p.FirstToken(token.Ellipsis) != nil }

// Bind returns the `@ name` identifier, on either side of the braces.
func (p Pattern) Bind() (Ident, bool) {
	b := p.FirstChild(syntax.NodePatBind)
	if b == nil {
		return Ident{}, false
	}
	return AsIdent(b.FirstChild(syntax.NodeIdent))
}

type PatEntry struct{ *syntax.Node }

func AsPatEntry(n *syntax.Node) (PatEntry, bool) {
	return PatEntry{n}, cast(n, syntax.NodePatEntry)
}

func (e PatEntry) Name() (Ident, bool) { return AsIdent(e.NthChildNode(0)) }

// Default is the expression after `?`, or nil.
func (e PatEntry) Default() *syntax.Node { return nodeAfter(e.Node, token.Question) }
