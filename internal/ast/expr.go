package ast

import (
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

type Ident struct{ *syntax.Node }

func AsIdent(n *syntax.Node) (Ident, bool) {
	return Ident{n}, cast(n, syntax.NodeIdent)
}

// Name is the identifier text.
func (i Ident) Name() string {
	if ts := i.Tokens(); len(ts) > 0 {
		return ts[0].Text()
	}
	return ""
}

// IsIdentNamed reports whether n is the identifier name.
func IsIdentNamed(n *syntax.Node, name string) bool {
	id, ok := AsIdent(n)
	return ok && id.Name() == name
}

type Literal struct{ *syntax.Node }

func AsLiteral(n *syntax.Node) (Literal, bool) {
	return Literal{n}, cast(n, syntax.NodeLiteral)
}

// Token is the integer, float or URI token.
func (l Literal) Token() *syntax.Token {
	if ts := l.Tokens(); len(ts) > 0 {
		return ts[0]
	}
	return nil
}

type BinOp struct{ *syntax.Node }

func AsBinOp(n *syntax.Node) (BinOp, bool) {
	return BinOp{n}, cast(n, syntax.NodeBinOp)
}

func (b BinOp) LHS() *syntax.Node { return b.NthChildNode(0) }
func (b BinOp) RHS() *syntax.Node { return b.NthChildNode(1) }

// Operator returns the operator token kind, or token.Invalid.
func (b BinOp) Operator() token.Kind {
	for _, t := range b.Tokens() {
		if t.TokenKind().IsBinaryOperator() {
			return t.TokenKind()
		}
	}
	return token.Invalid
}

type UnaryOp struct{ *syntax.Node }

func AsUnaryOp(n *syntax.Node) (UnaryOp, bool) {
	return UnaryOp{n}, cast(n, syntax.NodeUnaryOp)
}

// Operator is token.Invert or token.Sub.
func (u UnaryOp) Operator() token.Kind {
	if ts := u.Tokens(); len(ts) > 0 {
		return ts[0].TokenKind()
	}
	return token.Invalid
}

func (u UnaryOp) Value() *syntax.Node { return u.FirstChildNode() }

type Paren struct{ *syntax.Node }

func AsParen(n *syntax.Node) (Paren, bool) {
	return Paren{n}, cast(n, syntax.NodeParen)
}

func (p Paren) Inner() *syntax.Node { return p.FirstChildNode() }

type Apply struct{ *syntax.Node }

func AsApply(n *syntax.Node) (Apply, bool) {
	return Apply{n}, cast(n, syntax.NodeApply)
}

// Func is the applied expression, Arg its argument.
func (a Apply) Func() *syntax.Node { return a.NthChildNode(0) }
func (a Apply) Arg() *syntax.Node  { return a.NthChildNode(1) }

type Select struct{ *syntax.Node }

func AsSelect(n *syntax.Node) (Select, bool) {
	return Select{n}, cast(n, syntax.NodeSelect)
}

func (s Select) Set() *syntax.Node { return s.NthChildNode(0) }

func (s Select) Attrpath() (Attrpath, bool) { return AsAttrpath(s.NthChildNode(1)) }

// Default is the expression after `or`, or nil.
func (s Select) Default() *syntax.Node { return nodeAfter(s.Node, token.KwOr) }

type HasAttr struct{ *syntax.Node }

func AsHasAttr(n *syntax.Node) (HasAttr, bool) {
	return HasAttr{n}, cast(n, syntax.NodeHasAttr)
}

func (h HasAttr) Set() *syntax.Node { return h.NthChildNode(0) }

func (h HasAttr) Attrpath() (Attrpath, bool) { return AsAttrpath(h.NthChildNode(1)) }

type IfElse struct{ *syntax.Node }

func AsIfElse(n *syntax.Node) (IfElse, bool) {
	return IfElse{n}, cast(n, syntax.NodeIfElse)
}

func (i IfElse) Cond() *syntax.Node { return nodeAfter(i.Node, token.KwIf) }
func (i IfElse) Then() *syntax.Node { return nodeAfter(i.Node, token.KwThen) }
func (i IfElse) Else() *syntax.Node { return nodeAfter(i.Node, token.KwElse) }

type List struct{ *syntax.Node }

func AsList(n *syntax.Node) (List, bool) {
	return List{n}, cast(n, syntax.NodeList)
}

func (l List) Items() []*syntax.Node { return l.ChildNodes() }

// IsEmptyList reports whether n is `[ ]`, comments allowed.
func IsEmptyList(n *syntax.Node) bool {
	l, ok := AsList(n)
	return ok && len(l.Items()) == 0
}

type Dynamic struct{ *syntax.Node }

func AsDynamic(n *syntax.Node) (Dynamic, bool) {
	return Dynamic{n}, cast(n, syntax.NodeDynamic)
}

func (d Dynamic) Inner() *syntax.Node { return d.FirstChildNode() }
