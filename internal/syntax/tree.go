package syntax

import (
	"nixlint/internal/source"
	"nixlint/internal/token"
)

// Element is either a *Node or a *Token.
type Element interface {
	Kind() Kind
	Span() source.Span
	Text() string
	Parent() *Node
	// Index is the position of the element among its parent's children.
	Index() int

	isElement()
}

// Node is an interior tree element.
type Node struct {
	kind     Kind
	span     source.Span
	tree     *Tree
	parent   *Node
	index    int
	children []Element
}

// Token is a leaf tree element holding source text.
type Token struct {
	kind   token.Kind
	span   source.Span
	text   string
	parent *Node
	index  int
}

// ParseError is a syntax error recovered by the parser.
type ParseError struct {
	Span    source.Span
	Message string
}

func (e ParseError) Error() string {
	return e.Message
}

// Tree is the result of parsing one text.
type Tree struct {
	root   *Node
	text   string
	Errors []ParseError
}

// Root returns the NodeRoot of the tree.
func (t *Tree) Root() *Node { return t.root }

// Text returns the text the tree was parsed from.
func (t *Tree) Text() string { return t.text }

// OK reports whether the text parsed without errors.
func (t *Tree) OK() bool { return len(t.Errors) == 0 }

func (n *Node) isElement()          {}
func (n *Node) Kind() Kind          { return n.kind }
func (n *Node) Span() source.Span   { return n.span }
func (n *Node) Parent() *Node       { return n.parent }
func (n *Node) Index() int          { return n.index }
func (n *Node) Children() []Element { return n.children }

// Text returns the source text covered by the node.
func (n *Node) Text() string {
	if n.tree == nil {
		return ""
	}
	return n.tree.text[n.span.Start:n.span.End]
}

// Tree returns the tree the node belongs to.
func (n *Node) Tree() *Tree { return n.tree }

func (t *Token) isElement()            {}
func (t *Token) Kind() Kind            { return TokenKind(t.kind) }
func (t *Token) TokenKind() token.Kind { return t.kind }
func (t *Token) Span() source.Span     { return t.span }
func (t *Token) Text() string          { return t.text }
func (t *Token) Parent() *Node         { return t.parent }
func (t *Token) Index() int            { return t.index }

// ChildNodes returns the node children, skipping tokens.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if cn, ok := c.(*Node); ok {
			out = append(out, cn)
		}
	}
	return out
}

// FirstChild returns the first child node of the given kind.
func (n *Node) FirstChild(kind Kind) *Node {
	for _, c := range n.children {
		if cn, ok := c.(*Node); ok && cn.kind == kind {
			return cn
		}
	}
	return nil
}

// FirstChildNode returns the first child node of any kind.
func (n *Node) FirstChildNode() *Node {
	for _, c := range n.children {
		if cn, ok := c.(*Node); ok {
			return cn
		}
	}
	return nil
}

// NthChildNode returns the i-th child node (tokens skipped), or nil.
func (n *Node) NthChildNode(i int) *Node {
	for _, c := range n.children {
		if cn, ok := c.(*Node); ok {
			if i == 0 {
				return cn
			}
			i--
		}
	}
	return nil
}

// FirstToken returns the first direct child token of the given kind.
func (n *Node) FirstToken(kind token.Kind) *Token {
	for _, c := range n.children {
		if ct, ok := c.(*Token); ok && ct.kind == kind {
			return ct
		}
	}
	return nil
}

// Tokens returns the direct child tokens that are not trivia.
func (n *Node) Tokens() []*Token {
	out := make([]*Token, 0, len(n.children))
	for _, c := range n.children {
		if ct, ok := c.(*Token); ok && !ct.kind.IsTrivia() {
			out = append(out, ct)
		}
	}
	return out
}

// PrevSibling returns the element right before e in its parent, or nil.
func PrevSibling(e Element) Element {
	p := e.Parent()
	if p == nil || e.Index() == 0 {
		return nil
	}
	return p.children[e.Index()-1]
}

// NextSibling returns the element right after e in its parent, or nil.
func NextSibling(e Element) Element {
	p := e.Parent()
	if p == nil || e.Index()+1 >= len(p.children) {
		return nil
	}
	return p.children[e.Index()+1]
}

// Ancestors returns the parents of e, innermost first.
func Ancestors(e Element) []*Node {
	var out []*Node
	for p := e.Parent(); p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

// TokenAt returns the token whose span contains off. At a boundary between
// two tokens the later one wins; off equal to the text length yields the
// last token.
func (n *Node) TokenAt(off uint32) *Token {
	cur := n
	for {
		var next Element
		for _, c := range cur.children {
			sp := c.Span()
			if sp.Start <= off && off < sp.End {
				next = c
				break
			}
		}
		if next == nil {
			if len(cur.children) == 0 {
				return nil
			}
			next = cur.children[len(cur.children)-1]
			if next.Span().End != off {
				return nil
			}
		}
		switch el := next.(type) {
		case *Token:
			return el
		case *Node:
			cur = el
		}
	}
}
