package ast

import (
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

// nodeAfter returns the first child node that follows a token of kind k.
func nodeAfter(n *syntax.Node, k token.Kind) *syntax.Node {
	seen := false
	for _, c := range n.Children() {
		switch el := c.(type) {
		case *syntax.Token:
			if el.TokenKind() == k {
				seen = true
			}
		case *syntax.Node:
			if seen {
				return el
			}
		}
	}
	return nil
}

func cast(n *syntax.Node, k syntax.Kind) bool {
	return n != nil && n.Kind() == k
}

// Unparen strips any number of enclosing parentheses.
func Unparen(n *syntax.Node) *syntax.Node {
	for cast(n, syntax.NodeParen) {
		inner := n.FirstChildNode()
		if inner == nil {
			return n
		}
		n = inner
	}
	return n
}

// IsAtom reports whether n can be used as an operand of any operator without
// parentheses.
func IsAtom(n *syntax.Node) bool {
	switch n.Kind() {
	case syntax.NodeIdent, syntax.NodeLiteral, syntax.NodeString, syntax.NodePath,
		syntax.NodeParen, syntax.NodeList, syntax.NodeAttrSet, syntax.NodeSelect:
		return true
	}
	return false
}
