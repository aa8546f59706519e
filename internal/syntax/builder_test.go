package syntax

import (
	"testing"

	"nixlint/internal/source"
	"nixlint/internal/token"
)

func tok(k token.Kind, start uint32, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: start, End: start + uint32(len(text))}, Text: text}
}

// "a  b " собранное вручную: Apply(Ident a, Ident b) + хвостовой пробел.
func buildApply() *Tree {
	b := NewBuilder("a  b ", 0)
	cp := b.Checkpoint()
	b.StartNode(NodeIdent)
	b.Token(tok(token.Ident, 0, "a"))
	b.FinishNode()
	b.Token(tok(token.Whitespace, 1, "  "))
	b.StartNodeAt(cp, NodeApply)
	b.StartNode(NodeIdent)
	b.Token(tok(token.Ident, 3, "b"))
	b.FinishNode()
	b.Token(tok(token.Whitespace, 4, " "))
	b.FinishNode()
	return b.Finish(nil)
}

func TestBuilderTrailingTrivia(t *testing.T) {
	tree := buildApply()
	root := tree.Root()
	if got := len(root.Children()); got != 2 {
		t.Fatalf("root children = %d, want 2:\n%s", got, Dump(root))
	}
	apply := root.FirstChild(NodeApply)
	if apply == nil {
		t.Fatal("no apply")
	}
	if apply.Span() != (source.Span{Start: 0, End: 4}) {
		t.Errorf("apply span = %v", apply.Span())
	}
	if apply.Text() != "a  b" {
		t.Errorf("apply text = %q", apply.Text())
	}
	if root.Span().End != 5 {
		t.Errorf("root end = %d", root.Span().End)
	}
}

func TestBuilderLeadingTrivia(t *testing.T) {
	b := NewBuilder(" a", 0)
	b.Token(tok(token.Whitespace, 0, " "))
	cp := Checkpoint(0)
	b.StartNodeAt(cp, NodeParen)
	b.StartNode(NodeIdent)
	b.Token(tok(token.Ident, 1, "a"))
	b.FinishNode()
	b.FinishNode()
	tree := b.Finish(nil)

	first := tree.Root().Children()[0]
	if first.Kind() != TokenKind(token.Whitespace) {
		t.Fatalf("leading trivia moved into node:\n%s", Dump(tree.Root()))
	}
	if p := tree.Root().FirstChild(NodeParen); p == nil || p.Span().Start != 1 {
		t.Fatalf("paren span wrong:\n%s", Dump(tree.Root()))
	}
}

func TestNavigation(t *testing.T) {
	tree := buildApply()
	apply := tree.Root().FirstChild(NodeApply)
	a := apply.NthChildNode(0)
	bnode := apply.NthChildNode(1)
	if a == nil || bnode == nil || apply.NthChildNode(2) != nil {
		t.Fatal("NthChildNode mismatch")
	}
	if NextSibling(a).Kind() != TokenKind(token.Whitespace) {
		t.Errorf("next sibling of a = %s", NextSibling(a).Kind())
	}
	if PrevSibling(a) != nil {
		t.Error("a has no previous sibling")
	}
	if got := Ancestors(bnode); len(got) != 2 || got[0] != apply || got[1] != tree.Root() {
		t.Errorf("ancestors = %v", got)
	}
	if a.Tree() != tree || a.Parent() != apply || a.Index() != 0 {
		t.Error("parent links not set")
	}
	if got := len(apply.Tokens()); got != 0 {
		t.Errorf("apply non-trivia tokens = %d", got)
	}
	if got := len(tree.Root().Descendants()); got != 3 {
		t.Errorf("descendants = %d, want 3", got)
	}
	if tree.Root().FirstDescendant(NodeIdent) != a {
		t.Error("FirstDescendant must be preorder")
	}
}

func TestTokenAt(t *testing.T) {
	tree := buildApply()
	tests := []struct {
		off  uint32
		want string
	}{
		{0, "a"},
		{1, "  "},
		{3, "b"},
		{4, " "},
		{5, " "},
	}
	for _, tt := range tests {
		got := tree.Root().TokenAt(tt.off)
		if got == nil || got.Text() != tt.want {
			t.Errorf("TokenAt(%d) = %v, want %q", tt.off, got, tt.want)
		}
	}
	if tree.Root().TokenAt(9) != nil {
		t.Error("TokenAt past the end must be nil")
	}
}

func TestBuilderEmptyNode(t *testing.T) {
	b := NewBuilder("a", 0)
	b.StartNode(NodeIdent)
	b.Token(tok(token.Ident, 0, "a"))
	b.FinishNode()
	b.StartNode(NodeError)
	b.FinishNode()
	tree := b.Finish([]ParseError{{Span: source.Span{Start: 1, End: 1}, Message: "boom"}})
	errNode := tree.Root().FirstChild(NodeError)
	if errNode == nil || !errNode.Span().Empty() || errNode.Span().Start != 1 {
		t.Fatalf("empty node:\n%s", Dump(tree.Root()))
	}
	if tree.OK() {
		t.Error("tree with errors reported OK")
	}
}

func TestKindString(t *testing.T) {
	if NodeAttrpathValue.String() != "NODE_ATTRPATH_VALUE" {
		t.Errorf("got %s", NodeAttrpathValue)
	}
	if TokenKind(token.Ident).String() != "TOKEN_IDENT" {
		t.Errorf("got %s", TokenKind(token.Ident))
	}
	if !NodeLetIn.IsExpr() || NodeAttrpath.IsExpr() {
		t.Error("IsExpr mismatch")
	}
	if TokenKind(token.Comma).Token() != token.Comma || NodeRoot.Token() != token.Invalid {
		t.Error("Token() mismatch")
	}
}
