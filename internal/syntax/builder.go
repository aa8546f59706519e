package syntax

import (
	"fmt"

	"fortio.org/safecast"

	"nixlint/internal/source"
	"nixlint/internal/token"
)

// Checkpoint marks a position in the open node's children so a node can be
// started retroactively around what was built since (binary operators,
// applications, selections).
type Checkpoint int

type frame struct {
	kind     Kind
	start    uint32
	children []Element
}

// Builder assembles a Tree bottom-up while the parser consumes tokens.
type Builder struct {
	text  string
	file  source.FileID
	pos   uint32
	stack []*frame
}

// NewBuilder starts a tree for text with an open NodeRoot.
func NewBuilder(text string, file source.FileID) *Builder {
	b := &Builder{text: text, file: file}
	b.StartNode(NodeRoot)
	return b
}

func (b *Builder) current() *frame {
	return b.stack[len(b.stack)-1]
}

// StartNode opens a node; subsequent tokens and nodes become its children.
func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, &frame{kind: kind, start: b.pos})
}

// Checkpoint returns the current position in the open node.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.current().children))
}

// StartNodeAt opens a node that adopts the children added since cp.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	parent := b.current()
	if int(cp) > len(parent.children) {
		panic(fmt.Sprintf("syntax: checkpoint %d beyond %d children", cp, len(parent.children)))
	}
	// ведущие пробелы и комментарии остаются у родителя
	for int(cp) < len(parent.children) && isTrivia(parent.children[cp]) {
		cp++
	}
	adopted := append([]Element(nil), parent.children[cp:]...)
	parent.children = parent.children[:cp]
	start := b.pos
	if len(adopted) > 0 {
		start = adopted[0].Span().Start
	}
	b.stack = append(b.stack, &frame{kind: kind, start: start, children: adopted})
}

// Token appends a token to the open node.
func (b *Builder) Token(tok token.Token) {
	if tok.Kind == token.EOF {
		return
	}
	b.current().children = append(b.current().children, &Token{
		kind: tok.Kind,
		span: tok.Span,
		text: tok.Text,
	})
	b.pos = tok.Span.End
}

// FinishNode closes the innermost open node.
func (b *Builder) FinishNode() {
	if len(b.stack) < 2 {
		panic("syntax: FinishNode without matching StartNode")
	}
	fr := b.current()
	b.stack = b.stack[:len(b.stack)-1]

	// хвостовые пробелы и комментарии выносим за пределы узла
	cut := len(fr.children)
	for cut > 0 && isTrivia(fr.children[cut-1]) {
		cut--
	}
	trailing := fr.children[cut:]
	fr.children = fr.children[:cut:cut]

	n := b.node(fr)
	parent := b.current()
	parent.children = append(parent.children, n)
	parent.children = append(parent.children, trailing...)
}

func isTrivia(e Element) bool {
	t, ok := e.(*Token)
	return ok && t.kind.IsTrivia()
}

func (b *Builder) node(fr *frame) *Node {
	n := &Node{kind: fr.kind, children: fr.children}
	if len(fr.children) > 0 {
		n.span = source.Span{
			File:  b.file,
			Start: fr.children[0].Span().Start,
			End:   fr.children[len(fr.children)-1].Span().End,
		}
	} else {
		n.span = source.Span{File: b.file, Start: fr.start, End: fr.start}
	}
	for i, c := range fr.children {
		switch el := c.(type) {
		case *Node:
			el.parent, el.index = n, i
		case *Token:
			el.parent, el.index = n, i
		}
	}
	return n
}

// Finish closes the root and returns the tree.
func (b *Builder) Finish(errs []ParseError) *Tree {
	if len(b.stack) != 1 {
		panic(fmt.Sprintf("syntax: Finish with %d open nodes", len(b.stack)-1))
	}
	root := b.node(b.current())
	end, err := safecast.Conv[uint32](len(b.text))
	if err != nil {
		panic(fmt.Errorf("text length overflow: %w", err))
	}
	root.span = source.Span{File: b.file, Start: 0, End: end}
	b.stack = nil

	tree := &Tree{root: root, text: b.text, Errors: errs}
	Walk(root, func(e Element) bool {
		if n, ok := e.(*Node); ok {
			n.tree = tree
			return true
		}
		return false
	})
	return tree
}
