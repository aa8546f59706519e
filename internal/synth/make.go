package synth

import (
	"strings"

	"nixlint/internal/ast"
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

// Parenthesize wraps e in parentheses.
func Parenthesize(e syntax.Element) *syntax.Node {
	return Extract("("+e.Text()+")", syntax.NodeParen)
}

// Quote wraps e into a string interpolation: `"${e}"` for a splice, `"e"`
// for a bare URI.
func Quote(e syntax.Element) *syntax.Node {
	return Extract(`"`+e.Text()+`"`, syntax.NodeString)
}

// UnaryNot builds `!e`; e must already bind tightly enough.
func UnaryNot(e syntax.Element) *syntax.Node {
	return Extract("!"+e.Text(), syntax.NodeUnaryOp)
}

// InheritStmt builds `inherit a b;`.
func InheritStmt(names ...string) *syntax.Node {
	return Extract("{ inherit "+strings.Join(names, " ")+"; }", syntax.NodeInherit)
}

// InheritFromStmt builds `inherit (from) a b;` where from is expression text.
func InheritFromStmt(from string, names ...string) *syntax.Node {
	return Extract("{ inherit ("+from+") "+strings.Join(names, " ")+"; }", syntax.NodeInherit)
}

// AttrSet builds a set with one binding per line.
func AttrSet(bindings []*syntax.Node, rec bool) *syntax.Node {
	var sb strings.Builder
	if rec {
		sb.WriteString("rec ")
	}
	sb.WriteString("{\n")
	for _, b := range bindings {
		sb.WriteString("  ")
		sb.WriteString(b.Text())
		sb.WriteByte('\n')
	}
	sb.WriteString("}")
	return Extract(sb.String(), syntax.NodeAttrSet)
}

// Select builds `set.index`.
func Select(set, index syntax.Element) *syntax.Node {
	return Extract(set.Text()+"."+index.Text(), syntax.NodeSelect)
}

// Ident builds a bare identifier.
func Ident(name string) *syntax.Node {
	return Extract(name, syntax.NodeIdent)
}

// Binary builds `lhs op rhs`.
func Binary(lhs syntax.Element, op string, rhs syntax.Element) *syntax.Node {
	return Extract(lhs.Text()+" "+op+" "+rhs.Text(), syntax.NodeBinOp)
}

// OrDefault builds `set.index or def`.
func OrDefault(set, index, def syntax.Element) *syntax.Node {
	return Extract(set.Text()+"."+index.Text()+" or "+def.Text(), syntax.NodeSelect)
}

// Apply builds `fn arg`.
func Apply(fn, arg syntax.Element) *syntax.Node {
	return Extract(fn.Text()+" "+arg.Text(), syntax.NodeApply)
}

// MultilinePattern rewrites a pattern with one entry per line, keeping the
// `@` binding on its side.
func MultilinePattern(p ast.Pattern) *syntax.Node {
	var sb strings.Builder
	bind, hasBind := p.Bind()
	lb := p.FirstToken(token.LBrace)
	bindFirst := hasBind && lb != nil && bind.Span().Start < lb.Span().Start
	if bindFirst {
		sb.WriteString(bind.Name() + " @ ")
	}
	sb.WriteString("{\n")
	for _, e := range p.Entries() {
		sb.WriteString("  ")
		sb.WriteString(e.Text())
		sb.WriteString(",\n")
	}
	if p.Ellipsis() {
		sb.WriteString("  ...\n")
	}
	sb.WriteString("}")
	if hasBind && !bindFirst {
		sb.WriteString(" @ " + bind.Name())
	}
	sb.WriteString(": null")
	return Extract(sb.String(), syntax.NodePattern)
}
