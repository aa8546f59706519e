package lexer

import "nixlint/internal/token"

// scanIdentOrKeyword: [A-Za-z_][A-Za-z0-9_'-]*
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.make(token.Ident, start)
	if kw, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = kw
	}
	return tok
}

// uriLen returns the length of a URI literal at the cursor, or 0.
//
//	scheme ":" rest
//	scheme = [A-Za-z][A-Za-z0-9+.-]*
//	rest   = [A-Za-z0-9%/?:@&=+$,_.!~*'-]+
func (lx *Lexer) uriLen() uint32 {
	var n uint32
	if !isAlpha(lx.cursor.PeekAt(0)) {
		return 0
	}
	n++
	for isURISchemeByte(lx.cursor.PeekAt(n)) {
		n++
	}
	if lx.cursor.PeekAt(n) != ':' {
		return 0
	}
	n++
	restStart := n
	for isURIByte(lx.cursor.PeekAt(n)) {
		n++
	}
	if n == restStart {
		return 0
	}
	return n
}
