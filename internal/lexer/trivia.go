package lexer

import "nixlint/internal/token"

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.make(token.Whitespace, start)
}

// scanLineComment съедает "# ..." до конца строки, не включая '\n'.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.make(token.Comment, start)
}

// scanBlockComment съедает "/* ... */". Вложенность не поддерживается.
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if lx.try2('*', '/') {
			return lx.make(token.Comment, start)
		}
		lx.cursor.Bump()
	}
	tok := lx.make(token.Comment, start)
	lx.report(tok.Span, "unterminated block comment")
	return tok
}
