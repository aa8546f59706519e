package lexer

import "nixlint/internal/token"

// scanStringPart lexes the inside of "..." or ''...'': content runs,
// interpolation starts and the closing quote. Escapes stay part of the
// content text; the tree never decodes string values.
func (lx *Lexer) scanStringPart(indented bool) token.Token {
	start := lx.cursor.Mark()

	switch {
	case !indented && lx.cursor.Peek() == '"':
		lx.cursor.Bump()
		lx.pop()
		return lx.make(token.StringEnd, start)
	case indented && lx.atIndentedEnd():
		lx.cursor.Advance(2)
		lx.pop()
		return lx.make(token.StringEnd, start)
	case lx.cursor.Peek() == '$' && lx.cursor.PeekAt(1) == '{':
		lx.cursor.Advance(2)
		lx.push(ctxInterpol)
		return lx.make(token.InterpolStart, start)
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !indented {
			if b == '"' {
				break
			}
			if b == '\\' {
				lx.cursor.Bump()
				lx.bumpRune()
				continue
			}
		} else if b == '\'' && lx.cursor.PeekAt(1) == '\'' {
			n := lx.indentedEscapeLen()
			if n == 0 {
				break
			}
			lx.cursor.Advance(n)
			continue
		}
		if b == '$' {
			switch lx.cursor.PeekAt(1) {
			case '{':
				return lx.make(token.StringContent, start)
			case '$':
				lx.cursor.Advance(2)
				continue
			}
		}
		lx.cursor.Bump()
	}
	return lx.make(token.StringContent, start)
}

// atIndentedEnd reports whether the cursor is at a closing '' rather than an escape.
func (lx *Lexer) atIndentedEnd() bool {
	return lx.cursor.Peek() == '\'' && lx.cursor.PeekAt(1) == '\'' && lx.indentedEscapeLen() == 0
}

// indentedEscapeLen returns the byte length of an escape starting with ''
// inside an indented string: ''' , ''$ and ''\x. Zero means no escape.
func (lx *Lexer) indentedEscapeLen() uint32 {
	switch lx.cursor.PeekAt(2) {
	case '\'', '$':
		return 3
	case '\\':
		if lx.cursor.PeekAt(3) == 0 {
			return 3
		}
		return 3 + lx.runeLenAt(3)
	}
	return 0
}
