package lexer

import "nixlint/internal/token"

// scanNumber: целые "123" и дробные "1.5", ".5", "1e10", "2.5E-3".
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.Integer

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && (lx.cursor.Off > uint32(start) || isDec(lx.cursor.PeekAt(1))) {
		kind = token.Float
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if kind == token.Float {
		if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
			n := uint32(1)
			if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
				n++
			}
			if isDec(lx.cursor.PeekAt(n)) {
				lx.cursor.Advance(n)
				for isDec(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
			}
		}
	}
	return lx.make(kind, start)
}
