package lexer

import "nixlint/internal/token"

// pathLen returns the length of a path literal starting at the cursor and
// whether the path continues with an interpolation right after it.
//
//	[A-Za-z0-9._+-]* ("/" [A-Za-z0-9._+-]+)+   ./foo, a/b, ../x.nix
//	"~" ("/" [A-Za-z0-9._+-]+)+                 ~/src
//
// A "/" followed by "${" also continues the path: ./foo/${name}.
func (lx *Lexer) pathLen() (uint32, bool) {
	var n uint32
	if lx.cursor.PeekAt(0) == '~' {
		n = 1
	} else {
		for isPathByte(lx.cursor.PeekAt(n)) {
			n++
		}
	}

	segments := 0
	for lx.cursor.PeekAt(n) == '/' {
		next := lx.cursor.PeekAt(n + 1)
		if isPathByte(next) {
			n++
			for isPathByte(lx.cursor.PeekAt(n)) {
				n++
			}
			segments++
			continue
		}
		if next == '$' && lx.cursor.PeekAt(n+2) == '{' {
			return n + 1, true
		}
		break
	}
	if segments == 0 {
		return 0, false
	}
	return n, lx.cursor.PeekAt(n) == '$' && lx.cursor.PeekAt(n+1) == '{'
}

// searchPathLen matches <nixpkgs> and <nixpkgs/lib>.
func (lx *Lexer) searchPathLen() uint32 {
	n := uint32(1)
	for isPathByte(lx.cursor.PeekAt(n)) || lx.cursor.PeekAt(n) == '/' {
		n++
	}
	if n == 1 || lx.cursor.PeekAt(n) != '>' {
		return 0
	}
	return n + 1
}

// scanPathRest continues a path after an interpolation: either another
// interpolation, or more literal path text. ok is false when the path ended.
func (lx *Lexer) scanPathRest() (token.Token, bool) {
	start := lx.cursor.Mark()
	if lx.cursor.Peek() == '$' && lx.cursor.PeekAt(1) == '{' {
		lx.cursor.Advance(2)
		lx.push(ctxInterpol)
		return lx.make(token.InterpolStart, start), true
	}

	var n uint32
	for {
		b := lx.cursor.PeekAt(n)
		if isPathByte(b) || (b == '/' && isPathByte(lx.cursor.PeekAt(n+1))) {
			n++
			continue
		}
		if b == '/' && lx.cursor.PeekAt(n+1) == '$' && lx.cursor.PeekAt(n+2) == '{' {
			n++
		}
		break
	}
	if n == 0 {
		return token.Token{}, false
	}
	lx.cursor.Advance(n)
	return lx.make(token.Path, start), true
}
