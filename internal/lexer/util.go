package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"fortio.org/safecast"
)

// bumpRune перемещает курсор на размер текущей руны (минимум один байт).
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	lx.cursor.Advance(lx.runeLenAt(0))
}

// runeLenAt returns the UTF-8 length of the rune n bytes ahead.
func (lx *Lexer) runeLenAt(n uint32) uint32 {
	off := lx.cursor.Off + n
	if int(off) >= len(lx.file.Content) {
		return 0
	}
	if lx.file.Content[off] < utf8.RuneSelf {
		return 1
	}
	_, sz := utf8.DecodeRune(lx.file.Content[off:])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	return usz
}

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Advance(3)
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Advance(2)
	return true
}

// ===== Классификаторы =====

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStartByte(b byte) bool {
	return b == '_' || isAlpha(b)
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '\'' || b == '-'
}

func isPathByte(b byte) bool {
	return isAlpha(b) || isDec(b) || b == '.' || b == '_' || b == '-' || b == '+'
}

func isURISchemeByte(b byte) bool {
	return isAlpha(b) || isDec(b) || b == '+' || b == '-' || b == '.'
}

func isURIByte(b byte) bool {
	if isAlpha(b) || isDec(b) {
		return true
	}
	switch b {
	case '%', '/', '?', ':', '@', '&', '=', '+', '$', ',', '-', '_', '.', '!', '~', '*', '\'':
		return true
	}
	return false
}

func quoteText(s string) string {
	return strconv.Quote(s)
}
