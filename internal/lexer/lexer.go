package lexer

import (
	"nixlint/internal/source"
	"nixlint/internal/token"
)

// ctxKind describes what kind of text the lexer is inside of.
type ctxKind uint8

const (
	ctxInterpol  ctxKind = iota // ${ ... }, обычные токены, считаем фигурные скобки
	ctxString                   // "..."
	ctxIndString                // ''...''
	ctxPath                     // путь, прерванный интерполяцией
)

type lexCtx struct {
	kind  ctxKind
	depth int // вложенность { } внутри интерполяции
}

// Lexer turns Nix source into a lossless token stream. Whitespace and
// comments are returned as tokens; string and path literals are split into
// parts around interpolations.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	stack  []lexCtx
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize lexes the whole file. The returned slice always ends with EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, len(file.Content)/3+1)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// Next возвращает следующий токен, включая пробелы и комментарии.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		lx.closeContexts()
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	if top, ok := lx.top(); ok {
		switch top.kind {
		case ctxString:
			return lx.scanStringPart(false)
		case ctxIndString:
			return lx.scanStringPart(true)
		case ctxPath:
			if tok, ok := lx.scanPathRest(); ok {
				return tok
			}
			lx.pop()
		}
	}
	return lx.scanNormal()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the cursor.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scanNormal() token.Token {
	ch := lx.cursor.Peek()
	b1 := lx.cursor.PeekAt(1)

	switch {
	case isSpace(ch):
		return lx.scanWhitespace()
	case ch == '#':
		return lx.scanLineComment()
	case ch == '/' && b1 == '*':
		return lx.scanBlockComment()
	case ch == '$' && b1 == '{':
		start := lx.cursor.Mark()
		lx.cursor.Advance(2)
		lx.push(ctxInterpol)
		return lx.make(token.InterpolStart, start)
	case ch == '"':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.push(ctxString)
		return lx.make(token.StringStart, start)
	case ch == '\'' && b1 == '\'':
		start := lx.cursor.Mark()
		lx.cursor.Advance(2)
		lx.push(ctxIndString)
		return lx.make(token.StringStart, start)
	case ch == '<':
		if n := lx.searchPathLen(); n > 0 {
			start := lx.cursor.Mark()
			lx.cursor.Advance(n)
			return lx.make(token.Path, start)
		}
		return lx.scanOperatorOrPunct()
	}

	if n, interpolated := lx.pathLen(); n > 0 {
		start := lx.cursor.Mark()
		lx.cursor.Advance(n)
		if interpolated {
			lx.push(ctxPath)
		}
		return lx.make(token.Path, start)
	}

	switch {
	case isIdentStartByte(ch):
		if n := lx.uriLen(); n > 0 {
			start := lx.cursor.Mark()
			lx.cursor.Advance(n)
			return lx.make(token.URI, start)
		}
		return lx.scanIdentOrKeyword()
	case isDec(ch), ch == '.' && isDec(b1):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) make(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) top() (*lexCtx, bool) {
	if len(lx.stack) == 0 {
		return nil, false
	}
	return &lx.stack[len(lx.stack)-1], true
}

func (lx *Lexer) push(kind ctxKind) {
	lx.stack = append(lx.stack, lexCtx{kind: kind})
}

func (lx *Lexer) pop() {
	if len(lx.stack) > 0 {
		lx.stack = lx.stack[:len(lx.stack)-1]
	}
}

// closeContexts reports literals and interpolations left open at EOF.
func (lx *Lexer) closeContexts() {
	for len(lx.stack) > 0 {
		top, _ := lx.top()
		switch top.kind {
		case ctxString, ctxIndString:
			lx.report(lx.EmptySpan(), "unterminated string literal")
		case ctxInterpol:
			lx.report(lx.EmptySpan(), "unterminated interpolation")
		}
		lx.pop()
	}
}
