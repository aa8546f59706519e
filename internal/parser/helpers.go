package parser

import (
	"slices"

	"nixlint/internal/source"
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

// bumpTrivia переносит пробелы и комментарии в текущий открытый узел.
func (p *Parser) bumpTrivia() {
	for p.toks[p.pos].IsTrivia() {
		p.b.Token(p.toks[p.pos])
		p.pos++
	}
}

// peek возвращает вид следующего значимого токена.
func (p *Parser) peek() token.Kind {
	p.bumpTrivia()
	return p.toks[p.pos].Kind
}

// peekRaw смотрит на следующий токен без пропуска пробелов.
func (p *Parser) peekRaw() token.Kind {
	return p.toks[p.pos].Kind
}

// nth returns the kind of the n-th significant token ahead without
// consuming anything; nth(0) is the next one.
func (p *Parser) nth(n int) token.Kind {
	for i := p.pos; i < len(p.toks); i++ {
		tok := p.toks[i]
		if tok.IsTrivia() {
			continue
		}
		if n == 0 || tok.Kind == token.EOF {
			return tok.Kind
		}
		n--
	}
	return token.EOF
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek() == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek())
}

// bump: съедает следующий значимый токен вместе с предшествующими пробелами.
func (p *Parser) bump() {
	p.bumpTrivia()
	tok := p.toks[p.pos]
	p.b.Token(tok)
	if tok.Kind != token.EOF {
		p.pos++
	}
}

// expect: ожидаем конкретный токен. Если нет - репортим и ничего не съедаем.
func (p *Parser) expect(k token.Kind) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	p.err("expected " + describeKind(k) + ", found " + p.describe())
	return false
}

// node runs fn inside a node of the given kind. Leading trivia stays
// with the parent so that every node starts at a significant token.
func (p *Parser) node(kind syntax.Kind, fn func()) {
	p.bumpTrivia()
	p.b.StartNode(kind)
	fn()
	p.b.FinishNode()
}

// errorToken wraps the next token into a NodeError.
func (p *Parser) errorToken() {
	p.node(syntax.NodeError, p.bump)
}

// err репортит ошибку на текущем токене.
func (p *Parser) err(msg string) {
	p.bumpTrivia()
	tok := p.toks[p.pos]
	sp := tok.Span
	if tok.Kind == token.EOF {
		sp = source.Span{File: p.file, Start: p.end, End: p.end}
	}
	p.errAt(sp, msg)
}

// errAt records an error unless one is already reported at the same
// offset; follow-up errors of a failed production are dropped.
func (p *Parser) errAt(sp source.Span, msg string) {
	if p.opts.MaxErrors != 0 && uint(len(p.errs)) >= p.opts.MaxErrors {
		return
	}
	if _, dup := p.seen[sp.Start]; dup {
		return
	}
	p.seen[sp.Start] = struct{}{}
	p.errs = append(p.errs, syntax.ParseError{Span: sp, Message: msg})
}

// describe: человекочитаемое описание следующего токена для сообщений.
func (p *Parser) describe() string {
	p.bumpTrivia()
	tok := p.toks[p.pos]
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return "'" + tok.Text + "'"
}

func describeKind(k token.Kind) string {
	if s, ok := kindText[k]; ok {
		return "'" + s + "'"
	}
	return k.String()
}

var kindText = map[token.Kind]string{
	token.LBrace:      "{",
	token.RBrace:      "}",
	token.LBrack:      "[",
	token.RBrack:      "]",
	token.LParen:      "(",
	token.RParen:      ")",
	token.Assign:      "=",
	token.At:          "@",
	token.Colon:       ":",
	token.Comma:       ",",
	token.Semicolon:   ";",
	token.InterpolEnd: "}",
	token.KwIn:        "in",
	token.KwThen:      "then",
	token.KwElse:      "else",
	token.Ident:       "identifier",
}
