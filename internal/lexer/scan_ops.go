package lexer

import "nixlint/internal/token"

// scanOperatorOrPunct: жадный разбор операторов: сначала длинные формы.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	if lx.try3('.', '.', '.') {
		return lx.make(token.Ellipsis, start)
	}

	type pair struct {
		a, b byte
		kind token.Kind
	}
	pairs := [...]pair{
		{'+', '+', token.Concat},
		{'-', '>', token.Implication},
		{'/', '/', token.Update},
		{'=', '=', token.Equal},
		{'!', '=', token.NotEqual},
		{'<', '=', token.LessOrEq},
		{'<', '|', token.PipeLeft},
		{'>', '=', token.MoreOrEq},
		{'&', '&', token.AndAnd},
		{'|', '|', token.OrOr},
		{'|', '>', token.PipeRight},
	}
	for _, p := range pairs {
		if lx.try2(p.a, p.b) {
			return lx.make(p.kind, start)
		}
	}

	ch := lx.cursor.Peek()
	kind := token.Invalid
	switch ch {
	case '{':
		kind = token.LBrace
		if top, ok := lx.top(); ok && top.kind == ctxInterpol {
			top.depth++
		}
	case '}':
		kind = token.RBrace
		if top, ok := lx.top(); ok && top.kind == ctxInterpol {
			if top.depth == 0 {
				kind = token.InterpolEnd
				lx.pop()
			} else {
				top.depth--
			}
		}
	case '[':
		kind = token.LBrack
	case ']':
		kind = token.RBrack
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '=':
		kind = token.Assign
	case '@':
		kind = token.At
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '?':
		kind = token.Question
	case ';':
		kind = token.Semicolon
	case '!':
		kind = token.Invert
	case '+':
		kind = token.Add
	case '-':
		kind = token.Sub
	case '*':
		kind = token.Mul
	case '/':
		kind = token.Div
	case '<':
		kind = token.Less
	case '>':
		kind = token.More
	}

	if kind == token.Invalid {
		lx.bumpRune()
		tok := lx.make(token.Invalid, start)
		lx.report(tok.Span, "unexpected character "+quoteText(tok.Text))
		return tok
	}
	lx.cursor.Bump()
	return lx.make(kind, start)
}
