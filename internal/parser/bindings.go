package parser

import (
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

// parseLetIn: let <bindings> in <expr>
func (p *Parser) parseLetIn() {
	p.node(syntax.NodeLetIn, func() {
		p.bump()
		p.parseBindings(token.KwIn)
		p.expect(token.KwIn)
		p.parseExpr()
	})
}

// parseLegacyLet: let { <bindings> }
func (p *Parser) parseLegacyLet() {
	p.node(syntax.NodeLegacyLet, func() {
		p.bump()
		p.bump()
		p.parseBindings(token.RBrace)
		p.expect(token.RBrace)
	})
}

// parseAttrSet: [rec] { <bindings> }
func (p *Parser) parseAttrSet() {
	p.node(syntax.NodeAttrSet, func() {
		if p.at(token.KwRec) {
			p.bump()
		}
		if !p.expect(token.LBrace) {
			return
		}
		p.parseBindings(token.RBrace)
		p.expect(token.RBrace)
	})
}

// parseBindings разбирает `inherit ...;` и `a.b = e;` до токена end.
func (p *Parser) parseBindings(end token.Kind) {
	for {
		switch p.peek() {
		case end, token.EOF:
			return
		case token.KwInherit:
			p.parseInherit()
		case token.Ident, token.KwOr, token.StringStart, token.InterpolStart:
			p.parseAttrpathValue()
		default:
			if end == token.KwIn && p.at(token.RBrace) || end == token.RBrace && p.at(token.KwIn) {
				// чужой закрывающий токен: ошибку сообщит вызывающий
				return
			}
			p.err("unexpected " + p.describe() + ", expected a binding")
			p.errorToken()
		}
	}
}

func (p *Parser) parseAttrpathValue() {
	p.node(syntax.NodeAttrpathValue, func() {
		p.parseAttrpath()
		if !p.expect(token.Assign) {
			p.recoverBinding()
			return
		}
		p.parseExpr()
		p.expect(token.Semicolon)
	})
}

// recoverBinding skips to the end of a broken binding.
func (p *Parser) recoverBinding() {
	if p.atAny(token.Semicolon) {
		p.bump()
		return
	}
	if p.atClosing() || p.atAny(token.KwInherit) {
		return
	}
	p.node(syntax.NodeError, func() {
		for !p.atAny(token.Semicolon, token.RBrace, token.KwIn, token.EOF) {
			p.bump()
		}
	})
	if p.at(token.Semicolon) {
		p.bump()
	}
}

// parseAttrpath: a.b."c".${d}
func (p *Parser) parseAttrpath() {
	p.node(syntax.NodeAttrpath, func() {
		p.parseAttr()
		for p.at(token.Dot) {
			p.bump()
			p.parseAttr()
		}
	})
}

func (p *Parser) parseAttr() {
	switch p.peek() {
	case token.Ident, token.KwOr:
		p.parseIdent()
	case token.StringStart:
		p.parseString()
	case token.InterpolStart:
		p.node(syntax.NodeDynamic, func() {
			p.bump()
			p.parseExpr()
			p.expect(token.InterpolEnd)
		})
	default:
		p.err("expected an attribute name, found " + p.describe())
	}
}

// parseInherit: inherit [(from)] a b "c";
func (p *Parser) parseInherit() {
	p.node(syntax.NodeInherit, func() {
		p.bump()
		if p.at(token.LParen) {
			p.node(syntax.NodeInheritFrom, func() {
				p.bump()
				p.parseExpr()
				p.expect(token.RParen)
			})
		}
		for p.atAny(token.Ident, token.KwOr, token.StringStart, token.InterpolStart) {
			p.parseAttr()
		}
		p.expect(token.Semicolon)
	})
}
