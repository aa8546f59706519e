package parser

import (
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

// looksLikePattern decides, at '{', whether a lambda pattern follows rather
// than an attribute set.
func (p *Parser) looksLikePattern() bool {
	switch p.nth(1) {
	case token.RBrace:
		k := p.nth(2)
		return k == token.Colon || k == token.At
	case token.Ellipsis:
		return true
	case token.Ident:
		switch p.nth(2) {
		case token.Comma, token.Question:
			return true
		case token.RBrace:
			k := p.nth(3)
			return k == token.Colon || k == token.At
		}
	}
	return false
}

// parseLambda: x: body | { a, b ? d, ... } @ x: body
func (p *Parser) parseLambda() {
	p.node(syntax.NodeLambda, func() {
		if p.at(token.Ident) && p.nth(1) == token.Colon {
			p.node(syntax.NodeIdentParam, p.parseIdent)
		} else {
			p.parsePattern()
		}
		p.expect(token.Colon)
		p.parseExpr()
	})
}

func (p *Parser) parsePattern() {
	p.node(syntax.NodePattern, func() {
		if p.at(token.Ident) {
			p.node(syntax.NodePatBind, func() {
				p.parseIdent()
				p.expect(token.At)
			})
		}
		if !p.expect(token.LBrace) {
			return
		}
		p.parsePatEntries()
		p.expect(token.RBrace)
		if p.at(token.At) {
			p.node(syntax.NodePatBind, func() {
				p.bump()
				if p.at(token.Ident) {
					p.parseIdent()
				} else {
					p.err("expected an identifier, found " + p.describe())
				}
			})
		}
	})
}

func (p *Parser) parsePatEntries() {
	for {
		switch p.peek() {
		case token.RBrace, token.EOF:
			return
		case token.Ellipsis:
			p.bump()
		case token.Ident, token.KwOr:
			p.node(syntax.NodePatEntry, func() {
				p.parseIdent()
				if p.at(token.Question) {
					p.bump()
					p.parseExpr()
				}
			})
		default:
			p.err("unexpected " + p.describe() + " in pattern")
			if p.atAny(token.Colon, token.RParen, token.Semicolon) {
				return
			}
			p.errorToken()
			continue
		}
		if p.at(token.Comma) {
			p.bump()
			continue
		}
		if !p.at(token.RBrace) {
			p.err("expected ',' or '}', found " + p.describe())
			return
		}
	}
}
