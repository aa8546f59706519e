package parser

import (
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

// parseExpr: выражение самого низкого уровня: let/with/assert/if/лямбда,
// иначе бинарное выражение.
func (p *Parser) parseExpr() {
	switch p.peek() {
	case token.KwLet:
		if p.nth(1) == token.LBrace {
			p.parseBinary(0)
			return
		}
		p.parseLetIn()
	case token.KwWith:
		p.parseWith()
	case token.KwAssert:
		p.parseAssert()
	case token.KwIf:
		p.parseIfElse()
	case token.Ident:
		if k := p.nth(1); k == token.Colon || k == token.At {
			p.parseLambda()
			return
		}
		p.parseBinary(0)
	case token.LBrace:
		if p.looksLikePattern() {
			p.parseLambda()
			return
		}
		p.parseBinary(0)
	default:
		p.parseBinary(0)
	}
}

func (p *Parser) parseWith() {
	p.node(syntax.NodeWith, func() {
		p.bump()
		p.parseExpr()
		p.expect(token.Semicolon)
		p.parseExpr()
	})
}

func (p *Parser) parseAssert() {
	p.node(syntax.NodeAssert, func() {
		p.bump()
		p.parseExpr()
		p.expect(token.Semicolon)
		p.parseExpr()
	})
}

func (p *Parser) parseIfElse() {
	p.node(syntax.NodeIfElse, func() {
		p.bump()
		p.parseExpr()
		p.expect(token.KwThen)
		p.parseExpr()
		p.expect(token.KwElse)
		p.parseExpr()
	})
}

// parseBinary: разбор бинарных операторов с приоритетами (Pratt).
func (p *Parser) parseBinary(minPrec int) {
	p.peek()
	cp := p.b.Checkpoint()
	p.parsePrefix()

	for {
		op := p.peek()
		prec, right := binaryPrec(op)
		if prec < 0 || prec < minPrec {
			return
		}
		if op == token.Question {
			p.b.StartNodeAt(cp, syntax.NodeHasAttr)
			p.bump()
			p.parseAttrpath()
			p.b.FinishNode()
			continue
		}
		p.b.StartNodeAt(cp, syntax.NodeBinOp)
		p.bump()
		next := prec + 1
		if right {
			next = prec
		}
		p.parseBinary(next)
		p.b.FinishNode()
	}
}

// parsePrefix: унарные ! и -, иначе применение функции.
func (p *Parser) parsePrefix() {
	switch p.peek() {
	case token.Invert:
		p.node(syntax.NodeUnaryOp, func() {
			p.bump()
			p.parseBinary(precNot)
		})
	case token.Sub:
		p.node(syntax.NodeUnaryOp, func() {
			p.bump()
			p.parseBinary(precNegate)
		})
	default:
		p.parseApply()
	}
}

// parseApply: f a b: левоассоциативное применение.
func (p *Parser) parseApply() {
	p.peek()
	cp := p.b.Checkpoint()
	p.parseSelect()
	for startsArgument(p.peek()) {
		p.b.StartNodeAt(cp, syntax.NodeApply)
		p.parseSelect()
		p.b.FinishNode()
	}
}

// startsArgument reports whether a token can begin a function argument.
func startsArgument(k token.Kind) bool {
	switch k {
	case token.Ident, token.Integer, token.Float, token.Path, token.URI,
		token.StringStart, token.LBrace, token.LBrack, token.LParen, token.KwRec:
		return true
	}
	return false
}

// parseSelect: a.b.c с необязательным `or default`.
func (p *Parser) parseSelect() {
	p.peek()
	cp := p.b.Checkpoint()
	p.parseAtom()
	if !p.at(token.Dot) {
		return
	}
	p.b.StartNodeAt(cp, syntax.NodeSelect)
	p.bump()
	p.parseAttrpath()
	if p.at(token.KwOr) {
		p.bump()
		p.parseSelect()
	}
	p.b.FinishNode()
}

func (p *Parser) parseAtom() {
	switch p.peek() {
	case token.Ident, token.KwOr:
		p.parseIdent()
	case token.Integer, token.Float, token.URI:
		p.node(syntax.NodeLiteral, p.bump)
	case token.Path:
		p.parsePath()
	case token.StringStart:
		p.parseString()
	case token.LParen:
		p.node(syntax.NodeParen, func() {
			p.bump()
			p.parseExpr()
			p.expect(token.RParen)
		})
	case token.LBrack:
		p.parseList()
	case token.LBrace, token.KwRec:
		p.parseAttrSet()
	case token.KwLet:
		if p.nth(1) == token.LBrace {
			p.parseLegacyLet()
			return
		}
		p.parseLetIn()
	case token.KwIf, token.KwWith, token.KwAssert:
		p.parseExpr()
	case token.Invalid:
		// лексер уже сообщил об ошибке
		p.errorToken()
	default:
		p.err("unexpected " + p.describe() + ", expected an expression")
		if p.atClosing() {
			p.node(syntax.NodeError, func() {})
			return
		}
		p.errorToken()
	}
}

// atClosing reports whether the next token ends an enclosing construct, in
// which case recovery must leave it for the caller.
func (p *Parser) atClosing() bool {
	return p.atAny(token.EOF, token.RParen, token.RBrack, token.RBrace, token.InterpolEnd,
		token.Semicolon, token.Comma, token.KwIn, token.KwThen, token.KwElse, token.Colon)
}

func (p *Parser) parseIdent() {
	p.node(syntax.NodeIdent, p.bump)
}

func (p *Parser) parseList() {
	p.node(syntax.NodeList, func() {
		p.bump()
		for !p.atAny(token.RBrack, token.EOF) {
			if startsArgument(p.peek()) {
				p.parseSelect()
				continue
			}
			if p.atAny(token.RBrace, token.RParen, token.InterpolEnd, token.Semicolon) {
				break
			}
			p.err("unexpected " + p.describe() + " in list")
			p.errorToken()
		}
		p.expect(token.RBrack)
	})
}
