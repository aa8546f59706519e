package parser

import (
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

// parseString: "..." и ''...'' с интерполяциями внутри.
func (p *Parser) parseString() {
	p.node(syntax.NodeString, func() {
		p.bump()
		for {
			switch p.peekRaw() {
			case token.StringContent:
				p.bump()
			case token.InterpolStart:
				p.parseInterpol()
			case token.StringEnd:
				p.bump()
				return
			default:
				// EOF: лексер уже сообщил о незакрытой строке
				return
			}
		}
	})
}

// parsePath: путь с продолжениями: ./foo/${x}.nix
func (p *Parser) parsePath() {
	p.node(syntax.NodePath, func() {
		p.bump()
		for {
			switch p.peekRaw() {
			case token.Path:
				p.bump()
			case token.InterpolStart:
				p.parseInterpol()
			default:
				return
			}
		}
	})
}

func (p *Parser) parseInterpol() {
	p.node(syntax.NodeInterpol, func() {
		p.bump()
		p.parseExpr()
		p.expect(token.InterpolEnd)
	})
}
