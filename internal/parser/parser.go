package parser

import (
	"cmp"
	"fmt"
	"slices"

	"fortio.org/safecast"

	"nixlint/internal/lexer"
	"nixlint/internal/source"
	"nixlint/internal/syntax"
	"nixlint/internal/token"
)

type Options struct {
	// MaxErrors caps the number of recorded errors; 0 means unlimited.
	// Parsing always runs to the end of the input.
	MaxErrors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	toks []token.Token
	pos  int
	b    *syntax.Builder
	errs []syntax.ParseError
	seen map[uint32]struct{} // смещения, где ошибка уже есть
	opts Options
	file source.FileID
	end  uint32
}

// errorSink collects lexer errors into the parser's error list.
type errorSink struct{ p *Parser }

func (s errorSink) Report(sp source.Span, msg string) {
	s.p.errAt(sp, msg)
}

// Parse parses text as a standalone Nix expression.
func Parse(text string) *syntax.Tree {
	return ParseFile(&source.File{Content: []byte(text)}, Options{})
}

// ParseFile parses a whole file. It never fails: syntax errors are recovered
// into NodeError regions and listed in Tree.Errors.
func ParseFile(file *source.File, opts Options) *syntax.Tree {
	end, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	p := &Parser{
		b:    syntax.NewBuilder(string(file.Content), file.ID),
		seen: make(map[uint32]struct{}),
		opts: opts,
		file: file.ID,
		end:  end,
	}
	p.toks = lexer.Tokenize(file, lexer.Options{Reporter: errorSink{p}})
	p.parseRoot()
	// ошибки лексера и парсера, в порядке появления в тексте
	slices.SortStableFunc(p.errs, func(a, b syntax.ParseError) int {
		return cmp.Compare(a.Span.Start, b.Span.Start)
	})
	return p.b.Finish(p.errs)
}

// parseRoot: корень: ровно одно выражение, затем EOF.
func (p *Parser) parseRoot() {
	if p.at(token.EOF) {
		p.err("unexpected end of file, expected an expression")
	} else {
		p.parseExpr()
	}

	if !p.at(token.EOF) {
		p.err("unexpected " + p.describe() + ", expected end of file")
		p.b.StartNode(syntax.NodeError)
		for !p.at(token.EOF) {
			p.bump()
		}
		p.b.FinishNode()
	}
	p.bumpTrivia()
}
