package fuzztests

import (
	"strings"
	"testing"

	"nixlint/internal/lexer"
	"nixlint/internal/source"
	"nixlint/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.nix", input))

		toks := lexer.Tokenize(file, lexer.Options{})
		var sb strings.Builder
		for _, tok := range toks {
			if tok.Kind == token.EOF {
				continue
			}
			sb.WriteString(tok.Text)
		}
		if sb.String() != file.Text() {
			t.Fatalf("tokens do not reproduce input:\n got %q\nwant %q", sb.String(), file.Text())
		}
	})
}
