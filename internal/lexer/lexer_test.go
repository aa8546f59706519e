package lexer_test

import (
	"strings"
	"testing"

	"nixlint/internal/lexer"
	"nixlint/internal/source"
	"nixlint/internal/token"
)

type testReporter struct {
	messages []string
}

func (r *testReporter) Report(_ source.Span, msg string) {
	r.messages = append(r.messages, msg)
}

func lex(t *testing.T, src string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.nix", []byte(src)))
	rep := &testReporter{}
	toks := lexer.Tokenize(file, lexer.Options{Reporter: rep})

	// Поток без потерь: склейка текстов даёт исходник.
	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.Text)
	}
	if sb.String() != src {
		t.Fatalf("lossless check failed:\n got %q\nwant %q", sb.String(), src)
	}
	return toks, rep
}

func kinds(toks []token.Token, skipTrivia bool) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		if skipTrivia && tok.IsTrivia() {
			continue
		}
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	toks, rep := lex(t, src)
	got := kinds(toks, true)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d = %v, want %v (all: %v)", src, i, got[i], want[i], got)
		}
	}
	if len(rep.messages) != 0 {
		t.Fatalf("%q: unexpected errors %v", src, rep.messages)
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	expectKinds(t, "let a = 1; in a",
		token.KwLet, token.Ident, token.Assign, token.Integer, token.Semicolon, token.KwIn, token.Ident)
	expectKinds(t, "foo-bar' or rec",
		token.Ident, token.KwOr, token.KwRec)
	expectKinds(t, "inherit (pkgs) hello;",
		token.KwInherit, token.LParen, token.Ident, token.RParen, token.Ident, token.Semicolon)
}

func TestOperators(t *testing.T) {
	expectKinds(t, "a ++ b // c -> d",
		token.Ident, token.Concat, token.Ident, token.Update, token.Ident, token.Implication, token.Ident)
	expectKinds(t, "!(a == b) && c != d || e",
		token.Invert, token.LParen, token.Ident, token.Equal, token.Ident, token.RParen,
		token.AndAnd, token.Ident, token.NotEqual, token.Ident, token.OrOr, token.Ident)
	expectKinds(t, "a <= b >= c < d > e",
		token.Ident, token.LessOrEq, token.Ident, token.MoreOrEq, token.Ident, token.Less, token.Ident, token.More, token.Ident)
	expectKinds(t, "x |> f <| y",
		token.Ident, token.PipeRight, token.Ident, token.PipeLeft, token.Ident)
	expectKinds(t, "{ a, ... }@args: x ? y",
		token.LBrace, token.Ident, token.Comma, token.Ellipsis, token.RBrace, token.At, token.Ident,
		token.Colon, token.Ident, token.Question, token.Ident)
	expectKinds(t, "1 + 2 - 3 * 4 / 5",
		token.Integer, token.Add, token.Integer, token.Sub, token.Integer, token.Mul, token.Integer, token.Div, token.Integer)
}

func TestNumbers(t *testing.T) {
	expectKinds(t, "1 1.5 .5 2.5e-3 10", token.Integer, token.Float, token.Float, token.Float, token.Integer)
}

func TestPathsAndURIs(t *testing.T) {
	expectKinds(t, "./foo.nix ../bar ~/src <nixpkgs> <nixpkgs/lib> a/b",
		token.Path, token.Path, token.Path, token.Path, token.Path, token.Path)
	expectKinds(t, "https://example.org/x?y=1", token.URI)
	expectKinds(t, "a//b", token.Ident, token.Update, token.Ident)
	expectKinds(t, "x: x", token.Ident, token.Colon, token.Ident)
}

func TestPathInterpolation(t *testing.T) {
	expectKinds(t, "./foo/${name}.nix",
		token.Path, token.InterpolStart, token.Ident, token.InterpolEnd, token.Path)
	expectKinds(t, "./${a}${b} c",
		token.Path, token.InterpolStart, token.Ident, token.InterpolEnd,
		token.InterpolStart, token.Ident, token.InterpolEnd, token.Ident)
}

func TestStrings(t *testing.T) {
	expectKinds(t, `"hello ${name}!"`,
		token.StringStart, token.StringContent, token.InterpolStart, token.Ident, token.InterpolEnd,
		token.StringContent, token.StringEnd)
	expectKinds(t, `"a \" b \${c} $${d}"`,
		token.StringStart, token.StringContent, token.StringEnd)
	expectKinds(t, `""`, token.StringStart, token.StringEnd)
	expectKinds(t, `"${ { a = 1; }.a }"`,
		token.StringStart, token.InterpolStart, token.LBrace, token.Ident, token.Assign, token.Integer,
		token.Semicolon, token.RBrace, token.Dot, token.Ident, token.InterpolEnd, token.StringEnd)
}

func TestIndentedStrings(t *testing.T) {
	expectKinds(t, "''\n  echo ${x}\n''",
		token.StringStart, token.StringContent, token.InterpolStart, token.Ident, token.InterpolEnd,
		token.StringContent, token.StringEnd)
	expectKinds(t, "'' ''' ''${x} ''\\n ''",
		token.StringStart, token.StringContent, token.StringEnd)
}

func TestDynamicAttr(t *testing.T) {
	expectKinds(t, "{ ${a} = 1; }",
		token.LBrace, token.InterpolStart, token.Ident, token.InterpolEnd, token.Assign, token.Integer,
		token.Semicolon, token.RBrace)
}

func TestCommentsAreTokens(t *testing.T) {
	toks, _ := lex(t, "# head\na /* mid */ b")
	got := kinds(toks, false)
	want := []token.Kind{
		token.Comment, token.Whitespace, token.Ident, token.Whitespace, token.Comment,
		token.Whitespace, token.Ident, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"open`, "unterminated string literal"},
		{"/* open", "unterminated block comment"},
		{"a & b", "unexpected character \"&\""},
	}
	for _, tt := range tests {
		_, rep := lex(t, tt.src)
		if len(rep.messages) == 0 || rep.messages[0] != tt.want {
			t.Errorf("%q: errors %v, want %q", tt.src, rep.messages, tt.want)
		}
	}
}

func TestSpans(t *testing.T) {
	toks, _ := lex(t, "a  = 12;")
	num := toks[4]
	if num.Kind != token.Integer || num.Span.Start != 5 || num.Span.End != 7 || num.Text != "12" {
		t.Fatalf("integer token = %+v", num)
	}
}
