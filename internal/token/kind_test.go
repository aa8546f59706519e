package token_test

import (
	"testing"

	"nixlint/internal/token"
)

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.Ident:       "TOKEN_IDENT",
		token.URI:         "TOKEN_URI",
		token.Update:      "TOKEN_UPDATE",
		token.PipeLeft:    "TOKEN_PIPE_LEFT",
		token.KindCount:   "Kind(56)",
		token.Whitespace:  "TOKEN_WHITESPACE",
		token.Implication: "TOKEN_IMPLICATION",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestKindClasses(t *testing.T) {
	for _, k := range []token.Kind{token.Whitespace, token.Comment} {
		if !k.IsTrivia() {
			t.Errorf("%v should be trivia", k)
		}
	}
	if token.Ident.IsTrivia() {
		t.Error("ident must not be trivia")
	}

	for _, k := range []token.Kind{token.KwAssert, token.KwOr, token.KwWith} {
		if !k.IsKeyword() {
			t.Errorf("%v should be a keyword", k)
		}
	}
	if token.Ident.IsKeyword() || token.LBrace.IsKeyword() {
		t.Error("ident/brace must not be keywords")
	}

	for _, k := range []token.Kind{token.Concat, token.Update, token.Implication, token.PipeRight} {
		if !k.IsBinaryOperator() {
			t.Errorf("%v should be a binary operator", k)
		}
	}
	if token.Invert.IsBinaryOperator() || token.Semicolon.IsBinaryOperator() {
		t.Error("invert/semicolon must not be binary operators")
	}
}

func TestLookupKeyword(t *testing.T) {
	for word, want := range map[string]token.Kind{"let": token.KwLet, "inherit": token.KwInherit, "or": token.KwOr} {
		got, ok := token.LookupKeyword(word)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v,%v want %v,true", word, got, ok, want)
		}
	}
	if got, ok := token.LookupKeyword("letter"); ok || got != token.Ident {
		t.Errorf("LookupKeyword(letter) = %v,%v", got, ok)
	}
}
