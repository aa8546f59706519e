package rules

import (
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
	"nixlint/internal/token"
)

const unquotedURIDoc = "## What it does\n" +
	"Checks for URI expressions that are not quoted.\n\n" +
	"## Why is this bad?\n" +
	"The Nix language has a special syntax for URLs even though quoted\n" +
	"strings can also be used to represent them. Unlike paths, URLs do\n" +
	"not have any special properties in the Nix expression language\n" +
	"that would make the difference useful. Moreover, using variable\n" +
	"expansion in URLs requires some URLs to be quoted strings anyway.\n" +
	"So the most consistent approach is to always use quoted strings to\n" +
	"represent URLs. Additionally, a semicolon immediately after the\n" +
	"URL can be mistaken for a part of URL by language-agnostic tools\n" +
	"such as terminal emulators.\n\n" +
	"See RFC 00045 for more.\n\n" +
	"## Example\n\n" +
	"```nix\ninputs = {\n  gitignore.url = github:hercules-ci/gitignore.nix;\n}\n```\n\n" +
	"Quote the URI expression:\n\n" +
	"```nix\ninputs = {\n  gitignore.url = \"github:hercules-ci/gitignore.nix\";\n}\n```\n"

type unquotedURI struct{ base }

func newUnquotedURI() lint.Rule {
	return unquotedURI{base{lint.Meta{
		Name:        "unquoted_uri",
		Code:        12,
		Note:        "Found unquoted URI expression",
		Explanation: unquotedURIDoc,
		Kinds:       []syntax.Kind{syntax.TokenKind(token.URI)},
	}}}
}

func (r unquotedURI) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	tok, ok := el.(*syntax.Token)
	if !ok || tok.TokenKind() != token.URI {
		return nil
	}
	return r.meta.Report().WithSuggestion(tok.Span(), "Consider quoting this URI expression",
		diag.NewSuggestion(tok.Span(), synth.Quote(tok)))
}
