// Package token defines lexical token kinds for Nix source.
// Invariants:
//   - The token stream is lossless: concatenating Token.Text of every token,
//     whitespace and comments included, reproduces the input exactly.
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments are ordinary tokens (Whitespace, Comment); the
//     parser attaches them to the tree instead of hiding them as trivia.
//   - String and path literals are split into parts (StringStart,
//     StringContent, InterpolStart ... InterpolEnd, StringEnd) so that
//     interpolations can be parsed as nested expressions.
package token
