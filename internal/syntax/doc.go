// Package syntax holds the concrete syntax tree of a Nix file.
//
// The tree is lossless: every byte of the input, whitespace and comments
// included, belongs to exactly one Token, and the text of a Node is the
// concatenation of its children. Nodes and tokens are both Elements; each
// element has a Kind and a byte Span into the text it was parsed from.
//
// Trees are immutable once built. Code that edits source text must reparse
// it instead of patching a tree; stale trees keep pointing at the old text.
//
// Recovered syntax errors appear in the tree as NodeError regions and are
// listed in Tree.Errors.
package syntax
