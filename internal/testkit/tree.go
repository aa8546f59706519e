// Package testkit holds tree checks shared by parser tests and fuzz
// harnesses.
package testkit

import (
	"errors"
	"fmt"
	"strings"

	"nixlint/internal/syntax"
)

// CheckTree runs the structural invariants of a parsed tree against the
// text it was parsed from:
//  1. the root covers the whole text and reproduces it
//  2. every element nests inside its parent
//  3. siblings are contiguous and ordered
//  4. token texts concatenated in preorder give back the text
func CheckTree(tree *syntax.Tree, src string) error {
	if tree == nil {
		return errors.New("nil tree")
	}
	root := tree.Root()
	if root.Text() != src {
		return fmt.Errorf("root text = %q, want %q", root.Text(), src)
	}

	var (
		sb  strings.Builder
		err error
	)
	syntax.Walk(root, func(e syntax.Element) bool {
		if err != nil {
			return false
		}
		if tok, ok := e.(*syntax.Token); ok {
			sb.WriteString(tok.Text())
		}
		p := e.Parent()
		if p == nil {
			return true
		}
		if !p.Span().ContainsSpan(e.Span()) {
			err = fmt.Errorf("%s %v escapes parent %s %v", e.Kind(), e.Span(), p.Kind(), p.Span())
			return false
		}
		if prev := syntax.PrevSibling(e); prev != nil && prev.Span().End != e.Span().Start {
			err = fmt.Errorf("%s %v does not follow %s %v", e.Kind(), e.Span(), prev.Kind(), prev.Span())
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	if sb.String() != src {
		return fmt.Errorf("token text = %q, want %q", sb.String(), src)
	}
	return nil
}
