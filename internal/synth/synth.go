// Package synth builds replacement syntax for fixes.
//
// There is no structural tree builder: a replacement is produced by writing
// the smallest snippet that contains a node of the wanted shape, parsing it
// standalone and extracting the first node of the target kind in preorder.
// Text spliced into snippets always comes from already parsed source.
//
// Failing to find the target, or a snippet that does not parse, is a bug in
// the calling rule and panics with *Error.
package synth

import (
	"fmt"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"nixlint/internal/parser"
	"nixlint/internal/syntax"
)

// cacheSize bounds the number of distinct snippets kept parsed.
const cacheSize = 1024

// Error reports a snippet that does not yield the requested node.
type Error struct {
	Snippet string
	Kind    syntax.Kind
	Errors  []syntax.ParseError
}

func (e *Error) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, len(e.Errors))
		for i, pe := range e.Errors {
			msgs[i] = pe.Message
		}
		return fmt.Sprintf("synth: snippet %q does not parse: %s", e.Snippet, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("synth: no %s in snippet %q", e.Kind, e.Snippet)
}

// Stats: счётчики кэша сниппетов.
type Stats struct {
	Hits   int64
	Misses int64
	Len    int
}

var (
	trees  *lru.Cache[string, *syntax.Tree]
	hits   atomic.Int64
	misses atomic.Int64
)

func init() {
	c, err := lru.New[string, *syntax.Tree](cacheSize)
	if err != nil {
		panic(fmt.Errorf("synth: cache: %w", err))
	}
	trees = c
}

// CacheStats returns the snippet cache counters.
func CacheStats() Stats {
	return Stats{Hits: hits.Load(), Misses: misses.Load(), Len: trees.Len()}
}

// Parse parses a snippet standalone and returns its root. Trees are cached by
// snippet text and shared; they are immutable.
func Parse(snippet string) *syntax.Node {
	if t, ok := trees.Get(snippet); ok {
		hits.Add(1)
		return t.Root()
	}
	misses.Add(1)
	t := parser.Parse(snippet)
	if !t.OK() {
		panic(&Error{Snippet: snippet, Errors: t.Errors})
	}
	trees.Add(snippet, t)
	return t.Root()
}

// Extract parses snippet and returns its first node of kind in preorder.
func Extract(snippet string, kind syntax.Kind) *syntax.Node {
	root := Parse(snippet)
	if n := root.FirstDescendant(kind); n != nil {
		return n
	}
	panic(&Error{Snippet: snippet, Kind: kind})
}
