package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
	maxSeedBytes = 64 << 10
)

// languageSeeds cover every construct the rules look at.
var languageSeeds = []string{
	"",
	"a == true",
	"!(a == b)",
	"let in x",
	"let a = 1; in let b = 2; in a + b",
	"{ a = a; b = c.b; inherit; }",
	"let { x = 1; body = x; }",
	"x: f x",
	"{ a = (1); b = (let in (x)); }",
	"{ ${a} = ${b}; }",
	"{ }: 1",
	"{ ... }@x: x",
	"https://example.org",
	"isNull x",
	"lib.groupBy f a",
	"lib.zipAttrsWith f a",
	"builtins.toPath ./a",
	"if x ? a then x.a else d",
	"{ a.b = 1; a.c = 2; a.d = 3; }",
	"{ lib, a, b, c, d, e, f }: lib.groupBy f a",
	"{ a, lib }: a",
	"[] ++ x ++ []",
	"''\n  ${x}''\n''",
	"# comment\n/* block */ x",
	"{ a = ; }",
	"let a = 1",
	"(((",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds добавляет *.nix из testdata, если каталог есть.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".nix" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src))
		return nil
	})
}

func clamp(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
