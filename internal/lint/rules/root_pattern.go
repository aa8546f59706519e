package rules

import (
	"strings"

	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
)

// rootPattern returns the argument pattern of a file whose top-level
// expression is a lambda.
func rootPattern(el syntax.Element) (ast.Pattern, bool) {
	root, ok := asNode(el)
	if !ok {
		return ast.Pattern{}, false
	}
	lambda, ok := ast.AsLambda(root.FirstChildNode())
	if !ok {
		return ast.Pattern{}, false
	}
	return lambda.Pattern()
}

const longRootPatternDoc = "## What it does\n" +
	"Checks whether the pattern of the root lambda of a file is written on\n" +
	"a single line with too many entries.\n\n" +
	"## Why is this bad?\n" +
	"Long single-line patterns are hard to read and produce noisy diffs\n" +
	"whenever an argument is added or removed.\n\n" +
	"## Example\n\n" +
	"```nix\n{ lib, stdenv, fetchurl, pkg-config, zlib, openssl, python3 }:\nnull\n```\n\n" +
	"Put every entry on its own line:\n\n" +
	"```nix\n{\n  lib,\n  stdenv,\n  fetchurl,\n  pkg-config,\n  zlib,\n  openssl,\n  python3,\n}:\nnull\n```\n"

// maxInlineEntries is the largest root pattern kept on one line.
const maxInlineEntries = 6

type longRootPattern struct{ base }

func newLongRootPattern() lint.Rule {
	return longRootPattern{base{lint.Meta{
		Name:        "long_root_pattern",
		Code:        21,
		Note:        "Long pattern in the root lambda should be wrapped",
		Explanation: longRootPatternDoc,
		Kinds:       []syntax.Kind{syntax.NodeRoot},
	}}}
}

func (r longRootPattern) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	pat, ok := rootPattern(el)
	if !ok || len(pat.Entries()) <= maxInlineEntries || strings.Contains(pat.Text(), "\n") {
		return nil
	}
	return r.meta.Report().WithSuggestion(pat.Span(), "Split the long pattern line into multiple lines",
		diag.NewSuggestion(pat.Span(), synth.MultilinePattern(pat)))
}

const libFirstDoc = "## What it does\n" +
	"Checks that `lib` comes first in the pattern of the root lambda.\n\n" +
	"## Why is this bad?\n" +
	"Package and module files conventionally list `lib` first; a stable\n" +
	"position makes the argument list easier to scan.\n\n" +
	"## Example\n\n" +
	"```nix\n{ stdenv, lib, fetchurl }:\nnull\n```\n\n" +
	"Move `lib` to the front:\n\n" +
	"```nix\n{ lib, stdenv, fetchurl }:\nnull\n```\n"

type libFirst struct{ base }

func newLibFirst() lint.Rule {
	return libFirst{base{lint.Meta{
		Name:        "lib_first",
		Code:        22,
		Note:        "Lib should be the first in the pattern",
		Explanation: libFirstDoc,
		Kinds:       []syntax.Kind{syntax.NodeRoot},
	}}}
}

func (r libFirst) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	pat, ok := rootPattern(el)
	if !ok {
		return nil
	}
	for i, e := range pat.Entries() {
		name, ok := e.Name()
		if !ok || name.Name() != "lib" {
			continue
		}
		if i == 0 {
			return nil
		}
		return r.meta.Report().WithDiagnostic(pat.Span(), "`lib` should be the first in the list")
	}
	return nil
}
