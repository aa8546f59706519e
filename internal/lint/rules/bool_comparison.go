package rules

import (
	"fmt"

	"nixlint/internal/ast"
	"nixlint/internal/diag"
	"nixlint/internal/lint"
	"nixlint/internal/session"
	"nixlint/internal/syntax"
	"nixlint/internal/synth"
	"nixlint/internal/token"
)

const boolComparisonDoc = "## What it does\n" +
	"Checks for expressions of the form `x == true`, `x != true` and\n" +
	"suggests using the variable directly.\n\n" +
	"## Why is this bad?\n" +
	"Unnecessary code.\n\n" +
	"## Example\n" +
	"Instead of checking the value of `x`:\n\n" +
	"```nix\nif x == true then 0 else 1\n```\n\n" +
	"Use `x` directly:\n\n" +
	"```nix\nif x then 0 else 1\n```\n"

type boolComparison struct{ base }

func newBoolComparison() lint.Rule {
	return boolComparison{base{lint.Meta{
		Name:        "bool_comparison",
		Code:        1,
		Note:        "Unnecessary comparison with boolean",
		Explanation: boolComparisonDoc,
		Kinds:       []syntax.Kind{syntax.NodeBinOp},
	}}}
}

func boolLiteral(n *syntax.Node) (value, ok bool) {
	switch {
	case ast.IsIdentNamed(n, "true"):
		return true, true
	case ast.IsIdentNamed(n, "false"):
		return false, true
	}
	return false, false
}

func (r boolComparison) Validate(el syntax.Element, _ *session.Info) *diag.Report {
	n, ok := asNode(el)
	if !ok {
		return nil
	}
	bin, _ := ast.AsBinOp(n)
	op := bin.Operator()
	if op != token.Equal && op != token.NotEqual {
		return nil
	}
	lhs, rhs := bin.LHS(), bin.RHS()
	if lhs == nil || rhs == nil {
		return nil
	}
	other, lit := lhs, rhs
	value, isBool := boolLiteral(rhs)
	if !isBool {
		if value, isBool = boolLiteral(lhs); !isBool {
			return nil
		}
		other, lit = rhs, lhs
	}

	// `x == true` and `x != false` keep x; the other two negate it
	var fix *syntax.Node
	if value == (op == token.Equal) {
		fix = other
	} else {
		operand := other
		if !ast.IsAtom(other) {
			operand = synth.Parenthesize(other)
		}
		fix = synth.UnaryNot(operand)
	}
	msg := fmt.Sprintf("Comparing `%s` with boolean literal `%s`", other.Text(), lit.Text())
	return r.meta.Report().WithSuggestion(n.Span(), msg, diag.NewSuggestion(n.Span(), fix))
}
