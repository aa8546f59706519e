package lint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nixlint/internal/diag"
)

// ErrLintNotFound is wrapped by NotFoundError.
var ErrLintNotFound = errors.New("lint not found")

// NotFoundError reports an unknown lint code.
type NotFoundError struct {
	Code diag.Code
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lint with code `%d` not found", uint32(e.Code))
}

func (e *NotFoundError) Unwrap() error { return ErrLintNotFound }

// SyntaxExplanation is returned for code 0.
const SyntaxExplanation = `## What it does
Reports code that does not parse.

## Why is this bad?
Nix refuses to evaluate it, and nixlint cannot apply fixes to a file that
does not parse.

## Example

` + "```nix" + `
{ a = ; }
` + "```" + `

Complete or remove the broken binding.`

// Explain returns the explanation of the rule with code. Lookup goes over
// rules rather than a Map so disabled rules can still be explained.
func Explain(rules []Rule, code diag.Code) (string, error) {
	if code == diag.CodeSyntax {
		return SyntaxExplanation, nil
	}
	for _, r := range rules {
		if m := r.Meta(); m.Code == code {
			return m.Explanation, nil
		}
	}
	return "", &NotFoundError{Code: code}
}

// ByName finds a rule by name.
func ByName(rules []Rule, name string) (Rule, bool) {
	for _, r := range rules {
		if r.Meta().Name == name {
			return r, true
		}
	}
	return nil, false
}

// ParseCode accepts W04, w04, E00, 04 and 4.
func ParseCode(s string) (diag.Code, error) {
	digits := strings.TrimSpace(s)
	if digits != "" && strings.ContainsRune("WwEe", rune(digits[0])) {
		digits = digits[1:]
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid lint code %q: %w", s, err)
	}
	return diag.Code(n), nil
}
