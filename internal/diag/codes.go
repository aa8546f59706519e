package diag

import "fmt"

// Code: стабильный номер правила. Номера не переиспользуются.
type Code uint32

// CodeSyntax is reserved for parse errors folded into lint output.
const CodeSyntax Code = 0

// SyntaxNote is the note of every syntax-error report.
const SyntaxNote = "Syntax error"

// Severity derives the severity from the code.
func (c Code) Severity() Severity {
	if c == CodeSyntax {
		return SevError
	}
	return SevWarning
}

// String renders the code the way users type it: W04, E00.
func (c Code) String() string {
	return fmt.Sprintf("%s%02d", c.Severity().Letter(), uint32(c))
}
