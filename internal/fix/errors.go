package fix

import (
	"errors"
	"fmt"
	"strings"

	"nixlint/internal/diag"
	"nixlint/internal/syntax"
)

var (
	// ErrSingleFix is the family of single-position failures.
	ErrSingleFix = errors.New("single fix")
	// ErrNoOp means no report with a suggestion covers the position.
	ErrNoOp = fmt.Errorf("%w: nothing to fix", ErrSingleFix)
	// ErrSyntax means the input must parse cleanly before fixing everything.
	ErrSyntax = errors.New("source has syntax errors, refusing to fix")
	// ErrInternal marks a rule that produced unparsable output.
	ErrInternal = errors.New("internal fix error")
)

// OutOfBoundsError reports a position past the text.
type OutOfBoundsError struct {
	Line, Col int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position out of bounds: line %d, col %d", e.Line, e.Col)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrSingleFix }

// ConversionError reports a position that does not fit a byte offset.
type ConversionError struct {
	Value int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%d is too large", e.Value)
}

func (e *ConversionError) Unwrap() error { return ErrSingleFix }

// BrokenFixError is returned when the output of a round no longer parses.
type BrokenFixError struct {
	Codes  []diag.Code
	Round  int
	Errors []syntax.ParseError
}

func (e *BrokenFixError) Error() string {
	codes := make([]string, 0, len(e.Codes))
	for _, c := range e.Codes {
		codes = append(codes, c.String())
	}
	msg := fmt.Sprintf("fix round %d (%s) produced invalid source", e.Round, strings.Join(codes, ", "))
	if len(e.Errors) > 0 {
		msg += ": " + e.Errors[0].Error()
	}
	return msg
}

func (e *BrokenFixError) Unwrap() error { return ErrInternal }
