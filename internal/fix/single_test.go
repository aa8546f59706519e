package fix

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"nixlint/internal/diag"
)

func TestSingleRemovesEmptyInherit(t *testing.T) {
	in := "{\n  inherit;\n  a = 1;\n}"
	res, err := Single(context.Background(), 2, 3, in, defaultMap(), nil)
	require.NoError(t, err)
	require.Equal(t, "{\n  a = 1;\n}", res.Source)
	require.Equal(t, diag.Code(14), res.Fixed.Code)
	require.Equal(t, uint32(1), res.Fixed.Span.Start)
}

func TestSingleSuggestionMustCoverPosition(t *testing.T) {
	in := "{ a = (b); }"

	res, err := Single(context.Background(), 1, 8, in, defaultMap(), nil)
	require.NoError(t, err)
	require.Equal(t, "{ a = b; }", res.Source)
	require.Equal(t, diag.Code(8), res.Fixed.Code)

	// the key is inside the reporting binding but outside the suggestion
	_, err = Single(context.Background(), 1, 3, in, defaultMap(), nil)
	require.ErrorIs(t, err, ErrNoOp)
}

func TestSingleFirstRuleWinsOnSameElement(t *testing.T) {
	// empty_let_in and useless_parens both report on the let; registration
	// order decides
	res, err := Single(context.Background(), 1, 9, "let in (x)", defaultMap(), nil)
	require.NoError(t, err)
	require.Equal(t, "(x)", res.Source)
	require.Equal(t, diag.Code(2), res.Fixed.Code)
}

func TestSingleToleratesSyntaxErrors(t *testing.T) {
	in := "{ a = !(x == y); b = ; }"
	res, err := Single(context.Background(), 1, 9, in, defaultMap(), nil)
	require.NoError(t, err)
	require.Equal(t, "{ a = x != y; b = ; }", res.Source)
}

func TestSingleErrors(t *testing.T) {
	in := "a + b\n"
	tests := []struct {
		name      string
		line, col int
		check     func(error) bool
	}{
		{"no fix", 1, 1, func(err error) bool { return errors.Is(err, ErrNoOp) }},
		{"missing line", 5, 1, func(err error) bool {
			var oob *OutOfBoundsError
			return errors.As(err, &oob) && oob.Line == 5
		}},
		{"past end", 2, 1, func(err error) bool {
			var oob *OutOfBoundsError
			return errors.As(err, &oob)
		}},
		{"zero column", 1, 0, func(err error) bool {
			var oob *OutOfBoundsError
			return errors.As(err, &oob)
		}},
		{"huge line", math.MaxInt64, 1, func(err error) bool {
			var conv *ConversionError
			return errors.As(err, &conv) && conv.Error() == "9223372036854775807 is too large"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Single(context.Background(), tt.line, tt.col, in, defaultMap(), nil)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrSingleFix)
			if !tt.check(err) {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	text := "ab\ncd\n\nx"
	for _, tt := range []struct {
		line, col int
		want      uint32
	}{
		{1, 1, 0},
		{1, 3, 2},
		{2, 2, 4},
		{3, 1, 6},
		{4, 1, 7},
	} {
		got, err := Offset(text, tt.line, tt.col)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "line %d col %d", tt.line, tt.col)
	}
	_, err := Offset(text, 4, 2)
	require.Error(t, err)
}
