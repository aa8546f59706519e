// Package rules is the lint catalogue. Every rule is a pure function of the
// element it is dispatched on and the session; rules never mutate the tree.
package rules

import (
	"nixlint/internal/lint"
)

// All returns a fresh instance of every rule, ordered by code.
func All() []lint.Rule {
	return []lint.Rule{
		newBoolComparison(),
		newEmptyLetIn(),
		newManualInherit(),
		newManualInheritFrom(),
		newLegacyLetSyntax(),
		newCollapsibleLetIn(),
		newEtaReduction(),
		newUselessParens(),
		newUnquotedSplice(),
		newEmptyPattern(),
		newRedundantPatternBind(),
		newUnquotedURI(),
		newDeprecatedIsNull(),
		newEmptyInherit(),
		newFasterGroupBy(),
		newFasterZipAttrsWith(),
		newDeprecatedToPath(),
		newBoolSimplification(),
		newUselessHasAttr(),
		newRepeatedKeys(),
		newLongRootPattern(),
		newLibFirst(),
		newEmptyListConcat(),
	}
}

// Default builds the registry of every rule minus the disabled names.
func Default(disabled []string) *lint.Map {
	return lint.NewMap(All(), disabled)
}

type base struct{ meta lint.Meta }

func (b base) Meta() lint.Meta { return b.meta }
