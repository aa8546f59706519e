package syntax

import (
	"fmt"

	"nixlint/internal/token"
)

// Kind tags every tree element. Token kinds share their numeric value with
// token.Kind; node kinds start at nodeBase.
type Kind uint16

const nodeBase Kind = 128

// TokenKind converts a lexical kind into an element kind.
func TokenKind(k token.Kind) Kind { return Kind(k) }

// IsToken reports whether the kind names a leaf token.
func (k Kind) IsToken() bool { return k < nodeBase }

// Token returns the lexical kind of a token element kind.
func (k Kind) Token() token.Kind {
	if !k.IsToken() {
		return token.Invalid
	}
	return token.Kind(k)
}

const (
	NodeRoot Kind = nodeBase + iota
	NodeError
	NodeApply
	NodeAssert
	NodeAttrpath
	NodeAttrpathValue
	NodeAttrSet
	NodeBinOp
	NodeDynamic
	NodeHasAttr
	NodeIdent
	NodeIdentParam
	NodeIfElse
	NodeInherit
	NodeInheritFrom
	NodeInterpol
	NodeLambda
	NodeLegacyLet
	NodeLetIn
	NodeList
	NodeLiteral
	NodeParen
	NodePatBind
	NodePatEntry
	NodePath
	NodePattern
	NodeSelect
	NodeString
	NodeUnaryOp
	NodeWith

	nodeEnd
)

var nodeNames = [...]string{
	NodeRoot - nodeBase:          "NODE_ROOT",
	NodeError - nodeBase:         "NODE_ERROR",
	NodeApply - nodeBase:         "NODE_APPLY",
	NodeAssert - nodeBase:        "NODE_ASSERT",
	NodeAttrpath - nodeBase:      "NODE_ATTRPATH",
	NodeAttrpathValue - nodeBase: "NODE_ATTRPATH_VALUE",
	NodeAttrSet - nodeBase:       "NODE_ATTR_SET",
	NodeBinOp - nodeBase:         "NODE_BIN_OP",
	NodeDynamic - nodeBase:       "NODE_DYNAMIC",
	NodeHasAttr - nodeBase:       "NODE_HAS_ATTR",
	NodeIdent - nodeBase:         "NODE_IDENT",
	NodeIdentParam - nodeBase:    "NODE_IDENT_PARAM",
	NodeIfElse - nodeBase:        "NODE_IF_ELSE",
	NodeInherit - nodeBase:       "NODE_INHERIT",
	NodeInheritFrom - nodeBase:   "NODE_INHERIT_FROM",
	NodeInterpol - nodeBase:      "NODE_INTERPOL",
	NodeLambda - nodeBase:        "NODE_LAMBDA",
	NodeLegacyLet - nodeBase:     "NODE_LEGACY_LET",
	NodeLetIn - nodeBase:         "NODE_LET_IN",
	NodeList - nodeBase:          "NODE_LIST",
	NodeLiteral - nodeBase:       "NODE_LITERAL",
	NodeParen - nodeBase:         "NODE_PAREN",
	NodePatBind - nodeBase:       "NODE_PAT_BIND",
	NodePatEntry - nodeBase:      "NODE_PAT_ENTRY",
	NodePath - nodeBase:          "NODE_PATH",
	NodePattern - nodeBase:       "NODE_PATTERN",
	NodeSelect - nodeBase:        "NODE_SELECT",
	NodeString - nodeBase:        "NODE_STRING",
	NodeUnaryOp - nodeBase:       "NODE_UNARY_OP",
	NodeWith - nodeBase:          "NODE_WITH",
}

func (k Kind) String() string {
	if k.IsToken() {
		return token.Kind(k).String()
	}
	if k < nodeEnd {
		return nodeNames[k-nodeBase]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsExpr reports whether nodes of this kind can stand as an expression.
func (k Kind) IsExpr() bool {
	switch k {
	case NodeApply, NodeAssert, NodeAttrSet, NodeBinOp, NodeHasAttr, NodeIdent,
		NodeIfElse, NodeLambda, NodeLegacyLet, NodeLetIn, NodeList, NodeLiteral,
		NodeParen, NodePath, NodeSelect, NodeString, NodeUnaryOp, NodeWith, NodeError:
		return true
	}
	return false
}
