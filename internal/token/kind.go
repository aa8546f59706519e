package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks bytes the lexer could not classify.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Whitespace // пробелы, табы, переводы строк
	Comment    // # ... и /* ... */

	Ident
	Integer
	Float
	Path // ./foo, ~/bar, <nixpkgs>, фрагменты пути с интерполяцией
	URI  // https://example.org

	StringStart   // " или ''
	StringContent // текст между кавычками
	StringEnd     // " или ''
	InterpolStart // ${
	InterpolEnd   // } закрывающая интерполяцию

	KwAssert
	KwElse
	KwIf
	KwIn
	KwInherit
	KwLet
	KwOr
	KwRec
	KwThen
	KwWith

	LBrace    // {
	RBrace    // }
	LBrack    // [
	RBrack    // ]
	LParen    // (
	RParen    // )
	Assign    // =
	At        // @
	Colon     // :
	Comma     // ,
	Dot       // .
	Ellipsis  // ...
	Question  // ?
	Semicolon // ;

	Concat      // ++
	Invert      // !
	Update      // //
	Add         // +
	Sub         // -
	Mul         // *
	Div         // /
	AndAnd      // &&
	OrOr        // ||
	Equal       // ==
	NotEqual    // !=
	Less        // <
	LessOrEq    // <=
	More        // >
	MoreOrEq    // >=
	Implication // ->
	PipeRight   // |>
	PipeLeft    // <|

	// KindCount is the number of token kinds; syntax node kinds start above it.
	KindCount
)

var kindNames = [...]string{
	Invalid:       "TOKEN_ERROR",
	EOF:           "EOF",
	Whitespace:    "TOKEN_WHITESPACE",
	Comment:       "TOKEN_COMMENT",
	Ident:         "TOKEN_IDENT",
	Integer:       "TOKEN_INTEGER",
	Float:         "TOKEN_FLOAT",
	Path:          "TOKEN_PATH",
	URI:           "TOKEN_URI",
	StringStart:   "TOKEN_STRING_START",
	StringContent: "TOKEN_STRING_CONTENT",
	StringEnd:     "TOKEN_STRING_END",
	InterpolStart: "TOKEN_INTERPOL_START",
	InterpolEnd:   "TOKEN_INTERPOL_END",
	KwAssert:      "TOKEN_ASSERT",
	KwElse:        "TOKEN_ELSE",
	KwIf:          "TOKEN_IF",
	KwIn:          "TOKEN_IN",
	KwInherit:     "TOKEN_INHERIT",
	KwLet:         "TOKEN_LET",
	KwOr:          "TOKEN_OR",
	KwRec:         "TOKEN_REC",
	KwThen:        "TOKEN_THEN",
	KwWith:        "TOKEN_WITH",
	LBrace:        "TOKEN_L_BRACE",
	RBrace:        "TOKEN_R_BRACE",
	LBrack:        "TOKEN_L_BRACK",
	RBrack:        "TOKEN_R_BRACK",
	LParen:        "TOKEN_L_PAREN",
	RParen:        "TOKEN_R_PAREN",
	Assign:        "TOKEN_ASSIGN",
	At:            "TOKEN_AT",
	Colon:         "TOKEN_COLON",
	Comma:         "TOKEN_COMMA",
	Dot:           "TOKEN_DOT",
	Ellipsis:      "TOKEN_ELLIPSIS",
	Question:      "TOKEN_QUESTION",
	Semicolon:     "TOKEN_SEMICOLON",
	Concat:        "TOKEN_CONCAT",
	Invert:        "TOKEN_INVERT",
	Update:        "TOKEN_UPDATE",
	Add:           "TOKEN_ADD",
	Sub:           "TOKEN_SUB",
	Mul:           "TOKEN_MUL",
	Div:           "TOKEN_DIV",
	AndAnd:        "TOKEN_AND_AND",
	OrOr:          "TOKEN_OR_OR",
	Equal:         "TOKEN_EQUAL",
	NotEqual:      "TOKEN_NOT_EQUAL",
	Less:          "TOKEN_LESS",
	LessOrEq:      "TOKEN_LESS_OR_EQ",
	More:          "TOKEN_MORE",
	MoreOrEq:      "TOKEN_MORE_OR_EQ",
	Implication:   "TOKEN_IMPLICATION",
	PipeRight:     "TOKEN_PIPE_RIGHT",
	PipeLeft:      "TOKEN_PIPE_LEFT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsTrivia reports whether tokens of this kind carry no meaning for the parser.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwAssert && k <= KwWith
}

// IsBinaryOperator reports whether the kind can join two operands.
func (k Kind) IsBinaryOperator() bool {
	return k >= Concat && k <= PipeLeft && k != Invert
}
