package token

var keywords = map[string]Kind{
	"assert":  KwAssert,
	"else":    KwElse,
	"if":      KwIf,
	"in":      KwIn,
	"inherit": KwInherit,
	"let":     KwLet,
	"or":      KwOr,
	"rec":     KwRec,
	"then":    KwThen,
	"with":    KwWith,
}

// LookupKeyword returns the keyword kind for ident, or Ident.
func LookupKeyword(ident string) (Kind, bool) {
	if k, ok := keywords[ident]; ok {
		return k, true
	}
	return Ident, false
}
