package lexer

import (
	"nixlint/internal/source"
)

// Reporter: тонкий интерфейс, чтобы не тянуть syntax сюда.
// Лексер **только вызывает** его с параметрами; ошибки собирает парсер.
type Reporter interface {
	Report(span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(sp, msg)
	}
}
