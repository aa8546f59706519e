// Package fuzztests houses Go fuzz harnesses for the lint pipeline
// (source -> lexer -> parser -> rules -> fixes). They guard against panics,
// hangs and fixes that break the text.
//
// Назначение: гонять произвольные байты через лексер, парсер, линты и
// fix-all.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
