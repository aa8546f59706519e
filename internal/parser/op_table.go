package parser

import "nixlint/internal/token"

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет.
const (
	precPipe        = 1  // |> <|
	precImplication = 2  // ->
	precLogicalOr   = 3  // ||
	precLogicalAnd  = 4  // &&
	precEquality    = 5  // == !=
	precComparison  = 6  // < <= > >=
	precUpdate      = 7  // //
	precNot         = 8  // !x
	precAdditive    = 9  // + -
	precMul         = 10 // * /
	precConcat      = 11 // ++
	precHasAttr     = 12 // ?
	precNegate      = 13 // -x
)

// binaryPrec возвращает приоритет и ассоциативность оператора.
// Возвращает (приоритет, правоассоциативный); -1 для не-операторов.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.PipeRight:
		return precPipe, false
	case token.PipeLeft:
		return precPipe, true
	case token.Implication:
		return precImplication, true
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.Equal, token.NotEqual:
		return precEquality, false
	case token.Less, token.LessOrEq, token.More, token.MoreOrEq:
		return precComparison, false
	case token.Update:
		return precUpdate, true
	case token.Add, token.Sub:
		return precAdditive, false
	case token.Mul, token.Div:
		return precMul, false
	case token.Concat:
		return precConcat, true
	case token.Question:
		return precHasAttr, false
	default:
		return -1, false
	}
}
