package display

import (
	"strings"
	"unicode/utf8"

	"github.com/codefionn/calcpad/internal/calc"
)

// operatorSpacer surrounds operators on the display. It is whitespace to
// calc.Tokenize but keeps the display from collapsing the gap.
const operatorSpacer = "\u00a0"

// CheckSyntaxOnInput decides whether symbol may be appended to text.
// Operators must follow a number, a decimal point must directly follow a
// digit of a number that has none yet, digits are always allowed and
// anything else is rejected.
func CheckSyntaxOnInput(symbol, text string) bool {
	tokens := calc.NormalizeSymbols(calc.Tokenize(text))
	last := tokens[len(tokens)-1]

	switch {
	case calc.IsOperator(symbol):
		return calc.IsCalcNumber(last)
	case symbol == calc.SymbolDecimal:
		if strings.Contains(last, calc.SymbolDecimal) {
			return false
		}
		r, _ := utf8.DecodeLastRuneInString(text)
		return isDigit(r)
	default:
		r, size := utf8.DecodeRuneInString(symbol)
		return size == len(symbol) && isDigit(r)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// render returns what appending symbol adds to the display
func render(symbol string) string {
	if calc.IsOperator(symbol) {
		return operatorSpacer + symbol + operatorSpacer
	}
	return symbol
}

// endsWithOperatorToken reports whether text ends in a complete operator
// token, that is an operator standing on its own after a number. A lone
// "-" after an operator, or at the start, is a leftover sign instead.
func endsWithOperatorToken(text string) bool {
	tokens := calc.Tokenize(text)
	n := len(tokens)
	if n < 2 || !calc.IsOperator(tokens[n-1]) {
		return false
	}
	for i := n - 2; i >= 0; i-- {
		if tokens[i] != "" {
			return calc.IsCalcNumber(tokens[i])
		}
	}
	return false
}
