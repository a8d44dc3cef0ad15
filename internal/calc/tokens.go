// Package calc implements the calculator's expression engine: tokenizing a
// display string, converting it to postfix form and evaluating it, plus the
// formatting policy that fits a result onto the display.
package calc

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Surface glyphs shown on the keypad and display.
const (
	SymbolAdd      = "+"
	SymbolSubtract = "-"
	SymbolMultiply = "x"
	SymbolTimes    = "×"
	SymbolDivide   = "÷"
	SymbolDecimal  = "."
)

// Normalized operators understood by the evaluator.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "*"
	OpDivide   = "/"
)

var calcNumberPattern = regexp.MustCompile(`^-?[0-9]+\.*[0-9]*$`)

// Tokenize splits an expression on every whitespace rune, including the
// non-breaking spaces the display puts around operators. Consecutive
// separators produce empty tokens and the result is never empty.
func Tokenize(expression string) []string {
	tokens := make([]string, 0, 4)
	start := 0
	for i, r := range expression {
		if unicode.IsSpace(r) {
			tokens = append(tokens, expression[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(tokens, expression[start:])
}

// NormalizeSymbols returns a copy of tokens with the display glyphs for
// multiplication and division replaced by their evaluator operators.
func NormalizeSymbols(tokens []string) []string {
	normalized := make([]string, len(tokens))
	for i, token := range tokens {
		switch token {
		case SymbolMultiply, SymbolTimes:
			normalized[i] = OpMultiply
		case SymbolDivide:
			normalized[i] = OpDivide
		default:
			normalized[i] = token
		}
	}
	return normalized
}

// IsCalcNumber reports whether token is a number as typed on the keypad:
// an optional minus sign, at least one digit, then an optional decimal part.
func IsCalcNumber(token string) bool {
	return calcNumberPattern.MatchString(token)
}

// IsOperator reports whether token is one of the operator glyphs a user can
// type. Normalized operators ("*", "/") are not keypad symbols.
func IsOperator(token string) bool {
	switch token {
	case SymbolAdd, SymbolSubtract, SymbolMultiply, SymbolTimes, SymbolDivide:
		return true
	}
	return false
}

func isNormalizedOperator(token string) bool {
	_, ok := precedence[token]
	return ok
}

// CheckSyntaxOnSolve reports whether a normalized token sequence may be
// evaluated. An expression may not end on an operator.
func CheckSyntaxOnSolve(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	return !isNormalizedOperator(tokens[len(tokens)-1])
}

func dropEmpty(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token != "" {
			kept = append(kept, token)
		}
	}
	return kept
}
