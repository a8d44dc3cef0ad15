package calc

import (
	"github.com/codefionn/calcpad/internal/logger"
)

// FormatExpression turns display text into the normalized token sequence
// the evaluator works on. Empty tokens from repeated separators are dropped.
func FormatExpression(expression string) []string {
	return NormalizeSymbols(dropEmpty(Tokenize(expression)))
}

// Solve evaluates display text. ok is false when there is nothing to solve,
// when the expression ends on an operator, or when it is otherwise malformed;
// callers leave the display untouched in that case.
func Solve(expression string) (result float64, ok bool) {
	tokens := FormatExpression(expression)
	if len(tokens) == 0 || !CheckSyntaxOnSolve(tokens) {
		return 0, false
	}

	postfix, err := ConvertFromInfixToPostfix(tokens)
	if err != nil {
		logger.Debug("calc: rejecting %q: %v", expression, err)
		return 0, false
	}

	result, err = EvaluatePostfixExpression(postfix)
	if err != nil {
		logger.Debug("calc: rejecting %q: %v", expression, err)
		return 0, false
	}
	return result, true
}
