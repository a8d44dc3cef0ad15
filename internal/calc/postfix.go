package calc

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedExpression is returned when operands and operators do not pair up
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrUnknownToken is returned for a token that is neither a number nor an operator
	ErrUnknownToken = errors.New("unknown token")
	// ErrUnknownOperator is returned by DoMath for an unsupported operator
	ErrUnknownOperator = errors.New("unknown operator")
)

// precedence ranks the normalized operators. Equal ranks resolve left to right.
var precedence = map[string]int{
	OpMultiply: 2,
	OpDivide:   2,
	OpAdd:      1,
	OpSubtract: 1,
}

// ConvertFromInfixToPostfix reorders a normalized infix token sequence into
// postfix form using the shunting-yard algorithm. There are no parentheses;
// negative numbers are number tokens with a leading minus.
func ConvertFromInfixToPostfix(tokens []string) ([]string, error) {
	operatorStack := make([]string, 0, len(tokens)/2+1)
	postfix := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if IsCalcNumber(token) {
			postfix = append(postfix, token)
			continue
		}

		rank, ok := precedence[token]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownToken, token)
		}

		for len(operatorStack) > 0 && precedence[operatorStack[len(operatorStack)-1]] >= rank {
			postfix = append(postfix, operatorStack[len(operatorStack)-1])
			operatorStack = operatorStack[:len(operatorStack)-1]
		}
		operatorStack = append(operatorStack, token)
	}

	for len(operatorStack) > 0 {
		postfix = append(postfix, operatorStack[len(operatorStack)-1])
		operatorStack = operatorStack[:len(operatorStack)-1]
	}

	return postfix, nil
}

// EvaluatePostfixExpression evaluates a postfix token sequence. Division by
// zero is not an error here; it yields ±Inf or NaN for the formatter to report.
func EvaluatePostfixExpression(postfix []string) (float64, error) {
	operandStack := make([]float64, 0, len(postfix))

	for _, token := range postfix {
		if IsCalcNumber(token) {
			value, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return 0, fmt.Errorf("failed to parse operand %q: %w", token, err)
			}
			operandStack = append(operandStack, value)
			continue
		}

		if len(operandStack) < 2 {
			return 0, fmt.Errorf("%w: operator %q is missing an operand", ErrMalformedExpression, token)
		}
		right := operandStack[len(operandStack)-1]
		left := operandStack[len(operandStack)-2]
		operandStack = operandStack[:len(operandStack)-2]

		result, err := DoMath(left, right, token)
		if err != nil {
			return 0, err
		}
		operandStack = append(operandStack, result)
	}

	if len(operandStack) != 1 {
		return 0, fmt.Errorf("%w: %d operands left on the stack", ErrMalformedExpression, len(operandStack))
	}
	return operandStack[0], nil
}

// DoMath applies one normalized binary operator.
func DoMath(left, right float64, operator string) (float64, error) {
	switch operator {
	case OpAdd:
		return left + right, nil
	case OpSubtract:
		return left - right, nil
	case OpMultiply:
		return left * right, nil
	case OpDivide:
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, operator)
	}
}
