package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFromInfixToPostfix(t *testing.T) {
	tests := []struct {
		name     string
		infix    []string
		expected []string
	}{
		{"single number", []string{"7"}, []string{"7"}},
		{"addition", []string{"2", "+", "3"}, []string{"2", "3", "+"}},
		{"precedence", []string{"2", "+", "3", "*", "4"}, []string{"2", "3", "4", "*", "+"}},
		{"left to right", []string{"8", "-", "3", "-", "1"}, []string{"8", "3", "-", "1", "-"}},
		{
			"mixed",
			[]string{"2", "+", "4", "-", "6", "*", "8", "/", "16"},
			[]string{"2", "4", "+", "6", "8", "*", "16", "/", "-"},
		},
		{"negative operand", []string{"-2", "*", "3"}, []string{"-2", "3", "*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postfix, err := ConvertFromInfixToPostfix(tt.infix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, postfix)
		})
	}
}

func TestConvertFromInfixToPostfixUnknownToken(t *testing.T) {
	_, err := ConvertFromInfixToPostfix([]string{"Divide", "by", "Zero"})
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestEvaluatePostfixExpression(t *testing.T) {
	tests := []struct {
		name     string
		postfix  []string
		expected float64
	}{
		{"single", []string{"7"}, 7},
		{"mixed", []string{"2", "4", "+", "6", "8", "*", "16", "/", "-"}, 3},
		{"operand order", []string{"10", "4", "-"}, 6},
		{"division order", []string{"8", "2", "/"}, 4},
		{"decimals", []string{"1.5", "2", "*"}, 3},
		{"trailing decimal point", []string{"5.", "1", "+"}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EvaluatePostfixExpression(tt.postfix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluatePostfixExpressionMalformed(t *testing.T) {
	_, err := EvaluatePostfixExpression([]string{"1", "+"})
	assert.ErrorIs(t, err, ErrMalformedExpression)

	_, err = EvaluatePostfixExpression([]string{"1", "2"})
	assert.ErrorIs(t, err, ErrMalformedExpression)

	_, err = EvaluatePostfixExpression(nil)
	assert.ErrorIs(t, err, ErrMalformedExpression)
}

func TestDoMath(t *testing.T) {
	cases := []struct {
		op       string
		expected float64
	}{
		{"+", 8},
		{"-", 4},
		{"*", 12},
		{"/", 3},
	}
	for _, c := range cases {
		result, err := DoMath(6, 2, c.op)
		require.NoError(t, err, c.op)
		assert.Equal(t, c.expected, result, c.op)
	}

	_, err := DoMath(1, 2, "%")
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestDoMathDivisionByZero(t *testing.T) {
	result, err := DoMath(5, 0, "/")
	require.NoError(t, err)
	assert.True(t, math.IsInf(result, 1))

	result, err = DoMath(-5, 0, "/")
	require.NoError(t, err)
	assert.True(t, math.IsInf(result, -1))

	result, err = DoMath(0, 0, "/")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result))
}
