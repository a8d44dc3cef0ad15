package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		expression string
		expected   float64
	}{
		{"2 + 2", 4},
		{"2 + 2 - 3", 1},
		{"2 + 2 x 3", 8},
		{"9 ÷ 9", 1},
		{"2\u00a0+\u00a04\u00a0-\u00a06\u00a0x\u00a08\u00a0÷\u00a016", 3},
		{"-3 x -3", 9},
		{"1.5 + 1.5", 3},
		{"7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			result, ok := Solve(tt.expression)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Solve should agree with plain Go arithmetic for well-formed expressions.
func TestSolveMatchesReferenceArithmetic(t *testing.T) {
	tests := []struct {
		expression string
		reference  float64
	}{
		{"3 + 4 x 5 - 6 ÷ 2", 3 + 4*5 - 6.0/2},
		{"100 ÷ 8 ÷ 2", 100.0 / 8 / 2},
		{"0.1 + 0.2", 0.1 + 0.2},
		{"12 - 4 - 3 x 2", 12 - 4 - 3*2},
		{"-7.5 x 2 + 1", -7.5*2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			result, ok := Solve(tt.expression)
			assert.True(t, ok)
			assert.Equal(t, tt.reference, result)
		})
	}
}

func TestSolveRejects(t *testing.T) {
	for _, expression := range []string{
		"",
		"5\u00a0+\u00a0",
		"5 x",
		"Divide by Zero",
		"5 5",
	} {
		_, ok := Solve(expression)
		assert.False(t, ok, "%q", expression)
	}
}

func TestSolveDivisionByZero(t *testing.T) {
	result, ok := Solve("5 ÷ 0")
	assert.True(t, ok)
	assert.True(t, math.IsInf(result, 1))
}
