package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSyntaxOnInput(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		text     string
		expected bool
	}{
		{"decimal after digit", ".", "5", true},
		{"digit after digit", "1", "5", true},
		{"digit after bare decimal", "9", ".", true},
		{"digit on empty display", "3", "", true},
		{"operator after number", "+", "12", true},
		{"operator after trailing decimal", "x", "12.", true},
		{"operator after negative number", "÷", "5\u00a0+\u00a0-3", true},
		{"second decimal", ".", ".", false},
		{"operator on empty display", "+", "", false},
		{"operator after operator", "-", " + ", false},
		{"operator after spaced operator", "x", "5\u00a0+\u00a0", false},
		{"decimal in decimal number", ".", "5.3", false},
		{"decimal after operator", ".", "5\u00a0+\u00a0", false},
		{"decimal on empty display", ".", "", false},
		{"unknown symbol", "a", "5", false},
		{"empty symbol", "", "5", false},
		{"multi digit symbol", "12", "5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheckSyntaxOnInput(tt.symbol, tt.text))
		})
	}
}

func TestEndsWithOperatorToken(t *testing.T) {
	assert.True(t, endsWithOperatorToken("5\u00a0+"))
	assert.True(t, endsWithOperatorToken("5\u00a0-"))
	assert.True(t, endsWithOperatorToken("5 x"))
	assert.False(t, endsWithOperatorToken("-"))
	assert.False(t, endsWithOperatorToken("5\u00a0x\u00a0-"))
	assert.False(t, endsWithOperatorToken("5"))
	assert.False(t, endsWithOperatorToken(""))
}
