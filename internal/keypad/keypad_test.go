package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key      string
		expected Action
	}{
		{"7", Action{Kind: KindSymbol, Symbol: "7"}},
		{"0", Action{Kind: KindSymbol, Symbol: "0"}},
		{"*", Action{Kind: KindSymbol, Symbol: "x"}},
		{"X", Action{Kind: KindSymbol, Symbol: "x"}},
		{"/", Action{Kind: KindSymbol, Symbol: "÷"}},
		{",", Action{Kind: KindSymbol, Symbol: "."}},
		{"Enter", Action{Kind: KindSolve}},
		{"=", Action{Kind: KindSolve}},
		{"Escape", Action{Kind: KindClear}},
		{"esc", Action{Kind: KindClear}},
		{"Backspace", Action{Kind: KindBackspace}},
		{"o", Action{Kind: KindNegate}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, ok := Lookup(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, key := range []string{"", "space", "a", "(", "%"} {
		_, ok := Lookup(key)
		assert.False(t, ok, key)
	}
}

func TestLayoutKeysResolve(t *testing.T) {
	for _, row := range Layout {
		for _, b := range row {
			action, ok := Lookup(b.Key)
			assert.True(t, ok, b.Label)
			assert.Equal(t, b.Action, action, b.Label)
		}
	}
}

func TestFind(t *testing.T) {
	row, col, ok := Find("*")
	assert.True(t, ok)
	assert.Equal(t, "x", Layout[row][col].Label)

	row, col, ok = Find("Enter")
	assert.True(t, ok)
	assert.Equal(t, "=", Layout[row][col].Label)

	_, _, ok = Find("q")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "solve", KindSolve.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"=", "enter"}, Keys(Action{Kind: KindSolve}))
	assert.Equal(t, []string{"*", "x", "×"}, Keys(Action{Kind: KindSymbol, Symbol: "x"}))
	assert.Equal(t, []string{"5"}, Keys(Action{Kind: KindSymbol, Symbol: "5"}))
	assert.Empty(t, Keys(Action{Kind: KindSymbol, Symbol: "%"}))
}
