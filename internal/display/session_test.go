package display

import (
	"strings"
	"testing"

	"github.com/codefionn/calcpad/internal/calc"
	"github.com/codefionn/calcpad/internal/keypad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWith(text string, state State) *Session {
	s := NewSession()
	s.Restore(Snapshot{Text: text, State: state})
	return s
}

func press(t *testing.T, s *Session, keys ...string) {
	t.Helper()
	for _, key := range keys {
		action, ok := keypad.Lookup(key)
		require.True(t, ok, "unknown key %q", key)
		s.Apply(action)
	}
}

func TestPrintToDisplay(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		symbol   string
		expected string
		accepted bool
	}{
		{"digit on empty display", "", "1", "1", true},
		{"operator gets spacing", "1", "+", "1\u00a0+\u00a0", true},
		{"decimal point", "1", ".", "1.", true},
		{"fills capacity", "1234567890123456", "7", "12345678901234567", true},
		{"rejected at capacity", "12345678901234567", "8", "12345678901234567", false},
		{"operator would overflow capacity", "123456789012345", "+", "123456789012345", false},
		{"decimal after operator", "5\u00a0+\u00a0", ".", "5\u00a0+\u00a0", false},
		{"two operators", "5\u00a0+\u00a0", "x", "5\u00a0+\u00a0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessionWith(tt.text, Editing)
			assert.Equal(t, tt.accepted, s.PrintToDisplay(tt.symbol))
			assert.Equal(t, tt.expected, s.Text())
			assert.Equal(t, Editing, s.State())
		})
	}
}

func TestPrintToDisplayAfterSolution(t *testing.T) {
	s := sessionWith("4", ShowingSolution)
	assert.True(t, s.PrintToDisplay("7"))
	assert.Equal(t, "7", s.Text())

	s = sessionWith("4", ShowingSolution)
	assert.True(t, s.PrintToDisplay("x"))
	assert.Equal(t, "4\u00a0x\u00a0", s.Text())
	assert.Equal(t, Editing, s.State())

	// no room for the operator padding after a 16 character result
	s = sessionWith("0.33333333333333", ShowingSolution)
	assert.False(t, s.PrintToDisplay("x"))
	assert.Equal(t, "0.33333333333333", s.Text())
	assert.Equal(t, ShowingSolution, s.State())
	assert.True(t, s.PrintToDisplay("3"))
	assert.Equal(t, "3", s.Text())
	assert.Equal(t, Editing, s.State())
}

func TestPrintToDisplayClearsError(t *testing.T) {
	s := sessionWith(calc.DivideByZeroText, ShowingError)
	assert.True(t, s.PrintToDisplay("3"))
	assert.Equal(t, "3", s.Text())
	assert.Equal(t, Editing, s.State())

	s = sessionWith(calc.OverflowText, ShowingError)
	assert.False(t, s.PrintToDisplay("+"))
	assert.Equal(t, "", s.Text())
	assert.Equal(t, Editing, s.State())
}

func TestRemoveLastCharacter(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"last digit", "53", "5"},
		{"trailing decimal", "9.", "9"},
		{"only digit", "5", ""},
		{"empty display", "", ""},
		{"operator with plain spaces", "53 + ", "53"},
		{"minus operator", "98 - ", "98"},
		{"multiply operator", "5 x ", "5"},
		{"lone operator", " ÷ ", ""},
		{"spaced operator", "5\u00a0+\u00a0", "5"},
		{"digit after operator", "5\u00a0+\u00a03", "5\u00a0+\u00a0"},
		{"digit after minus operator", "5\u00a0-\u00a03", "5\u00a0-\u00a0"},
		{"digit after decimal point", "9.5", "9"},
		{"negative digit", "-3", ""},
		{"negative operand", "12 x -3", "12 x\u00a0"},
		{"digit of negative decimal", "-0.5", "-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessionWith(tt.text, Editing)
			s.RemoveLastCharacter()
			assert.Equal(t, tt.expected, s.Text())
			assert.Equal(t, Editing, s.State())
		})
	}
}

func TestRemoveLastCharacterClearsError(t *testing.T) {
	s := sessionWith(calc.OverflowText, ShowingError)
	s.RemoveLastCharacter()
	assert.Equal(t, "", s.Text())
	assert.Equal(t, Editing, s.State())
}

func TestRemoveLastCharacterEditsSolution(t *testing.T) {
	s := sessionWith("42", ShowingSolution)
	s.RemoveLastCharacter()
	assert.Equal(t, "4", s.Text())
	assert.Equal(t, Editing, s.State())
}

func TestSwitchSign(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		changed  bool
	}{
		{"positive", "12", "-12", true},
		{"negative decimal", "-1.2", "1.2", true},
		{"last operand", "5\u00a0+\u00a03", "5 + -3", true},
		{"trailing operator", "5\u00a0+\u00a0", "5\u00a0+\u00a0", false},
		{"empty display", "", "", false},
		{"would exceed capacity", "12345678901234567", "12345678901234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessionWith(tt.text, Editing)
			assert.Equal(t, tt.changed, s.SwitchSign())
			assert.Equal(t, tt.expected, s.Text())
		})
	}
}

func TestSwitchSignOnSolution(t *testing.T) {
	s := sessionWith("4", ShowingSolution)
	assert.True(t, s.SwitchSign())
	assert.Equal(t, "-4", s.Text())
	assert.Equal(t, Editing, s.State())

	assert.True(t, s.PrintToDisplay("2"))
	assert.Equal(t, "-42", s.Text())
}

func TestSwitchSignClearsError(t *testing.T) {
	s := sessionWith(calc.DivideByZeroText, ShowingError)
	assert.False(t, s.SwitchSign())
	assert.Equal(t, "", s.Text())
	assert.Equal(t, Editing, s.State())
}

func TestClearIsIdempotent(t *testing.T) {
	s := sessionWith("5\u00a0+\u00a03", Editing)
	s.Clear()
	once := s.Snapshot()
	s.Clear()
	assert.Equal(t, once, s.Snapshot())
	assert.Equal(t, Snapshot{Text: "", State: Editing}, once)
}

func TestSolve(t *testing.T) {
	s := sessionWith("2\u00a0+\u00a02\u00a0x\u00a03", Editing)
	assert.True(t, s.Solve())
	assert.Equal(t, "8", s.Text())
	assert.Equal(t, ShowingSolution, s.State())
}

func TestSolveTrailingOperatorIsNoOp(t *testing.T) {
	s := sessionWith("5\u00a0+\u00a0", Editing)
	assert.False(t, s.Solve())
	assert.Equal(t, "5\u00a0+\u00a0", s.Text())
	assert.Equal(t, Editing, s.State())
}

func TestSolveWhileErrorIsNoOp(t *testing.T) {
	s := sessionWith(calc.DivideByZeroText, ShowingError)
	assert.False(t, s.Solve())
	assert.Equal(t, calc.DivideByZeroText, s.Text())
	assert.Equal(t, ShowingError, s.State())
}

func TestPrintSolution(t *testing.T) {
	s := NewSession()
	result := s.PrintSolution(1.234567890123456)
	assert.False(t, result.IsError())
	assert.Equal(t, "1.23456789012346", s.Text())
	assert.Equal(t, ShowingSolution, s.State())

	result = s.PrintSolution(12345678901234567)
	assert.Equal(t, calc.ErrorOverflow, result.Err)
	assert.Equal(t, "Overflow", s.Text())
	assert.Equal(t, ShowingError, s.State())
}

func TestKeySequences(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		text  string
		state State
	}{
		{"addition", []string{"2", "+", "2", "="}, "4", ShowingSolution},
		{"divide by zero", []string{"9", "÷", "0", "="}, "Divide by Zero", ShowingError},
		{"second decimal rejected", []string{"5", ".", "."}, "5.", Editing},
		{"precedence", []string{"2", "+", "6", "*", "8", "/", "1", "6", "enter"}, "5", ShowingSolution},
		{"continue from result", []string{"2", "+", "2", "=", "x", "3", "="}, "12", ShowingSolution},
		{"new expression after result", []string{"2", "+", "2", "=", "7"}, "7", Editing},
		{"negative operand", []string{"5", "-", "8", "o", "="}, "13", ShowingSolution},
		{"error cleared by digit", []string{"1", "/", "0", "=", "5"}, "5", Editing},
		{"clear", []string{"1", "2", "escape"}, "", Editing},
		{"backspace operator", []string{"1", "+", "backspace", "2"}, "12", Editing},
		{"zero divided by zero", []string{"0", "/", "0", "="}, "Divide by Zero", ShowingError},
		{"widest product", []string{"9", "9", "9", "9", "9", "9", "9", "x", "9", "9", "9", "9", "9", "9", "9", "="}, "99999980000001", ShowingSolution},
		{"decimal result", []string{"1", "/", "3", "="}, "0.33333333333333", ShowingSolution},
		{"operator too wide for result", []string{"1", "/", "3", "=", "x"}, "0.33333333333333", ShowingSolution},
		{"digit after rejected operator", []string{"1", "/", "3", "=", "x", "3"}, "3", Editing},
		{"decimal point after result", []string{"2", "+", "2", "=", "."}, "", Editing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			press(t, s, tt.keys...)
			assert.Equal(t, tt.text, s.Text())
			assert.Equal(t, tt.state, s.State())
		})
	}
}

// Whatever is typed, the display never holds two operators in a row, two
// decimal points in one number or more than the display capacity.
func TestDisplayInvariants(t *testing.T) {
	keys := []string{"1", "9", "0", ".", "+", "-", "x", "/", "o", "backspace", "=", "."}
	s := NewSession()
	for i := 0; i < 2000; i++ {
		key := keys[(i*7+i/3)%len(keys)]
		press(t, s, key)

		if s.State() == ShowingError {
			continue
		}
		assert.LessOrEqual(t, len([]rune(s.Text())), 17, s.Text())

		tokens := calc.Tokenize(s.Text())
		prevOperator := false
		for _, token := range tokens {
			if token == "" {
				continue
			}
			isOp := calc.IsOperator(token)
			assert.False(t, isOp && prevOperator, "consecutive operators in %q", s.Text())
			prevOperator = isOp
			assert.LessOrEqual(t, strings.Count(token, "."), 1, "token %q", token)
		}
	}
}

func TestRestoreRejectsOversizedText(t *testing.T) {
	s := NewSession()
	s.Restore(Snapshot{Text: strings.Repeat("1", 18), State: ShowingSolution})
	assert.Equal(t, Snapshot{State: Editing}, s.Snapshot())
}
