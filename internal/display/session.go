// Package display is the calculator's input gate and display controller.
// A Session owns the display text and its State; every keypad action goes
// through it.
package display

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/codefionn/calcpad/internal/calc"
	"github.com/codefionn/calcpad/internal/consts"
	"github.com/codefionn/calcpad/internal/keypad"
	"github.com/codefionn/calcpad/internal/logger"
)

// Session is one calculator: the display text and its state.
// It is not safe for concurrent use.
type Session struct {
	text  string
	state State
}

// NewSession returns a session with a blank display
func NewSession() *Session {
	return &Session{}
}

// Text returns the display text
func (s *Session) Text() string {
	return s.text
}

// State returns the display state
func (s *Session) State() State {
	return s.state
}

// Snapshot returns the persistable state of the session
func (s *Session) Snapshot() Snapshot {
	return Snapshot{Text: s.text, State: s.state}
}

// Restore replaces the session state. A snapshot that could not have been
// produced by a session (over capacity) restores a blank display.
func (s *Session) Restore(snap Snapshot) {
	if utf8.RuneCountInString(snap.Text) > consts.MaxDisplayCapacity {
		logger.Warn("display: discarding oversized snapshot (%d runes)", utf8.RuneCountInString(snap.Text))
		s.Clear()
		return
	}
	s.text = snap.Text
	s.state = snap.State
}

// Clear blanks the display and returns to editing
func (s *Session) Clear() {
	s.text = ""
	s.state = Editing
}

// PrintToDisplay appends one keypad symbol if the input gate admits it and
// reports whether it did. A displayed error is always cleared first; a
// displayed solution is cleared by anything but an operator, so an operator
// continues from the result. A rejected operator leaves a displayed
// solution in place.
func (s *Session) PrintToDisplay(symbol string) bool {
	text := s.text
	blank := s.state == ShowingError || (s.state == ShowingSolution && !calc.IsOperator(symbol))
	if blank {
		text = ""
	}

	addition := render(symbol)
	if utf8.RuneCountInString(text)+utf8.RuneCountInString(addition) > consts.MaxDisplayCapacity ||
		!CheckSyntaxOnInput(symbol, text) {
		if blank {
			s.Clear()
		}
		return false
	}

	s.text = text + addition
	s.state = Editing
	return true
}

// RemoveLastCharacter deletes the last character. Removing an operator
// takes its spacing with it, and leftover whitespace, signs and decimal
// points are trimmed until the display ends in a digit, a complete operator
// or is empty. A trailing operator gets its spacing back.
func (s *Session) RemoveLastCharacter() {
	if s.state == ShowingError {
		s.Clear()
	}
	s.state = Editing

	runes := []rune(s.text)
	if len(runes) == 0 {
		return
	}

	remove := 1
	if unicode.IsSpace(runes[len(runes)-1]) {
		remove = 2
	}
	runes = runes[:max(0, len(runes)-remove)]

	for len(runes) > 0 && trimmable(runes) {
		runes = runes[:len(runes)-1]
	}

	s.text = string(runes)
	if endsWithOperatorToken(s.text) {
		s.text += operatorSpacer
	}
}

func trimmable(runes []rune) bool {
	last := runes[len(runes)-1]
	switch {
	case unicode.IsSpace(last), last == '.':
		return true
	case last == '-':
		return !endsWithOperatorToken(string(runes))
	default:
		return false
	}
}

// SwitchSign toggles the sign of the number at the end of the display. It
// reports whether the display changed. A displayed error is cleared instead.
func (s *Session) SwitchSign() bool {
	if s.state == ShowingError {
		s.Clear()
		return false
	}
	s.state = Editing

	tokens := calc.Tokenize(s.text)
	last := tokens[len(tokens)-1]
	if !calc.IsCalcNumber(last) {
		return false
	}

	if negated, ok := strings.CutPrefix(last, calc.SymbolSubtract); ok {
		last = negated
	} else {
		last = calc.SymbolSubtract + last
	}
	tokens[len(tokens)-1] = last

	text := strings.Join(tokens, " ")
	if utf8.RuneCountInString(text) > consts.MaxDisplayCapacity {
		return false
	}
	s.text = text
	return true
}

// Solve evaluates the display. A malformed expression, such as one ending
// on an operator, leaves the display untouched and returns false, as does
// solving while an error is shown.
func (s *Session) Solve() bool {
	if s.state == ShowingError {
		return false
	}

	solution, ok := calc.Solve(s.text)
	if !ok {
		return false
	}

	s.PrintSolution(solution)
	return true
}

// PrintSolution formats solution onto the display and enters the solution
// or error state accordingly.
func (s *Session) PrintSolution(solution float64) calc.Result {
	result := calc.FormatSolution(solution)
	s.text = result.Text
	if result.IsError() {
		s.state = ShowingError
	} else {
		s.state = ShowingSolution
	}
	return result
}

// Apply performs one keypad action and reports whether it was accepted.
func (s *Session) Apply(action keypad.Action) bool {
	var accepted bool
	switch action.Kind {
	case keypad.KindSymbol:
		accepted = s.PrintToDisplay(action.Symbol)
	case keypad.KindClear:
		s.Clear()
		accepted = true
	case keypad.KindBackspace:
		s.RemoveLastCharacter()
		accepted = true
	case keypad.KindNegate:
		accepted = s.SwitchSign()
	case keypad.KindSolve:
		accepted = s.Solve()
	}

	if !accepted {
		logger.Debug("display: %s %q rejected on %q", action.Kind, action.Symbol, s.text)
	}
	return accepted
}
