package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/codefionn/calcpad/internal/consts"
	"github.com/codefionn/calcpad/internal/display"
	"github.com/codefionn/calcpad/internal/keypad"
)

const keyWidth = 5

var (
	// displayStyle frames the display line
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(consts.MaxDisplayCapacity + 4).
			Align(lipgloss.Right)

	editingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	solutionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	keyStyle = lipgloss.NewStyle().
			Width(keyWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")).
			MarginRight(1)

	operatorKeyStyle = keyStyle.
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("215"))

	functionKeyStyle = keyStyle.
				Background(lipgloss.Color("240"))

	solveKeyStyle = keyStyle.
			Width(keyWidth*2 + 1).
			Background(lipgloss.Color("65"))

	pressedKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("229")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

func textStyle(state display.State) lipgloss.Style {
	switch state {
	case display.ShowingSolution:
		return solutionStyle
	case display.ShowingError:
		return errorStyle
	default:
		return editingStyle
	}
}

func buttonStyle(b keypad.Button) lipgloss.Style {
	switch b.Action.Kind {
	case keypad.KindSolve:
		return solveKeyStyle
	case keypad.KindClear, keypad.KindBackspace, keypad.KindNegate:
		return functionKeyStyle
	}
	if b.Action.Symbol != "" && !isDigitOrDot(b.Action.Symbol) {
		return operatorKeyStyle
	}
	return keyStyle
}

func isDigitOrDot(symbol string) bool {
	return len(symbol) == 1 && (symbol[0] == '.' || symbol[0] >= '0' && symbol[0] <= '9')
}
