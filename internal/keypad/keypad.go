// Package keypad maps key identities, from a keyboard or a clicked button,
// to the calculator's logical actions.
package keypad

import (
	"sort"
	"strings"

	"github.com/codefionn/calcpad/internal/calc"
)

// Kind is the kind of logical action a key triggers
type Kind int

const (
	// KindSymbol appends a digit, decimal point or operator
	KindSymbol Kind = iota
	// KindClear blanks the display
	KindClear
	// KindBackspace removes the last character
	KindBackspace
	// KindNegate switches the sign of the last number
	KindNegate
	// KindSolve evaluates the display
	KindSolve
)

// String returns the action name used on the wire and in logs
func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindClear:
		return "clear"
	case KindBackspace:
		return "backspace"
	case KindNegate:
		return "negate"
	case KindSolve:
		return "solve"
	default:
		return "unknown"
	}
}

// Action is one logical keypad action. Symbol is set for KindSymbol only.
type Action struct {
	Kind   Kind
	Symbol string
}

// Button describes one key of the on-screen keypad
type Button struct {
	Label  string
	Key    string
	Action Action
}

var keys = map[string]Action{
	"enter":     {Kind: KindSolve},
	"=":         {Kind: KindSolve},
	"escape":    {Kind: KindClear},
	"esc":       {Kind: KindClear},
	"c":         {Kind: KindClear},
	"backspace": {Kind: KindBackspace},
	"delete":    {Kind: KindBackspace},
	"o":         {Kind: KindNegate},
	"n":         {Kind: KindNegate},
	"+":         {Kind: KindSymbol, Symbol: calc.SymbolAdd},
	"-":         {Kind: KindSymbol, Symbol: calc.SymbolSubtract},
	"x":         {Kind: KindSymbol, Symbol: calc.SymbolMultiply},
	"*":         {Kind: KindSymbol, Symbol: calc.SymbolMultiply},
	"×":         {Kind: KindSymbol, Symbol: calc.SymbolMultiply},
	"/":         {Kind: KindSymbol, Symbol: calc.SymbolDivide},
	"÷":         {Kind: KindSymbol, Symbol: calc.SymbolDivide},
	".":         {Kind: KindSymbol, Symbol: calc.SymbolDecimal},
	",":         {Kind: KindSymbol, Symbol: calc.SymbolDecimal},
}

func init() {
	for d := '0'; d <= '9'; d++ {
		keys[string(d)] = Action{Kind: KindSymbol, Symbol: string(d)}
	}
}

// Lookup resolves a key name, case-insensitively
func Lookup(key string) (Action, bool) {
	action, ok := keys[strings.ToLower(key)]
	return action, ok
}

// Keys returns every recognized key name bound to the same action as
// action, sorted
func Keys(action Action) []string {
	var names []string
	for name, a := range keys {
		if a == action {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Layout is the keypad as rendered by the browser and terminal front ends,
// row by row.
var Layout = [][]Button{
	{
		{Label: "C", Key: "escape", Action: Action{Kind: KindClear}},
		{Label: "±", Key: "o", Action: Action{Kind: KindNegate}},
		{Label: "⌫", Key: "backspace", Action: Action{Kind: KindBackspace}},
		{Label: "÷", Key: "/", Action: Action{Kind: KindSymbol, Symbol: calc.SymbolDivide}},
	},
	{digit("7"), digit("8"), digit("9"), {Label: "x", Key: "x", Action: Action{Kind: KindSymbol, Symbol: calc.SymbolMultiply}}},
	{digit("4"), digit("5"), digit("6"), {Label: "-", Key: "-", Action: Action{Kind: KindSymbol, Symbol: calc.SymbolSubtract}}},
	{digit("1"), digit("2"), digit("3"), {Label: "+", Key: "+", Action: Action{Kind: KindSymbol, Symbol: calc.SymbolAdd}}},
	{
		digit("0"),
		{Label: ".", Key: ".", Action: Action{Kind: KindSymbol, Symbol: calc.SymbolDecimal}},
		{Label: "=", Key: "enter", Action: Action{Kind: KindSolve}},
	},
}

func digit(d string) Button {
	return Button{Label: d, Key: d, Action: Action{Kind: KindSymbol, Symbol: d}}
}

// Find returns the layout position of the button bound to the same action as key
func Find(key string) (row, col int, ok bool) {
	action, found := Lookup(key)
	if !found {
		return 0, 0, false
	}
	for r, buttons := range Layout {
		for c, b := range buttons {
			if b.Action == action {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
