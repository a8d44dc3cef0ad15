package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/codefionn/calcpad/internal/consts"
)

// Texts shown on the display for the terminal error states.
const (
	OverflowText     = "Overflow"
	DivideByZeroText = "Divide by Zero"
)

// ErrorKind classifies a formatted result.
type ErrorKind int

const (
	// ErrorNone means the result is displayable
	ErrorNone ErrorKind = iota
	// ErrorOverflow means the result does not fit the display's digit budget
	ErrorOverflow
	// ErrorDivideByZero means the result is not a finite number
	ErrorDivideByZero
)

// String returns the display text for an error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorOverflow:
		return OverflowText
	case ErrorDivideByZero:
		return DivideByZeroText
	default:
		return ""
	}
}

// Result is a solution prepared for the display.
type Result struct {
	Text string
	Err  ErrorKind
}

// IsError reports whether the result is a terminal error state.
func (r Result) IsError() bool {
	return r.Err != ErrorNone
}

// FormatNumber stringifies a value in shortest round-trip fixed notation.
// Negative zero prints as "0".
func FormatNumber(value float64) string {
	if value == 0 {
		value = 0
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatSolution fits a solution onto the display. Values with a fractional
// part are rounded to the digit budget, integers longer than the budget
// overflow and non-finite values report a division by zero.
func FormatSolution(solution float64) Result {
	text := FormatNumber(solution)

	if integerPart, fraction, found := strings.Cut(text, "."); found {
		digitsBeforeDecimal := len(integerPart) + 1
		places := len(fraction)

		if len(text) > consts.MaxDigitsWithDecimal {
			places = max(0, consts.MaxDigitsWithDecimal-digitsBeforeDecimal)
		} else if places >= consts.MaxDecimalPrecision {
			places = consts.MaxDecimalPrecision
		}

		text = roundToPlaces(solution, places)
		if !strings.Contains(text, ".") && len(text) > consts.MaxDigitsWithDecimal {
			return Result{Text: OverflowText, Err: ErrorOverflow}
		}
		return Result{Text: text}
	}

	if len(text) > consts.MaxDigitsWithDecimal {
		return Result{Text: OverflowText, Err: ErrorOverflow}
	}
	if math.IsInf(solution, 0) || math.IsNaN(solution) {
		return Result{Text: DivideByZeroText, Err: ErrorDivideByZero}
	}
	return Result{Text: text}
}

// roundToPlaces rounds to a fixed number of places and drops trailing zeros.
func roundToPlaces(value float64, places int) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', places, 64), 64)
	if err != nil {
		return FormatNumber(value)
	}
	return FormatNumber(rounded)
}
