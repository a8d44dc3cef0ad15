package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/codefionn/calcpad/internal/calc"
	"github.com/codefionn/calcpad/internal/keypad"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errInvalidInput reports that at least one expression could not be evaluated
var errInvalidInput = errors.New("some expressions could not be evaluated")

// evalCmd evaluates expressions without a display
var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate expressions",
	Long: `Evaluate each argument, or each line of stdin when there are none, and
print the result as the display would show it. Tokens are separated by
spaces; * and / are accepted for x and ÷.

  calcpad eval "2 + 3 x 4" "1 / 3"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runEvalLines(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		}
		return evalAll(args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEvalLines(in io.Reader, out, errOut io.Writer) error {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return evalAll(lines, out, errOut)
}

func evalAll(exprs []string, out, errOut io.Writer) error {
	failed := false
	for _, expr := range exprs {
		text, ok := evaluate(expr)
		if !ok {
			failed = true
			fmt.Fprintln(errOut, color.RedString("invalid expression: %s", expr))
			continue
		}
		fmt.Fprintln(out, text)
	}
	if failed {
		return errInvalidInput
	}
	return nil
}

// evaluate solves one expression and formats it for the display. Error
// states such as "Divide by Zero" are results, not failures.
func evaluate(expr string) (string, bool) {
	solution, ok := calc.Solve(canonicalize(expr))
	if !ok {
		return "", false
	}
	result := calc.FormatSolution(solution)
	if result.IsError() {
		return color.YellowString("%s", result.Text), true
	}
	return result.Text, true
}

// canonicalize maps keyboard aliases of the operators to their display symbols
func canonicalize(expr string) string {
	fields := strings.Fields(expr)
	for i, field := range fields {
		action, ok := keypad.Lookup(field)
		if ok && action.Kind == keypad.KindSymbol && calc.IsOperator(action.Symbol) {
			fields[i] = action.Symbol
		}
	}
	return strings.Join(fields, " ")
}
