package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/codefionn/calcpad/internal/keypad"
	"github.com/spf13/cobra"
)

var keysWidth int

// keysCmd prints the keyboard bindings of the keypad
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the keyboard bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(keysWidth),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := renderer.Render(keyTable())
		if err != nil {
			return fmt.Errorf("failed to render key table: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().IntVar(&keysWidth, "width", 80, "Wrap width")
}

// keyTable lists every keypad button with the keys bound to it, as markdown
func keyTable() string {
	var b strings.Builder
	b.WriteString("# calcpad keys\n\n")
	b.WriteString("| Button | Action | Keys |\n")
	b.WriteString("|:------:|--------|------|\n")
	for _, row := range keypad.Layout {
		for _, button := range row {
			keys := keypad.Keys(button.Action)
			for i, k := range keys {
				keys[i] = "`" + k + "`"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", button.Label, button.Action.Kind, strings.Join(keys, " "))
		}
	}
	b.WriteString("\nIn the terminal `y` copies the display, `?` shows all bindings and `q` quits.\n")
	return b.String()
}
