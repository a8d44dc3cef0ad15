package main

import (
	"fmt"

	"github.com/codefionn/calcpad/internal/store"
	"github.com/codefionn/calcpad/internal/tui"
	"github.com/spf13/cobra"
)

var tuiSession string

// tuiCmd draws the keypad in the terminal
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the keypad in the terminal",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVar(&tuiSession, "session", tui.DefaultSessionID, "Session id the display is saved under")
}

func runTUI(cmd *cobra.Command, args []string) error {
	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := tui.Options{
		Store:             st,
		SessionID:         tuiSession,
		DisableAnimations: cfg.DisableAnimations,
	}
	if err := tui.Run(cmd.Context(), opts); err != nil {
		return fmt.Errorf("terminal keypad failed: %w", err)
	}
	return nil
}
