package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"
)

// CopyFunc puts text on a clipboard
type CopyFunc func(text string) error

// ClipboardCopyMsg reports the outcome of a copy
type ClipboardCopyMsg struct {
	Content string
	Err     error
}

// SystemClipboard writes to the system clipboard
func SystemClipboard(text string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// copyToClipboard copies the display with regular spaces
func copyToClipboard(write CopyFunc, text string) tea.Cmd {
	content := strings.ReplaceAll(text, "\u00a0", " ")
	return func() tea.Msg {
		return ClipboardCopyMsg{Content: content, Err: write(content)}
	}
}
