// Package tui is the terminal front end: the keypad drawn with lipgloss and
// driven by the keyboard, over the same display session as the browser.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/codefionn/calcpad/internal/consts"
	"github.com/codefionn/calcpad/internal/display"
	"github.com/codefionn/calcpad/internal/keypad"
	"github.com/codefionn/calcpad/internal/logger"
	"github.com/codefionn/calcpad/internal/store"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultSessionID is the store key of the terminal session
const DefaultSessionID = "tui"

// Options configures the terminal keypad
type Options struct {
	Store             store.Store // optional
	SessionID         string
	DisableAnimations bool
	Copy              CopyFunc // defaults to SystemClipboard
}

// flashDoneMsg ends the highlight of a pressed key
type flashDoneMsg struct {
	seq int
}

type pressedKey struct {
	row, col int
	seq      int
}

// Model is the bubbletea model of the terminal keypad
type Model struct {
	session   *display.Session
	store     store.Store
	sessionID string
	copy      CopyFunc

	keys     keyMap
	help     help.Model
	animate  bool
	pressed  *pressedKey
	pressSeq int
	status   string
	width    int
}

// New creates the model, restoring the saved session if there is one
func New(opts Options) *Model {
	if opts.SessionID == "" {
		opts.SessionID = DefaultSessionID
	}
	if opts.Copy == nil {
		opts.Copy = SystemClipboard
	}

	m := &Model{
		session:   display.NewSession(),
		store:     opts.Store,
		sessionID: opts.SessionID,
		copy:      opts.Copy,
		keys:      defaultKeyMap(),
		help:      help.New(),
		animate:   !opts.DisableAnimations,
	}

	if m.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), consts.Timeout5Seconds)
		defer cancel()
		snap, found, err := m.store.Load(ctx, m.sessionID)
		if err != nil {
			logger.Warn("tui: failed to load snapshot: %v", err)
		} else if found {
			m.session.Restore(snap)
		}
	}

	return m
}

// Session returns the display session driven by the model
func (m *Model) Session() *display.Session {
	return m.session
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case flashDoneMsg:
		if m.pressed != nil && m.pressed.seq == msg.seq {
			m.pressed = nil
		}
		return m, nil

	case ClipboardCopyMsg:
		if msg.Err != nil {
			logger.Warn("tui: %v", msg.Err)
			m.status = "copy failed: " + msg.Err.Error()
		} else {
			m.status = "copied " + msg.Content
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if m.session.Text() == "" {
			return m, nil
		}
		return m, copyToClipboard(m.copy, m.session.Text())
	}

	name := msg.String()
	action, ok := keypad.Lookup(name)
	if !ok {
		return m, nil
	}

	m.status = ""
	if !m.session.Apply(action) {
		logger.Debug("tui: rejected %q on %q", name, m.session.Text())
	}
	m.save()

	return m, m.flash(name)
}

// flash highlights the key bound to name until the flash duration passes
func (m *Model) flash(name string) tea.Cmd {
	if !m.animate {
		return nil
	}
	row, col, ok := keypad.Find(name)
	if !ok {
		return nil
	}
	m.pressSeq++
	seq := m.pressSeq
	m.pressed = &pressedKey{row: row, col: col, seq: seq}
	return tea.Tick(consts.KeyFlashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func (m *Model) save() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), consts.Timeout1Second)
	defer cancel()
	if err := m.store.Save(ctx, m.sessionID, m.session.Snapshot()); err != nil {
		logger.Warn("tui: failed to save snapshot: %v", err)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	text := m.session.Text()
	if text == "" {
		text = " "
	}
	b.WriteString(displayStyle.Render(textStyle(m.session.State()).Render(text)))
	b.WriteString("\n")

	for r, row := range keypad.Layout {
		cells := make([]string, 0, len(row))
		for c, button := range row {
			style := buttonStyle(button)
			if m.pressed != nil && m.pressed.row == r && m.pressed.col == c {
				style = style.
					Foreground(pressedKeyStyle.GetForeground()).
					Background(pressedKeyStyle.GetBackground()).
					Bold(true)
			}
			cells = append(cells, style.Render(button.Label))
		}
		b.WriteString(" ")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if m.status != "" {
		status := m.status
		if m.width > 0 {
			status = wordwrap.String(status, m.width)
		}
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Run starts the terminal keypad and blocks until it exits
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
