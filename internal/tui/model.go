// Package tui is the terminal window shell: a bubbletea program that renders
// the note store and relays window-control keys through a shell.Relay.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/jotter/pkg/core"
	"github.com/aretw0/jotter/pkg/shell"
)

// defaultWidth is used until the terminal reports its size, and as the
// restored (non-maximized) width.
const defaultWidth = 72

// Model is the bubbletea model of the note window.
type Model struct {
	store  *core.Store
	frame  *shell.Frame
	relay  *shell.Relay
	logger *slog.Logger
	theme  Theme

	cursor int
	width  int
	added  int
	status string
}

// New creates the window model over store. The store is not closed by the model.
func New(store *core.Store, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		store:  store,
		frame:  &shell.Frame{},
		logger: logger,
		theme:  DefaultTheme(),
		width:  defaultWidth,
	}
	m.relay = shell.NewRelay(m.focused, logger)
	return m
}

// focused returns the window unless it was closed.
func (m *Model) focused() shell.Window {
	if m.frame.IsClosed() {
		return nil
	}
	return m.frame
}

// Frame exposes the window state.
func (m *Model) Frame() *shell.Frame {
	return m.frame
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		m.status = ""
		if msg.Type == tea.KeyCtrlC {
			return m, m.dispatch(shell.SignalClose)
		}
		if m.frame.IsMinimized() {
			m.frame.Restore()
			return m, nil
		}
		if id, editing := m.store.EditingID(); editing {
			return m, m.editKey(id, msg)
		}
		return m, m.commandKey(msg)
	}
	return m, nil
}

func (m *Model) dispatch(sig shell.Signal) tea.Cmd {
	m.relay.Dispatch(sig)
	if m.frame.IsClosed() {
		return tea.Quit
	}
	return nil
}

func (m *Model) commandKey(msg tea.KeyMsg) tea.Cmd {
	notes := m.store.Notes()
	selected := ""
	if m.cursor < len(notes) {
		selected = notes[m.cursor].ID
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(notes)-1 {
			m.cursor++
		}
	case "n":
		m.added++
		m.store.AddNote("", fmt.Sprintf("Note %d", m.added))
		m.cursor = len(notes)
	case "o", "enter":
		if selected != "" && !m.store.ToggleNoteOpen(selected) {
			m.status = fmt.Sprintf("%s (%d)", core.ErrLimitReached, m.store.MaxOpenNotes())
		}
	case "a":
		m.store.AutoOpenNotes(m.store.RemainingSlots())
	case "e":
		if selected != "" {
			m.store.ToggleEditor(selected)
		}
	case "d", "x":
		if selected != "" {
			m.store.RemoveNote(selected)
			if m.cursor > 0 && m.cursor >= len(notes)-1 {
				m.cursor--
			}
		}
	case "-":
		return m.dispatch(shell.SignalMinimize)
	case "m":
		return m.dispatch(shell.SignalMaximize)
	case "q":
		return m.dispatch(shell.SignalClose)
	}
	return nil
}

// editKey routes typing into the editing target's content.
func (m *Model) editKey(id string, msg tea.KeyMsg) tea.Cmd {
	note, ok := m.store.GetNoteByID(id)
	if !ok {
		m.store.CloseEditor()
		return nil
	}

	content := note.Content
	switch msg.Type {
	case tea.KeyEsc:
		m.store.CloseEditor()
		return nil
	case tea.KeyEnter:
		content += "\n"
	case tea.KeyBackspace:
		if r := []rune(content); len(r) > 0 {
			content = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		content += " "
	case tea.KeyRunes:
		content += string(msg.Runes)
	default:
		return nil
	}
	m.store.UpdateNote(id, core.SetContent(content))
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.frame.IsClosed() {
		return ""
	}

	title := m.theme.Title.Render(fmt.Sprintf(" jotter  %d/%d open ",
		m.store.OpenNotesCount(), m.store.MaxOpenNotes()))
	if m.frame.IsMinimized() {
		return title + m.theme.Help.Render("  (minimized, any key restores)") + "\n"
	}

	width := defaultWidth
	if m.frame.IsMaximized() || m.width < defaultWidth {
		width = m.width
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	notes := m.store.Notes()
	if len(notes) == 0 {
		b.WriteString(m.theme.Help.Render("no notes yet, press n to add one"))
		b.WriteString("\n")
	}
	for i, n := range notes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "[ ]"
		if n.IsOpen {
			mark = "[o]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, n.Title)
		if m.store.IsNoteEditing(n.ID) {
			line = m.theme.Editing.Render(line + "  (editing)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	for _, n := range m.store.OpenNotes() {
		style := m.theme.Panel
		if m.store.IsNoteEditing(n.ID) {
			style = m.theme.ActivePanel
		}
		body := n.Content
		if body == "" {
			body = m.theme.Help.Render("(empty)")
		}
		b.WriteString(style.Width(max(width-2, 10)).Render(n.Title + "\n" + body))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.theme.Warning.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render(
		"n add  o open/close  a auto-open  e edit  d delete  - minimize  m maximize  q quit"))
	b.WriteString("\n")

	return lipgloss.NewStyle().MaxWidth(max(width, 10)).Render(b.String())
}
