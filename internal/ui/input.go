package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glfs/glfs-client/internal/logging/events"
)

// handleTextInput edits the catalog filter. It reports whether the key was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	l := m.list
	switch msg.String() {
	case "ctrl+u":
		if l.Filter == "" {
			return false, nil
		}
		m.clearFilter()
		return true, nil
	case "ctrl+w":
		if !l.DeleteFilterWordBackward() {
			return false, nil
		}
		events.Filter.WordBackspace(l.ID, l.Filter)
		m.syncViewport()
		return true, nil
	case "ctrl+a":
		if !l.MoveFilterCursorStart() {
			return false, nil
		}
		events.Filter.Cursor(l.ID, l.FilterCursor)
		return true, nil
	case "ctrl+e":
		if !l.MoveFilterCursorEnd() {
			return false, nil
		}
		events.Filter.Cursor(l.ID, l.FilterCursor)
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	case tea.KeyLeft:
		if !l.MoveFilterCursorRuneBackward() {
			return false, nil
		}
		events.Filter.Cursor(l.ID, l.FilterCursor)
		return true, nil
	case tea.KeyRight:
		if !l.MoveFilterCursorRuneForward() {
			return false, nil
		}
		events.Filter.Cursor(l.ID, l.FilterCursor)
		return true, nil
	}
	return false, nil
}

func (m *Model) clearFilter() {
	m.list.SetFilter("", 0)
	events.Filter.Cleared(m.list.ID)
	m.syncViewport()
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" || !m.list.InsertFilterText(text) {
		return false
	}
	events.Filter.Append(m.list.ID, m.list.Filter)
	m.syncViewport()
	return true
}

func (m *Model) removeFilterRune() bool {
	if !m.list.DeleteFilterRuneBackward() {
		return false
	}
	events.Filter.Backspace(m.list.ID, m.list.Filter)
	m.syncViewport()
	return true
}

// filterPrompt renders the catalog filter with its caret.
func (m *Model) filterPrompt() string {
	styles := m.styles
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	m.filterCursor.TextStyle = lipgloss.Style{}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.list.Filter
	if text == "" {
		runes := []rune("(type to filter)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.list.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.styles.Cursor != nil {
		cursorStyle := m.styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
