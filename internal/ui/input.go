package ui

import (
	"errors"
	"strings"
	"unicode"

	"github.com/atomicstack/rentroll/internal/logging/events"
	"github.com/atomicstack/rentroll/internal/logic/commands"
	"github.com/atomicstack/rentroll/internal/logic/parser"
	"github.com/atomicstack/rentroll/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	// F1 and ctrl+c work regardless of focus.
	switch keyMsg.String() {
	case "f1":
		m.toggleHelp()
		return nil
	case "ctrl+c":
		return m.quit()
	}

	if m.showHelp {
		return m.handleHelpKey(keyMsg)
	}

	switch keyMsg.String() {
	case "esc":
		m.handleEscape()
		return nil
	case "ctrl+f":
		m.toggleFilterFocus()
		return nil
	case "up":
		return m.recallHistory(commands.PreviousHistoryCommandWord)
	case "down":
		return m.recallHistory(commands.NextHistoryCommandWord)
	case "pgup":
		m.moveListPage(-1)
		return nil
	case "pgdown":
		m.moveListPage(1)
		return nil
	case "ctrl+home":
		if m.list.MoveCursorHome() {
			events.UI.ListCursor(m.list.Cursor)
		}
		return nil
	case "ctrl+end":
		if m.list.MoveCursorEnd() {
			events.UI.ListCursor(m.list.Cursor)
		}
		return nil
	case "enter":
		return m.submitInput()
	}

	if m.focus == FocusFilter {
		return m.handleFilterKey(keyMsg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		m.closeHelp()
		return nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return cmd
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.list.BackspaceFilter() {
			events.Filter.Applied(m.list.Filter, len(m.list.Rows))
		}
		return nil
	case tea.KeySpace:
		m.appendListFilter(" ")
		return nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.appendListFilter(string(msg.Runes))
		return nil
	}
	return nil
}

func (m *Model) appendListFilter(text string) {
	m.list.AppendFilter(text)
	events.Filter.Applied(m.list.Filter, len(m.list.Rows))
}

// handleEscape peels UI state back one layer: filter focus, then the quick
// filter text, then the find filter, then the command box contents.
func (m *Model) handleEscape() {
	switch {
	case m.focus == FocusFilter:
		m.focus = FocusCommand
		m.input.Focus()
		if strings.TrimSpace(m.list.Filter) != "" {
			m.list.ClearFilter()
			events.Filter.Cleared()
		}
	case m.logic != nil && m.logic.Book().Filtered():
		m.logic.Book().ClearFilter()
		events.Filter.Cleared()
		m.refreshRows()
		m.feedback = ""
		m.errMsg = ""
	default:
		m.input.SetValue("")
		m.feedback = ""
		m.errMsg = ""
	}
}

func (m *Model) toggleFilterFocus() {
	if m.focus == FocusFilter {
		m.focus = FocusCommand
		m.input.Focus()
		return
	}
	m.focus = FocusFilter
	m.input.Blur()
}

func (m *Model) moveListPage(direction int) {
	if m.list.MoveCursorPage(direction, m.maxVisibleRows()) {
		events.UI.ListCursor(m.list.Cursor)
	}
}

// recallHistory runs a history navigation command and echoes the recalled
// entry into the command box. Disabled while a prompt is awaiting its answer
// so the recall word is not consumed as a decline.
func (m *Model) recallHistory(word string) tea.Cmd {
	if m.bus == nil || m.bus.State() == command.StateAwaiting {
		return nil
	}
	result, err := m.bus.Submit(word)
	if err != nil {
		m.errMsg = errorMessage(err)
		return nil
	}
	m.input.SetValue(result.Echo)
	m.input.CursorEnd()
	return nil
}

func (m *Model) submitInput() tea.Cmd {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	result, err := m.bus.Submit(text)
	m.input.SetValue("")
	if err != nil {
		m.feedback = ""
		m.errMsg = errorMessage(err)
		return nil
	}
	m.errMsg = ""
	m.feedback = result.Feedback
	if result.Echo != "" {
		m.input.SetValue(result.Echo)
		m.input.CursorEnd()
	}
	m.refreshRows()
	switch result.Kind {
	case commands.ResultShowHelp:
		m.openHelp()
	case commands.ResultExit:
		return m.quit()
	}
	return nil
}

// errorMessage flattens the two error kinds to their display text; anything
// else passes through as-is.
func errorMessage(err error) string {
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return parseErr.Message
	}
	var cmdErr *commands.Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Message
	}
	return err.Error()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	if m.backend != nil {
		m.backend.Stop()
	}
	return tea.Quit
}
