package ui

import (
	"github.com/atomicstack/rentroll/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent folds an external data-file change into the book and
// rebuilds the list, keeping the cursor on the same client where possible.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.disp == nil {
		return
	}
	res := m.disp.Handle(evt)
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		return
	}
	if res.BookUpdated {
		m.refreshRows()
	}
}
