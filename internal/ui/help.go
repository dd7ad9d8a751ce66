package ui

import (
	"strings"

	"github.com/atomicstack/rentroll/internal/logging/events"
	"github.com/atomicstack/rentroll/internal/logic/commands"
	tea "github.com/charmbracelet/bubbletea"
)

const helpTitle = "rentroll help"

func helpText() string {
	keys := strings.Join([]string{
		"Keys:",
		"  ↑ / ↓       recall earlier / later commands",
		"  ctrl+f      quick-filter the client list",
		"  pgup/pgdn   scroll the client list",
		"  esc         clear filter or command box",
		"  F1          toggle this help",
		"  ctrl+c      quit",
	}, "\n")
	sections := []string{
		commands.FindMessageUsage,
		commands.ImportMessageUsage,
		commands.ExportMessageUsage,
		commands.ClearMessageUsage,
		commands.HelpMessageUsage,
		commands.ExitMessageUsage,
		keys,
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) openHelp() {
	m.showHelp = true
	m.layoutHelp()
	m.help.SetContent(helpText())
	m.help.GotoTop()
	events.UI.HelpOpen()
}

func (m *Model) closeHelp() {
	m.showHelp = false
	events.UI.HelpClose()
}

func (m *Model) toggleHelp() {
	if m.showHelp {
		m.closeHelp()
		return
	}
	m.openHelp()
}

func (m *Model) layoutHelp() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height - 3
	if height < 1 {
		height = 1
	}
	m.help.Width = width
	m.help.Height = height
}

func (m *Model) viewHelp() string {
	title := helpTitle
	if styles.HelpTitle != nil {
		title = styles.HelpTitle.Render(title)
	}
	footer := "esc/q close  ↑/↓ scroll"
	if styles.Footer != nil {
		footer = styles.Footer.Render(footer)
	}
	body := m.help.View()
	if styles.HelpBody != nil {
		body = styles.HelpBody.Render(body)
	}
	return title + "\n" + body + "\n" + footer
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	m.fixedWidth = false
	m.fixedHeight = false
	if m.width > 2 {
		m.input.Width = m.width - 2
	}
	m.layoutHelp()
	events.UI.Resize(m.width, m.height)
	return nil
}
