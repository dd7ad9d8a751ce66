package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/rentroll/internal/ui/command"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
)

const (
	// Rows reserved below the list: blank, feedback/error, prompt/banner,
	// command box, footer.
	chromeRows  = 6
	detailLimit = 4
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}
	return m.viewMain()
}

func (m *Model) viewMain() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.headerLine(), style: styles.Header})

	maxRows := m.maxVisibleRows()
	m.list.EnsureCursorVisible(maxRows)
	visible := m.list.Rows
	start := 0
	if maxRows > 0 && len(visible) > maxRows {
		start = m.list.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxRows > len(visible) {
			start = len(visible) - maxRows
		}
		visible = visible[start : start+maxRows]
	}

	if len(m.list.Rows) == 0 {
		msg := "(no clients)"
		if strings.TrimSpace(m.list.Filter) != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		for i, row := range visible {
			lines = append(lines, m.buildRowLine(row.Label, start+i == m.list.Cursor))
		}
	}

	if detail := m.selectedDetail(); len(detail) > 0 {
		lines = append(lines, styledLine{})
		for _, line := range detail {
			lines = append(lines, styledLine{text: "  " + line, style: styles.RentalDetail})
		}
	}

	lines = limitHeight(lines, m.height-chromeRows+1, m.width)
	lines = applyWidth(lines, m.width)

	bottom := make([]styledLine, 0, chromeRows)
	bottom = append(bottom, styledLine{})
	switch {
	case m.errMsg != "":
		bottom = append(bottom, styledLine{text: m.errMsg, style: styles.Error})
	case m.feedback != "":
		bottom = append(bottom, styledLine{text: m.feedback, style: styles.Feedback})
	default:
		bottom = append(bottom, styledLine{})
	}
	if m.bus != nil && m.bus.State() == command.StateAwaiting {
		banner := m.bus.PendingFeedback() + "  [y/yes to confirm, anything else cancels]"
		bottom = append(bottom, styledLine{text: banner, style: styles.PromptBanner})
	} else if m.focus == FocusFilter {
		bottom = append(bottom, styledLine{text: "filter: " + m.list.Filter + "▏  (esc to leave filter)", style: styles.Info})
	} else {
		bottom = append(bottom, styledLine{})
	}
	bottom = applyWidth(bottom, m.width)

	out := renderLines(lines) + "\n" + renderLines(bottom) + "\n" + clipStyled(m.input.View(), m.width)
	if m.showFooter {
		out += "\n" + m.footerLine()
	}
	return out
}

// clipStyled truncates a row that already carries ANSI escapes, using
// visual width rather than rune count.
func clipStyled(row string, width int) string {
	if width <= 0 || lipgloss.Width(row) <= width {
		return row
	}
	return truncate.StringWithTail(row, uint(width-1), "…")
}

func (m *Model) headerLine() string {
	total := 0
	shown := len(m.list.Rows)
	filtered := false
	if m.logic != nil {
		book := m.logic.Book()
		total = book.Size()
		filtered = book.Filtered()
	}
	header := fmt.Sprintf("rentroll — %d clients", total)
	if filtered || strings.TrimSpace(m.list.Filter) != "" {
		header = fmt.Sprintf("rentroll — %d/%d clients", shown, total)
	}
	return header
}

func (m *Model) footerLine() string {
	hints := "↑/↓ history  ctrl+f filter  pgup/pgdn scroll  F1 help  esc clear  ctrl+c quit"
	status := ""
	if m.store != nil {
		status = "  " + m.store.Path()
		if at := m.store.LastSaved(); !at.IsZero() {
			status += "  saved " + humanize.Time(at)
		}
	}
	text := truncateText(hints+status, m.width)
	if styles.Footer != nil {
		return clipStyled(styles.Footer.Render(text), m.width)
	}
	return text
}

func (m *Model) buildRowLine(label string, selected bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Row
	indicatorStyle := styles.RowIndicator
	if selected {
		lineStyle = styles.SelectedRow
		indicatorStyle = styles.SelectedIndicator
	}
	text := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 && selected {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) selectedDetail() []string {
	row, ok := m.list.Selected()
	if !ok {
		return nil
	}
	detail := row.Detail
	if len(detail) > detailLimit {
		trimmed := make([]string, detailLimit)
		copy(trimmed, detail[:detailLimit-1])
		trimmed[detailLimit-1] = fmt.Sprintf("… %d more", len(detail)-detailLimit+1)
		return trimmed
	}
	return detail
}

// maxVisibleRows is the list viewport height: total height minus the header
// and the bottom chrome, minus the selected client's detail block.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	rows := m.height - 1 - chromeRows
	if detail := m.selectedDetail(); len(detail) > 0 {
		rows -= len(detail) + 1
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
