// Package state tracks cursor, viewport and quick-filter state for the
// client list panel.
package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Row is one renderable client entry.
type Row struct {
	// ID is the client identifier, stable across refreshes.
	ID string
	// Label is the formatted table line.
	Label string
	// Detail holds the rental lines shown for the selected row.
	Detail []string
}

// List keeps the visible rows plus cursor/viewport/filter positions. The
// quick-filter narrows the panel without touching the model's find filter.
type List struct {
	Full           []Row
	Rows           []Row
	Cursor         int
	ViewportOffset int
	Filter         string
	LastCursor     int
}

func NewList(rows []Row) *List {
	l := &List{LastCursor: -1}
	l.SetRows(rows)
	return l
}

// SetRows replaces the backing rows, keeping the cursor on the same client
// when it survives the refresh.
func (l *List) SetRows(rows []Row) {
	selectedID := ""
	if row, ok := l.Selected(); ok {
		selectedID = row.ID
	}
	l.Full = cloneRows(rows)
	l.applyFilter()
	if selectedID != "" {
		if idx := l.indexOf(selectedID); idx >= 0 {
			l.Cursor = idx
		}
	}
	l.clampCursor()
}

// Selected returns the row under the cursor.
func (l *List) Selected() (Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return Row{}, false
	}
	return l.Rows[l.Cursor], true
}

// SetFilter updates the quick-filter query. Entering a filter remembers the
// cursor; clearing it restores the remembered position.
func (l *List) SetFilter(query string) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	l.Filter = query
	if trimmed != "" && prevTrimmed == "" {
		l.LastCursor = l.Cursor
	}
	l.applyFilter()
	if trimmed != "" {
		l.Cursor = 0
		if idx := BestMatchIndex(l.Rows, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	} else if prevTrimmed != "" {
		if l.LastCursor >= 0 && l.LastCursor < len(l.Rows) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
	}
	l.clampCursor()
}

// ClearFilter drops the quick-filter.
func (l *List) ClearFilter() {
	l.SetFilter("")
}

// AppendFilter adds text to the quick-filter query.
func (l *List) AppendFilter(text string) {
	l.SetFilter(l.Filter + text)
}

// BackspaceFilter removes the last rune of the quick-filter query.
func (l *List) BackspaceFilter() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	l.SetFilter(string(runes[:len(runes)-1]))
	return true
}

func (l *List) applyFilter() {
	l.Rows = FilterRows(l.Full, l.Filter)
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
	}
}

func (l *List) indexOf(id string) int {
	for i, row := range l.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) clampCursor() {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
}

// MoveCursor shifts the cursor by delta, clamping at the ends.
func (l *List) MoveCursor(delta int) bool {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor += delta
	l.clampCursor()
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first row.
func (l *List) MoveCursorHome() bool {
	old := l.Cursor
	l.Cursor = 0
	l.clampCursor()
	return l.Cursor != old
}

// MoveCursorEnd moves the cursor to the last row.
func (l *List) MoveCursorEnd() bool {
	if len(l.Rows) == 0 {
		return false
	}
	old := l.Cursor
	l.Cursor = len(l.Rows) - 1
	return l.Cursor != old
}

// MoveCursorPage shifts the cursor by one viewport page in the given
// direction.
func (l *List) MoveCursorPage(direction, maxVisible int) bool {
	size := maxVisible
	if size <= 0 || size > len(l.Rows) {
		size = len(l.Rows)
	}
	if size < 1 {
		size = 1
	}
	return l.MoveCursor(direction * size)
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays inside
// the visible window.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Rows) == 0 {
		l.ViewportOffset = 0
		return
	}
	l.clampCursor()
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
	}
}

// FilterRows returns the rows matching the query: fuzzy rank first, plain
// containment as fallback.
func FilterRows(rows []Row, query string) []Row {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneRows(rows)
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Row, 0, len(matches))
		for idx, row := range rows {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, row)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Label), lower) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// BestMatchIndex picks the row a query most plausibly refers to: exact label
// match, then prefix, then containment, then the closest fuzzy rank.
func BestMatchIndex(rows []Row, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(rows) == 0 {
		if len(rows) == 0 {
			return -1
		}
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row.Label, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Label), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.Contains(strings.ToLower(row.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(rows) {
		return 0
	}
	return best.OriginalIndex
}

func cloneRows(rows []Row) []Row {
	if len(rows) == 0 {
		return nil
	}
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}
