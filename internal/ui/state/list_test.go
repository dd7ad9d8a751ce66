package state

import "testing"

func sampleRows() []Row {
	return []Row{
		{ID: "1", Label: "Alice Pauline    94351253  alice@example.com"},
		{ID: "2", Label: "Benson Meier     98765432  benson@example.com"},
		{ID: "3", Label: "Carl Kurz        95352563  carl@example.com"},
		{ID: "4", Label: "Daniel Meier     87652533  daniel@example.com"},
		{ID: "5", Label: "Elle Meyer       94822241  elle@example.com"},
	}
}

func TestMoveCursorClampsAtEnds(t *testing.T) {
	list := NewList(sampleRows())
	if moved := list.MoveCursor(-1); moved {
		t.Fatalf("expected cursor to stay at top")
	}
	list.MoveCursorEnd()
	if list.Cursor != 4 {
		t.Fatalf("cursor = %d, want 4", list.Cursor)
	}
	if moved := list.MoveCursor(1); moved {
		t.Fatalf("expected cursor to stay at bottom")
	}
	list.MoveCursor(-2)
	if list.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", list.Cursor)
	}
}

func TestMoveCursorPage(t *testing.T) {
	list := NewList(sampleRows())
	list.MoveCursorPage(1, 3)
	if list.Cursor != 3 {
		t.Fatalf("cursor = %d, want 3", list.Cursor)
	}
	list.MoveCursorPage(1, 3)
	if list.Cursor != 4 {
		t.Fatalf("cursor = %d, want clamp at 4", list.Cursor)
	}
	list.MoveCursorPage(-1, 3)
	if list.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", list.Cursor)
	}
}

func TestFilterNarrowsAndRestoresCursor(t *testing.T) {
	list := NewList(sampleRows())
	list.MoveCursor(2)
	list.SetFilter("meier")
	if len(list.Rows) != 2 {
		t.Fatalf("filtered rows = %d, want 2", len(list.Rows))
	}
	row, ok := list.Selected()
	if !ok || row.ID != "2" {
		t.Fatalf("selected = %+v, want Benson", row)
	}
	list.ClearFilter()
	if len(list.Rows) != 5 {
		t.Fatalf("rows after clear = %d, want 5", len(list.Rows))
	}
	if list.Cursor != 2 {
		t.Fatalf("cursor after clear = %d, want restored 2", list.Cursor)
	}
}

func TestBackspaceFilter(t *testing.T) {
	list := NewList(sampleRows())
	list.SetFilter("carl")
	if len(list.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(list.Rows))
	}
	if !list.BackspaceFilter() {
		t.Fatalf("expected backspace to consume a rune")
	}
	if list.Filter != "car" {
		t.Fatalf("filter = %q, want %q", list.Filter, "car")
	}
	list.SetFilter("")
	if list.BackspaceFilter() {
		t.Fatalf("backspace on empty filter should report false")
	}
}

func TestSetRowsKeepsSelectionByID(t *testing.T) {
	list := NewList(sampleRows())
	list.MoveCursor(3)
	rows := sampleRows()
	rows = append(rows[:1], rows[2:]...) // drop Benson
	list.SetRows(rows)
	row, ok := list.Selected()
	if !ok || row.ID != "4" {
		t.Fatalf("selected = %+v, want Daniel", row)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	list := NewList(sampleRows())
	list.MoveCursorEnd()
	list.EnsureCursorVisible(2)
	if list.ViewportOffset != 3 {
		t.Fatalf("offset = %d, want 3", list.ViewportOffset)
	}
	list.MoveCursorHome()
	list.EnsureCursorVisible(2)
	if list.ViewportOffset != 0 {
		t.Fatalf("offset = %d, want 0", list.ViewportOffset)
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	rows := []Row{
		{ID: "1", Label: "meier"},
		{ID: "2", Label: "meier daniel"},
		{ID: "3", Label: "benson meier"},
	}
	if idx := BestMatchIndex(rows, "meier"); idx != 0 {
		t.Fatalf("exact match index = %d, want 0", idx)
	}
	if idx := BestMatchIndex(rows, "meier d"); idx != 1 {
		t.Fatalf("prefix match index = %d, want 1", idx)
	}
	if idx := BestMatchIndex(rows, "benson"); idx != 2 {
		t.Fatalf("containment index = %d, want 2", idx)
	}
}
