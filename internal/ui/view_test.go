package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/rentroll/internal/testutil"
)

func TestHelpTextGolden(t *testing.T) {
	testutil.AssertGolden(t, "help.golden", helpText())
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello world", 5); got != "hell…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncateText("hi", 5); got != "hi" {
		t.Fatalf("short strings pass through, got %q", got)
	}
	if got := truncateText("hello", 1); got != "h" {
		t.Fatalf("width 1 keeps one rune, got %q", got)
	}
}

func TestLimitHeightAddsEllipsisRow(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}, {text: "d"}}
	limited := limitHeight(lines, 3, 80)
	if len(limited) != 3 {
		t.Fatalf("len = %d, want 3", len(limited))
	}
	if limited[2].text != "…" {
		t.Fatalf("last line = %q, want ellipsis", limited[2].text)
	}
}

func TestViewShowsClientsAndFeedback(t *testing.T) {
	m := newTestModel(t, sampleClients()...)
	m.submitText(t, "find n/benson")
	view := m.View()
	if !strings.Contains(view, "Benson Meier") {
		t.Fatalf("view should list the matching client:\n%s", view)
	}
	if strings.Contains(view, "Alice Pauline") {
		t.Fatalf("filtered-out client should not render:\n%s", view)
	}
	if !strings.Contains(view, "1 clients listed!") {
		t.Fatalf("view should carry the command feedback:\n%s", view)
	}
	if !strings.Contains(view, "1/2 clients") {
		t.Fatalf("header should show the filtered count:\n%s", view)
	}
}

func TestViewEmptyBook(t *testing.T) {
	m := newTestModel(t)
	if view := m.View(); !strings.Contains(view, "(no clients)") {
		t.Fatalf("empty book placeholder missing:\n%s", view)
	}
}

func TestRentalCountCell(t *testing.T) {
	if got := rentalCountCell(0); got != "-" {
		t.Fatalf("zero rentals = %q", got)
	}
	if got := rentalCountCell(1); got != "1 rental" {
		t.Fatalf("one rental = %q", got)
	}
	if got := rentalCountCell(3); got != "3 rentals" {
		t.Fatalf("three rentals = %q", got)
	}
}
