// Package history keeps the entered-command history and the cursor the
// up/down navigation commands walk.
package history

import (
	"context"
	"strings"
	"time"

	"github.com/atomicstack/rentroll/internal/logging"
	"github.com/atomicstack/rentroll/internal/logging/events"
	"github.com/atomicstack/rentroll/internal/storage"
)

const defaultLoadLimit = 1000

// Navigator owns the in-memory history sequence and its cursor. The cursor
// sits one past the newest entry after every recorded command; Previous and
// Next clamp at the ends and never fail.
//
// All methods run on the UI event loop; the navigator is not safe for
// concurrent use.
type Navigator struct {
	db      *storage.DB
	entries []string
	cursor  int
}

// Load restores history from the database. A nil db yields an empty,
// memory-only navigator.
func Load(db *storage.DB) (*Navigator, error) {
	n := &Navigator{db: db}
	if db == nil {
		return n, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := db.RecentHistory(ctx, defaultLoadLimit)
	if err != nil {
		return nil, err
	}
	n.entries = entries
	n.cursor = len(entries)
	return n, nil
}

// NewNavigator builds a memory-only navigator over the given entries.
func NewNavigator(entries ...string) *Navigator {
	return &Navigator{
		entries: append([]string(nil), entries...),
		cursor:  len(entries),
	}
}

// Record appends an entered command line and resets the cursor. Blank input
// is skipped. Persistence failures are logged, never surfaced: losing a
// history entry must not fail the command that produced it.
func (n *Navigator) Record(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	n.entries = append(n.entries, trimmed)
	n.cursor = len(n.entries)
	events.History.Record(trimmed)
	if n.db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := n.db.AppendHistory(ctx, trimmed); err != nil {
		logging.Error(err)
	}
}

// Previous moves the cursor toward older entries and returns the entry under
// it. With no history it returns the empty string.
func (n *Navigator) Previous() string {
	if len(n.entries) == 0 {
		return ""
	}
	if n.cursor > 0 {
		n.cursor--
	}
	if n.cursor >= len(n.entries) {
		n.cursor = len(n.entries) - 1
	}
	events.History.Cursor(n.cursor, len(n.entries))
	return n.entries[n.cursor]
}

// Next moves the cursor toward newer entries and returns the entry under it,
// clamping at the newest.
func (n *Navigator) Next() string {
	if len(n.entries) == 0 {
		return ""
	}
	if n.cursor < len(n.entries)-1 {
		n.cursor++
	} else {
		n.cursor = len(n.entries) - 1
	}
	events.History.Cursor(n.cursor, len(n.entries))
	return n.entries[n.cursor]
}

// Entries exposes a copy of the history sequence, oldest first.
func (n *Navigator) Entries() []string {
	return append([]string(nil), n.entries...)
}
