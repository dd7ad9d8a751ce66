// Package dispatcher applies backend change events to the in-memory book.
package dispatcher

import (
	"github.com/atomicstack/rentroll/internal/backend"
	"github.com/atomicstack/rentroll/internal/logging/events"
	"github.com/atomicstack/rentroll/internal/model"
)

type Result struct {
	BookUpdated bool
	Err         error
}

type Dispatcher struct {
	book *model.Book
	path string
}

func New(book *model.Book, path string) *Dispatcher {
	return &Dispatcher{book: book, path: path}
}

// Handle folds one watcher event into the book. The active find filter is
// kept; the visible list re-evaluates against the new entries.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		return Result{Err: evt.Err}
	}
	d.book.SetClients(evt.Clients)
	events.Book.Reloaded(d.path, len(evt.Clients))
	return Result{BookUpdated: true}
}
