// Package model holds the in-memory client book and its visible, filtered
// view. All access happens on the UI event loop; the book is not safe for
// concurrent use.
package model

import "github.com/atomicstack/rentroll/internal/model/client"

// Book stores every known client plus the predicate currently narrowing the
// visible list. A nil predicate exposes all clients.
type Book struct {
	clients []client.Client
	filter  client.Predicate
}

func NewBook() *Book {
	return &Book{}
}

// SetClients replaces the whole client list, keeping the active filter.
func (b *Book) SetClients(clients []client.Client) {
	b.clients = cloneClients(clients)
}

// Clients returns a copy of every client regardless of filter.
func (b *Book) Clients() []client.Client {
	return cloneClients(b.clients)
}

// Visible returns the clients matched by the active filter.
func (b *Book) Visible() []client.Client {
	if b.filter == nil {
		return cloneClients(b.clients)
	}
	visible := make([]client.Client, 0, len(b.clients))
	for _, c := range b.clients {
		if b.filter(c) {
			visible = append(visible, c)
		}
	}
	return visible
}

// SetFilter installs a predicate and reports how many clients it matches.
func (b *Book) SetFilter(p client.Predicate) int {
	b.filter = p
	return len(b.Visible())
}

// ClearFilter restores the unfiltered view.
func (b *Book) ClearFilter() {
	b.filter = nil
}

// Filtered reports whether a find filter is active.
func (b *Book) Filtered() bool {
	return b.filter != nil
}

// Add inserts a client, replacing any existing entry with the same ID.
func (b *Book) Add(c client.Client) {
	for i := range b.clients {
		if b.clients[i].Equal(c) {
			b.clients[i] = c
			return
		}
	}
	b.clients = append(b.clients, c)
}

// Clear removes every client and drops the filter. Returns how many entries
// were removed.
func (b *Book) Clear() int {
	n := len(b.clients)
	b.clients = nil
	b.filter = nil
	return n
}

// Size is the total client count, ignoring the filter.
func (b *Book) Size() int {
	return len(b.clients)
}

func cloneClients(clients []client.Client) []client.Client {
	if len(clients) == 0 {
		return nil
	}
	dup := make([]client.Client, len(clients))
	copy(dup, clients)
	return dup
}
