package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/rentroll/internal/backend"
	"github.com/atomicstack/rentroll/internal/model"
	"github.com/atomicstack/rentroll/internal/model/client"
)

func TestHandleReplacesBookContents(t *testing.T) {
	book := model.NewBook()
	book.SetClients([]client.Client{client.New("Alice Pauline", "94351253", "alice@example.com")})
	d := New(book, "rentroll.json")

	fresh := []client.Client{
		client.New("Benson Meier", "98765432", "benson@example.com"),
		client.New("Carl Kurz", "95352563", "carl@example.com"),
	}
	res := d.Handle(backend.Event{Clients: fresh})
	if !res.BookUpdated || res.Err != nil {
		t.Fatalf("unexpected result: %#v", res)
	}
	if book.Size() != 2 {
		t.Fatalf("book size = %d, want 2", book.Size())
	}
}

func TestHandleKeepsActiveFilter(t *testing.T) {
	book := model.NewBook()
	book.SetClients([]client.Client{client.New("Alice Pauline", "94351253", "alice@example.com")})
	book.SetFilter(client.NameContainsKeywords([]string{"benson"}))
	d := New(book, "rentroll.json")

	d.Handle(backend.Event{Clients: []client.Client{
		client.New("Benson Meier", "98765432", "benson@example.com"),
	}})
	visible := book.Visible()
	if len(visible) != 1 || visible[0].Name != "Benson Meier" {
		t.Fatalf("filter should re-evaluate against new entries: %#v", visible)
	}
}

func TestHandlePropagatesError(t *testing.T) {
	book := model.NewBook()
	d := New(book, "rentroll.json")
	res := d.Handle(backend.Event{Err: errors.New("stat failed")})
	if res.BookUpdated {
		t.Fatalf("error events must not touch the book")
	}
	if res.Err == nil {
		t.Fatalf("expected error to propagate")
	}
}
