package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/rentroll/internal/logging"
	"github.com/atomicstack/rentroll/internal/model"
	"github.com/atomicstack/rentroll/internal/model/client"
)

func seededBook() *model.Book {
	alice := client.New("Alice Pauline", "94351253", "alice@example.com", "friends").
		WithRentals(client.NewRentalInformation("Blk 30 Geylang Street 29", 2400, 4800, "Carl Kurz"))
	benson := client.New("Benson Meier", "98765432", "benson@example.com")
	b := model.NewBook()
	b.SetClients([]client.Client{alice, benson})
	return b
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	store := NewBookStorage(path)
	book := seededBook()

	if err := store.Save(book); err != nil {
		t.Fatalf("save: %v", err)
	}
	if store.LastSaved().IsZero() {
		t.Fatal("expected LastSaved to be stamped")
	}

	loaded := model.NewBook()
	if err := NewBookStorage(path).Load(loaded); err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Size() != 2 {
		t.Fatalf("expected 2 clients, got %d", loaded.Size())
	}
	got := loaded.Clients()[0]
	if got.Name != "Alice Pauline" || len(got.Rentals) != 1 {
		t.Fatalf("unexpected first client %+v", got)
	}
	if got.Rentals[0].MonthlyRent != 2400 {
		t.Fatalf("unexpected rental %+v", got.Rentals[0])
	}
}

func TestLoadTracesOncePerStartup(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "trace.log")
	logging.Configure(logPath)
	logging.SetTraceEnabled(true)
	defer func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	}()

	path := filepath.Join(dir, "book.json")
	if err := NewBookStorage(path).Save(seededBook()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := NewBookStorage(path).Load(model.NewBook()); err != nil {
		t.Fatalf("load: %v", err)
	}

	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(raw), `"event":"book.loaded"`); got != 1 {
		t.Fatalf("expected one book.loaded entry, got %d:\n%s", got, raw)
	}
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	store := NewBookStorage(filepath.Join(t.TempDir(), "absent.json"))
	book := model.NewBook()
	if err := store.Load(book); err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if book.Size() != 0 {
		t.Fatalf("expected empty book, got %d", book.Size())
	}
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewBookStorage(filepath.Join(dir, "book.json"))
	book := seededBook()

	csvPath := filepath.Join(dir, "export.csv")
	if err := store.Export(book, csvPath); err != nil {
		t.Fatalf("export csv: %v", err)
	}

	imported := model.NewBook()
	read, err := store.ImportInto(imported, csvPath)
	if err != nil {
		t.Fatalf("import csv: %v", err)
	}
	if read != 2 || imported.Size() != 2 {
		t.Fatalf("expected 2 clients, read=%d size=%d", read, imported.Size())
	}
	alice := imported.Clients()[0]
	if alice.Name != "Alice Pauline" || len(alice.Rentals) != 1 {
		t.Fatalf("unexpected imported client %+v", alice)
	}
	rental := alice.Rentals[0]
	if rental.Address != "Blk 30 Geylang Street 29" || rental.Deposit != 4800 {
		t.Fatalf("unexpected rental %+v", rental)
	}
	if len(rental.Customers) != 1 || rental.Customers[0] != "Carl Kurz" {
		t.Fatalf("unexpected customers %v", rental.Customers)
	}
}

func TestImportMergesById(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.json")
	store := NewBookStorage(path)
	book := seededBook()
	if err := store.Save(book); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Importing the same file twice must not duplicate entries: IDs match.
	target := model.NewBook()
	if _, err := store.ImportInto(target, path); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := store.ImportInto(target, path); err != nil {
		t.Fatalf("second import: %v", err)
	}
	if target.Size() != 2 {
		t.Fatalf("expected merge by id, got %d clients", target.Size())
	}
}

func TestExportRejectsUnknownExtension(t *testing.T) {
	store := NewBookStorage(filepath.Join(t.TempDir(), "book.json"))
	if err := store.Export(model.NewBook(), filepath.Join(t.TempDir(), "out.xml")); err == nil {
		t.Fatal("expected unsupported extension error")
	}
}

func TestCSVRejectsBadAmounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	data := "name,phone,email,tags,rental_address,monthly_rent,deposit,customers\n" +
		"Alice,123,a@b.c,,Some Street,notanumber,0,\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store := NewBookStorage(filepath.Join(dir, "book.json"))
	if _, err := store.ImportInto(model.NewBook(), path); err == nil {
		t.Fatal("expected amount parse error")
	}
}

func TestWindowStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uistate.json")
	saved := WindowState{Width: 120, Height: 40, X: 10, Y: 5}
	if err := SaveWindowState(path, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadWindowState(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Width != 120 || loaded.Height != 40 || loaded.X != 10 || loaded.Y != 5 {
		t.Fatalf("unexpected state %+v", loaded)
	}
	if loaded.SavedAt.IsZero() {
		t.Fatal("expected SavedAt stamped")
	}
}

func TestWindowStateMissingFile(t *testing.T) {
	state, err := LoadWindowState(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing state file must not error: %v", err)
	}
	if state != (WindowState{}) {
		t.Fatalf("expected zero state, got %+v", state)
	}
}
