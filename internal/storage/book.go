package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicstack/rentroll/internal/logging/events"
	"github.com/atomicstack/rentroll/internal/model"
	"github.com/atomicstack/rentroll/internal/model/client"
	"github.com/google/uuid"
)

// BookStorage reads and writes the client book. The configured path is the
// canonical JSON data file; import/export additionally understand CSV.
type BookStorage struct {
	path    string
	savedAt time.Time
	onSave  []func()
}

type bookFile struct {
	Clients []client.Client `json:"clients"`
}

func NewBookStorage(path string) *BookStorage {
	return &BookStorage{path: path}
}

// Path returns the canonical data file location.
func (s *BookStorage) Path() string {
	return s.path
}

// LastSaved reports when the book was last written, zero before any save.
func (s *BookStorage) LastSaved() time.Time {
	return s.savedAt
}

// OnSave registers fn to run after every successful save. The file watcher
// uses this to tell its own writes apart from external ones.
func (s *BookStorage) OnSave(fn func()) {
	s.onSave = append(s.onSave, fn)
}

// Load reads the data file into the book. A missing file starts an empty
// book; that is not an error.
func (s *BookStorage) Load(book *model.Book) error {
	clients, _, err := s.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			book.SetClients(nil)
			events.Book.Loaded(s.path, 0)
			return nil
		}
		return err
	}
	book.SetClients(clients)
	events.Book.Loaded(s.path, len(clients))
	return nil
}

// Save writes the book to the canonical data file as JSON.
func (s *BookStorage) Save(book *model.Book) error {
	if err := s.writeJSON(s.path, book.Clients()); err != nil {
		return err
	}
	s.savedAt = time.Now()
	events.Book.Saved(s.path, book.Size())
	for _, fn := range s.onSave {
		fn()
	}
	return nil
}

// ImportInto merges entries read from path into the book and reports how
// many were read.
func (s *BookStorage) ImportInto(book *model.Book, path string) (int, error) {
	clients, _, err := s.ReadFile(path)
	if err != nil {
		return 0, err
	}
	for _, c := range clients {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		book.Add(c)
	}
	return len(clients), nil
}

// Export writes the book to path in the format implied by its extension.
func (s *BookStorage) Export(book *model.Book, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return s.writeJSON(path, book.Clients())
	case ".csv":
		return writeCSV(path, book.Clients())
	default:
		return fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
}

// ReadFile loads clients from a .json or .csv file. The returned ModTime
// lets the change watcher compare snapshots.
func (s *BookStorage) ReadFile(path string) ([]client.Client, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		clients, err := readJSON(path)
		return clients, info.ModTime(), err
	case ".csv":
		clients, err := readCSV(path)
		return clients, info.ModTime(), err
	default:
		return nil, time.Time{}, fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
}

func readJSON(path string) ([]client.Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file bookFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Clients, nil
}

func (s *BookStorage) writeJSON(path string, clients []client.Client) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(bookFile{Clients: clients}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode book: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write book: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace book file: %w", err)
	}
	return nil
}
