// Package app bootstraps the rentroll program: storage, history, watcher
// and the Bubble Tea UI.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/rentroll/internal/backend"
	"github.com/atomicstack/rentroll/internal/history"
	"github.com/atomicstack/rentroll/internal/logging"
	"github.com/atomicstack/rentroll/internal/logging/events"
	"github.com/atomicstack/rentroll/internal/logic"
	"github.com/atomicstack/rentroll/internal/model"
	"github.com/atomicstack/rentroll/internal/storage"
	"github.com/atomicstack/rentroll/internal/ui"
	"github.com/atomicstack/rentroll/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DataFile      string
	HistoryDB     string
	StateFile     string
	Width         int
	Height        int
	ShowFooter    bool
	WatchInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	store := storage.NewBookStorage(cfg.DataFile)
	book := model.NewBook()
	if err := store.Load(book); err != nil {
		return fmt.Errorf("load client book: %w", err)
	}

	db, err := storage.OpenDB(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	navigator, err := history.Load(db)
	if err != nil {
		// History is a convenience; a broken database should not keep
		// the book from opening.
		logging.Error(err)
		navigator = history.NewNavigator()
	}

	var watcher *backend.Watcher
	if cfg.WatchInterval > 0 {
		watcher = backend.NewWatcher(store, cfg.WatchInterval)
		defer watcher.Stop()
	}

	win := loadWindowState(cfg)
	engine := logic.New(book, navigator, store)
	view := ui.NewModel(engine, command.New(engine), watcher, store, win, cfg.ShowFooter)

	program := tea.NewProgram(view, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return err
	}

	if m, ok := final.(*ui.Model); ok {
		last := m.WindowState()
		saveWindowState(cfg.StateFile, last)
		events.App.Exit(last.Width, last.Height)
	}
	return nil
}

// loadWindowState restores the persisted geometry; explicit width/height
// flags win over whatever was saved.
func loadWindowState(cfg Config) storage.WindowState {
	win, err := storage.LoadWindowState(cfg.StateFile)
	if err != nil {
		logging.Error(err)
		win = storage.WindowState{}
	}
	if cfg.Width > 0 {
		win.Width = cfg.Width
	}
	if cfg.Height > 0 {
		win.Height = cfg.Height
	}
	return win
}

func saveWindowState(path string, win storage.WindowState) {
	if path == "" || win.Width <= 0 || win.Height <= 0 {
		return
	}
	if err := storage.SaveWindowState(path, win); err != nil {
		logging.Error(err)
	}
}
