// Package logic executes raw command text against the model: parse, run,
// record history.
package logic

import (
	"github.com/atomicstack/rentroll/internal/history"
	"github.com/atomicstack/rentroll/internal/logging/events"
	"github.com/atomicstack/rentroll/internal/logic/commands"
	"github.com/atomicstack/rentroll/internal/logic/parser"
	"github.com/atomicstack/rentroll/internal/model"
)

// Logic owns the book, the history navigator and the storage used by
// commands. Everything runs synchronously on the caller's goroutine.
type Logic struct {
	book      *model.Book
	navigator *history.Navigator
	store     commands.Store
}

func New(book *model.Book, navigator *history.Navigator, store commands.Store) *Logic {
	return &Logic{book: book, navigator: navigator, store: store}
}

// Execute parses and runs one input line.
//
// Entered text is recorded into history whether or not it runs successfully,
// so a typo can be recalled and fixed. The history navigation commands are
// the exception: recording them would bury the entries they recall.
func (l *Logic) Execute(text string) (commands.CommandResult, error) {
	events.Command.Queue(text)

	cmd, parseErr := parser.Parse(text)
	if l.navigator != nil && !isHistoryNavigation(cmd) {
		l.navigator.Record(text)
	}
	if parseErr != nil {
		events.Command.Error(text, parseErr)
		return commands.CommandResult{}, parseErr
	}

	result, err := cmd.Execute(l.context())
	if err != nil {
		events.Command.Error(text, err)
		return commands.CommandResult{}, err
	}
	events.Command.Result(text, result.Kind.String())
	return result, nil
}

// Book exposes the model for the UI's list panel.
func (l *Logic) Book() *model.Book {
	return l.book
}

// History exposes the navigator for the UI's arrow-key recall bindings.
func (l *Logic) History() *history.Navigator {
	return l.navigator
}

func (l *Logic) context() *commands.Context {
	var nav commands.HistoryNavigator
	if l.navigator != nil {
		nav = l.navigator
	}
	return &commands.Context{Book: l.book, History: nav, Store: l.store}
}

func isHistoryNavigation(cmd commands.Command) bool {
	switch cmd.(type) {
	case commands.NextCommandHistoryCommand, commands.PreviousCommandHistoryCommand:
		return true
	default:
		return false
	}
}
