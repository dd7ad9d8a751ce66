// Package commands defines the executable command set and the result type
// the UI consumes.
package commands

import "github.com/atomicstack/rentroll/internal/model"

// ResultKind tags a CommandResult with the follow-up behaviour it requires
// from the UI.
type ResultKind int

const (
	// ResultNormal needs no follow-up beyond displaying feedback.
	ResultNormal ResultKind = iota
	// ResultPrompt pauses execution until the user confirms or cancels.
	ResultPrompt
	// ResultShowHelp asks the UI to open the help overlay.
	ResultShowHelp
	// ResultExit asks the UI to persist window state and quit.
	ResultExit
)

func (k ResultKind) String() string {
	switch k {
	case ResultPrompt:
		return "prompt"
	case ResultShowHelp:
		return "show-help"
	case ResultExit:
		return "exit"
	default:
		return "normal"
	}
}

// CommandResult is the outcome of executing one command.
type CommandResult struct {
	// Feedback is the user-facing message for the result display.
	Feedback string
	// Echo is placed into the command box after execution. History
	// navigation uses it to recall entries; most commands leave it empty,
	// clearing the box.
	Echo string
	// Kind selects follow-up behaviour.
	Kind ResultKind
	// Confirm resolves a prompt-kind result when the user answers yes.
	// Nil for every other kind.
	Confirm func() (CommandResult, error)
}

// Error is a command failure: syntactically valid input with invalid runtime
// semantics.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HistoryNavigator walks previously entered commands. Both directions clamp
// at the ends and never fail.
type HistoryNavigator interface {
	Next() string
	Previous() string
}

// Store abstracts book persistence so commands stay testable without a
// filesystem.
type Store interface {
	// Save writes the current book to its configured location.
	Save(book *model.Book) error
	// ImportInto merges entries from path and reports how many were read.
	ImportInto(book *model.Book, path string) (int, error)
	// Export writes the book to path in the format its extension implies.
	Export(book *model.Book, path string) error
}

// Context carries the collaborators a command may touch during execution.
type Context struct {
	Book    *model.Book
	History HistoryNavigator
	Store   Store
}

// Command is a single parsed user action.
type Command interface {
	Execute(ctx *Context) (CommandResult, error)
}
