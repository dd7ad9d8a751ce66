package commands

import (
	"fmt"

	"github.com/atomicstack/rentroll/internal/logging"
)

const ClearCommandWord = "clear"

const ClearMessageUsage = ClearCommandWord + ": Clears all entries from the client book after confirmation."

// ClearCommand wipes the whole client book. Destructive, so execution only
// returns a prompt; the continuation applies the effect after the user
// confirms.
type ClearCommand struct{}

func (ClearCommand) Execute(ctx *Context) (CommandResult, error) {
	size := ctx.Book.Size()
	return CommandResult{
		Kind:     ResultPrompt,
		Feedback: fmt.Sprintf("This will remove all %d clients. Confirm? (y/yes to proceed)", size),
		Confirm: func() (CommandResult, error) {
			removed := ctx.Book.Clear()
			if ctx.Store != nil {
				if err := ctx.Store.Save(ctx.Book); err != nil {
					logging.Error(err)
					return CommandResult{}, &Error{Message: fmt.Sprintf("Client book cleared but not saved: %v", err)}
				}
			}
			return CommandResult{Feedback: fmt.Sprintf("Client book has been cleared! (%d clients removed)", removed)}, nil
		},
	}, nil
}
