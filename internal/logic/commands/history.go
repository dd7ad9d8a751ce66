package commands

const (
	NextHistoryCommandWord     = "downCommand"
	PreviousHistoryCommandWord = "upCommand"
)

// NextCommandHistoryCommand recalls the next entry from the command history
// cursor. It never fails; at the end of history the cursor clamps.
type NextCommandHistoryCommand struct{}

func (NextCommandHistoryCommand) Execute(ctx *Context) (CommandResult, error) {
	entry := ""
	if ctx.History != nil {
		entry = ctx.History.Next()
	}
	return CommandResult{Feedback: entry, Echo: entry}, nil
}

// PreviousCommandHistoryCommand recalls the previous entry from the command
// history cursor. Same contract as the next-entry command.
type PreviousCommandHistoryCommand struct{}

func (PreviousCommandHistoryCommand) Execute(ctx *Context) (CommandResult, error) {
	entry := ""
	if ctx.History != nil {
		entry = ctx.History.Previous()
	}
	return CommandResult{Feedback: entry, Echo: entry}, nil
}
