package commands

const ExitCommandWord = "exit"

const ExitMessageUsage = ExitCommandWord + ": Exits the program."

// ExitCommand asks the UI to persist window state and quit.
type ExitCommand struct{}

func (ExitCommand) Execute(ctx *Context) (CommandResult, error) {
	return CommandResult{Kind: ResultExit, Feedback: "Exiting rentroll as requested ..."}, nil
}
