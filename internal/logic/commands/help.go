package commands

const HelpCommandWord = "help"

const HelpMessageUsage = HelpCommandWord + ": Shows program usage instructions."

// HelpCommand asks the UI to open the help overlay.
type HelpCommand struct{}

func (HelpCommand) Execute(ctx *Context) (CommandResult, error) {
	return CommandResult{Kind: ResultShowHelp, Feedback: "Opened help window."}, nil
}
