package parser

import (
	"strings"

	"github.com/atomicstack/rentroll/internal/logic/commands"
)

// Parse dispatches the input line to the parser for its command word.
func Parse(input string) (commands.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, invalidFormat(MessageUnknownCommand)
	}

	word, args := splitCommandWord(trimmed)
	switch word {
	case commands.FindCommandWord:
		return ParseFind(args)
	case commands.NextHistoryCommandWord:
		return commands.NextCommandHistoryCommand{}, nil
	case commands.PreviousHistoryCommandWord:
		return commands.PreviousCommandHistoryCommand{}, nil
	case commands.ClearCommandWord:
		return commands.ClearCommand{}, nil
	case commands.HelpCommandWord:
		return commands.HelpCommand{}, nil
	case commands.ExitCommandWord:
		return commands.ExitCommand{}, nil
	case commands.ImportCommandWord:
		return parseImport(args)
	case commands.ExportCommandWord:
		return parseExport(args)
	default:
		return nil, &Error{Message: MessageUnknownCommand}
	}
}

func splitCommandWord(input string) (word, args string) {
	if idx := strings.IndexFunc(input, func(r rune) bool { return r == ' ' || r == '\t' }); idx >= 0 {
		return input[:idx], strings.TrimSpace(input[idx+1:])
	}
	return input, ""
}

func parseImport(args string) (commands.Command, error) {
	path := strings.TrimSpace(args)
	if path == "" || !commands.IsAcceptedDataFile(path) {
		return nil, invalidFormat(commands.ImportMessageUsage)
	}
	return &commands.ImportCommand{Path: path}, nil
}

func parseExport(args string) (commands.Command, error) {
	path := strings.TrimSpace(args)
	if path == "" || !commands.IsAcceptedDataFile(path) {
		return nil, invalidFormat(commands.ExportMessageUsage)
	}
	return &commands.ExportCommand{Path: path}, nil
}
