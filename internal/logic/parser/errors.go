package parser

import "fmt"

const (
	// MessageInvalidCommandFormat wraps a usage string when command text is
	// malformed.
	MessageInvalidCommandFormat = "Invalid command format! \n%s"

	// MessageUnknownCommand is returned for unrecognized command words.
	MessageUnknownCommand = "Unknown command"

	// MessageKeywordConstraints rejects blank keyword values.
	MessageKeywordConstraints = "Keywords should only contain alphanumeric characters and spaces, and it should not be blank"
)

// Error is a parse failure: malformed command text, never a runtime problem.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalidFormat(usage string) *Error {
	return &Error{Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}
