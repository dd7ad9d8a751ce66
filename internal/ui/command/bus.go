// Package command routes input lines through the confirmation cycle: idle
// inputs execute as commands, awaiting inputs resolve the stored prompt.
package command

import (
	"strings"

	"github.com/atomicstack/rentroll/internal/logging/events"
	"github.com/atomicstack/rentroll/internal/logic"
	"github.com/atomicstack/rentroll/internal/logic/commands"
)

// MessageCommandCancelled is returned verbatim when a prompt is declined.
const MessageCommandCancelled = "Command cancelled"

// State names the two phases of the confirmation cycle.
type State int

const (
	// StateIdle executes input as a fresh command.
	StateIdle State = iota
	// StateAwaiting interprets the next input as a yes/no answer for the
	// pending prompt.
	StateAwaiting
)

var confirmWords = map[string]struct{}{
	"y":   {},
	"yes": {},
}

// Bus executes input lines against the logic engine and owns the prompt
// state machine. The state tag and the pending result move together, so an
// awaiting bus always has a resolvable prompt.
type Bus struct {
	logic   *logic.Logic
	state   State
	pending commands.CommandResult
}

func New(l *logic.Logic) *Bus {
	return &Bus{logic: l}
}

// State reports the current phase.
func (b *Bus) State() State {
	return b.state
}

// PendingFeedback returns the prompt text awaiting an answer, empty when
// idle.
func (b *Bus) PendingFeedback() string {
	if b.state != StateAwaiting {
		return ""
	}
	return b.pending.Feedback
}

// Submit runs one input line. While awaiting, the input is consumed as a
// confirmation answer and the bus returns to idle whatever the answer was.
// A failed command leaves the bus idle; a failure can never strand the user
// in the awaiting state.
func (b *Bus) Submit(text string) (commands.CommandResult, error) {
	if b.state == StateAwaiting {
		return b.resolve(text)
	}

	result, err := b.logic.Execute(text)
	if err != nil {
		return commands.CommandResult{}, err
	}
	if result.Kind == commands.ResultPrompt && result.Confirm != nil {
		b.state = StateAwaiting
		b.pending = result
		events.Prompt.Open(result.Feedback)
	}
	return result, nil
}

func (b *Bus) resolve(input string) (commands.CommandResult, error) {
	pending := b.pending
	b.state = StateIdle
	b.pending = commands.CommandResult{}

	if !IsConfirmation(input) {
		events.Prompt.Cancel(input)
		return commands.CommandResult{Feedback: MessageCommandCancelled}, nil
	}
	events.Prompt.Confirm(input)
	return pending.Confirm()
}

// IsConfirmation reports whether the input counts as a yes. The recognized
// tokens are exactly "y" and "yes", trimmed and case-insensitive.
func IsConfirmation(input string) bool {
	_, ok := confirmWords[strings.ToLower(strings.TrimSpace(input))]
	return ok
}
