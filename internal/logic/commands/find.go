package commands

import (
	"fmt"

	"github.com/atomicstack/rentroll/internal/model/client"
)

const FindCommandWord = "find"

// FindMessageUsage documents the find syntax for format errors.
const FindMessageUsage = FindCommandWord + ": Finds all clients whose fields contain any of " +
	"the given keywords (case-insensitive) and displays them as a list.\n" +
	"Parameters: [k/KEYWORD]... [n/NAME]... [p/PHONE]... [e/EMAIL]... [t/TAG]...\n" +
	"Example: " + FindCommandWord + " k/alice k/serangoon"

// FindCommand filters the visible client list. General keywords (`k/`) feed
// every field predicate; field-specific keywords only their own.
type FindCommand struct {
	NameKeywords   []string
	PhoneKeywords  []string
	EmailKeywords  []string
	TagKeywords    []string
	RentalKeywords []string
}

func (c *FindCommand) Execute(ctx *Context) (CommandResult, error) {
	filter := client.AnyOf(
		client.NameContainsKeywords(c.NameKeywords),
		client.PhoneContainsKeywords(c.PhoneKeywords),
		client.EmailContainsKeywords(c.EmailKeywords),
		client.TagsContainKeywords(c.TagKeywords),
		client.RentalInformationContainsKeywords(c.RentalKeywords),
	)
	matched := ctx.Book.SetFilter(filter)
	return CommandResult{Feedback: fmt.Sprintf("%d clients listed!", matched)}, nil
}
