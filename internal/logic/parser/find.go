package parser

import (
	"strings"

	"github.com/atomicstack/rentroll/internal/logic/commands"
)

var findPrefixes = []Prefix{PrefixKeyword, PrefixName, PrefixPhone, PrefixEmail, PrefixTag}

// ParseFind builds a find command from raw argument text.
//
// The text must contain at least one recognized prefix and no preamble.
// General keywords (`k/`) apply to every field; `n/`, `p/`, `e/` and `t/`
// values narrow only their own field. Every value must be non-blank after
// trimming.
func ParseFind(args string) (*commands.FindCommand, error) {
	m := Tokenize(args, findPrefixes...)

	if !m.AnyPresent(findPrefixes...) || m.Preamble() != "" {
		return nil, invalidFormat(commands.FindMessageUsage)
	}

	general, err := keywordValues(m, PrefixKeyword)
	if err != nil {
		return nil, err
	}
	names, err := keywordValues(m, PrefixName)
	if err != nil {
		return nil, err
	}
	phones, err := keywordValues(m, PrefixPhone)
	if err != nil {
		return nil, err
	}
	emails, err := keywordValues(m, PrefixEmail)
	if err != nil {
		return nil, err
	}
	tags, err := keywordValues(m, PrefixTag)
	if err != nil {
		return nil, err
	}

	return &commands.FindCommand{
		NameKeywords:   merge(general, names),
		PhoneKeywords:  merge(general, phones),
		EmailKeywords:  merge(general, emails),
		TagKeywords:    merge(general, tags),
		RentalKeywords: merge(general, nil),
	}, nil
}

// keywordValues trims the values for a prefix, rejecting blanks.
func keywordValues(m ArgumentMultimap, p Prefix) ([]string, error) {
	raw := m.AllValues(p)
	if len(raw) == 0 {
		return nil, nil
	}
	trimmed := make([]string, 0, len(raw))
	for _, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, &Error{Message: MessageKeywordConstraints}
		}
		trimmed = append(trimmed, value)
	}
	return trimmed, nil
}

func merge(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
