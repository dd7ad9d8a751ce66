package client

import "strings"

// Predicate is a pure membership test over a client. Predicates are built
// once per parsed find command and discarded after the filter is applied.
type Predicate func(Client) bool

// NameContainsKeywords matches clients whose name contains any keyword,
// case-insensitive. An empty keyword list matches nothing.
func NameContainsKeywords(keywords []string) Predicate {
	return fieldContains(keywords, func(c Client) []string {
		return []string{c.Name}
	})
}

// PhoneContainsKeywords matches clients whose phone number contains any
// keyword.
func PhoneContainsKeywords(keywords []string) Predicate {
	return fieldContains(keywords, func(c Client) []string {
		return []string{c.Phone}
	})
}

// EmailContainsKeywords matches clients whose email contains any keyword.
func EmailContainsKeywords(keywords []string) Predicate {
	return fieldContains(keywords, func(c Client) []string {
		return []string{c.Email}
	})
}

// TagsContainKeywords matches clients with any tag containing any keyword.
func TagsContainKeywords(keywords []string) Predicate {
	return fieldContains(keywords, func(c Client) []string {
		return c.Tags
	})
}

// RentalInformationContainsKeywords matches clients with any rental entry
// whose searchable text contains any keyword.
func RentalInformationContainsKeywords(keywords []string) Predicate {
	return fieldContains(keywords, func(c Client) []string {
		texts := make([]string, 0, len(c.Rentals))
		for _, r := range c.Rentals {
			texts = append(texts, r.SearchText())
		}
		return texts
	})
}

// AnyOf combines predicates with OR. No predicates means no match.
func AnyOf(preds ...Predicate) Predicate {
	return func(c Client) bool {
		for _, p := range preds {
			if p != nil && p(c) {
				return true
			}
		}
		return false
	}
}

func fieldContains(keywords []string, fields func(Client) []string) Predicate {
	folded := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			folded = append(folded, kw)
		}
	}
	return func(c Client) bool {
		if len(folded) == 0 {
			return false
		}
		for _, field := range fields(c) {
			haystack := strings.ToLower(field)
			for _, kw := range folded {
				if strings.Contains(haystack, kw) {
					return true
				}
			}
		}
		return false
	}
}
