package parser

import (
	"sort"
	"strings"
)

// ArgumentMultimap holds the values tokenized out of argument text, keyed by
// prefix, plus whatever preamble preceded the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the text before the first recognized prefix, trimmed.
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for the prefix.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	all := m.values[p]
	if len(all) == 0 {
		return "", false
	}
	return all[len(all)-1], true
}

// AllValues returns every value given for the prefix, in input order.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	all := m.values[p]
	if len(all) == 0 {
		return nil
	}
	return append([]string(nil), all...)
}

// AnyPresent reports whether at least one of the prefixes carries a value.
func (m ArgumentMultimap) AnyPresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(m.values[p]) > 0 {
			return true
		}
	}
	return false
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits argument text at every occurrence of the given prefixes.
// A prefix only counts when preceded by whitespace, so values may themselves
// contain slashes (e.g. an address like "Blk 30 2/F").
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	padded := " " + args
	positions := make([]prefixPosition, 0, 8)
	for _, prefix := range prefixes {
		marker := " " + string(prefix)
		from := 0
		for {
			idx := strings.Index(padded[from:], marker)
			if idx < 0 {
				break
			}
			start := from + idx + 1
			positions = append(positions, prefixPosition{prefix: prefix, start: start})
			from = start + len(prefix)
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}
	m.preamble = strings.TrimSpace(padded[:positions[0].start])
	for i, pos := range positions {
		end := len(padded)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := padded[pos.start+len(pos.prefix) : end]
		m.values[pos.prefix] = append(m.values[pos.prefix], strings.TrimSpace(value))
	}
	return m
}
