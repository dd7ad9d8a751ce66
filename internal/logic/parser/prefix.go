// Package parser turns raw command text into executable commands. Command
// arguments use short prefix markers (`k/`, `n/`, ...) to identify which
// field a value populates.
package parser

// Prefix marks the start of an argument value in command text.
type Prefix string

const (
	PrefixKeyword Prefix = "k/"
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixTag     Prefix = "t/"
)

func (p Prefix) String() string {
	return string(p)
}
