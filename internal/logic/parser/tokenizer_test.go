package parser

import (
	"reflect"
	"testing"
)

func TestTokenizeSplitsAtPrefixes(t *testing.T) {
	m := Tokenize("k/alice n/Benson Meier k/serangoon", PrefixKeyword, PrefixName)

	if m.Preamble() != "" {
		t.Fatalf("expected empty preamble, got %q", m.Preamble())
	}
	if got := m.AllValues(PrefixKeyword); !reflect.DeepEqual(got, []string{"alice", "serangoon"}) {
		t.Fatalf("unexpected keyword values %v", got)
	}
	if got := m.AllValues(PrefixName); !reflect.DeepEqual(got, []string{"Benson Meier"}) {
		t.Fatalf("unexpected name values %v", got)
	}
}

func TestTokenizePreservesPreamble(t *testing.T) {
	m := Tokenize("some preamble k/alice", PrefixKeyword)
	if m.Preamble() != "some preamble" {
		t.Fatalf("expected preamble preserved, got %q", m.Preamble())
	}
}

func TestTokenizeIgnoresEmbeddedSlashes(t *testing.T) {
	// "2/F" must stay inside the keyword value: a prefix only counts after
	// whitespace.
	m := Tokenize("k/Blk 30 2/F", PrefixKeyword, PrefixPhone)
	if got := m.AllValues(PrefixKeyword); !reflect.DeepEqual(got, []string{"Blk 30 2/F"}) {
		t.Fatalf("unexpected values %v", got)
	}
	if m.AnyPresent(PrefixPhone) {
		t.Fatal("no phone prefix should be detected")
	}
}

func TestValueReturnsLastOccurrence(t *testing.T) {
	m := Tokenize("n/first n/second", PrefixName)
	value, ok := m.Value(PrefixName)
	if !ok || value != "second" {
		t.Fatalf("expected last value, got %q ok=%v", value, ok)
	}

	if _, ok := m.Value(PrefixPhone); ok {
		t.Fatal("absent prefix must report !ok")
	}
}

func TestTokenizeNoPrefixes(t *testing.T) {
	m := Tokenize("just some text", PrefixKeyword, PrefixName, PrefixPhone)
	if m.Preamble() != "just some text" {
		t.Fatalf("expected everything as preamble, got %q", m.Preamble())
	}
	if m.AnyPresent(PrefixKeyword, PrefixName, PrefixPhone) {
		t.Fatal("no prefixes should be present")
	}
}

func TestTokenizeBlankValue(t *testing.T) {
	m := Tokenize("k/ n/alice", PrefixKeyword, PrefixName)
	if got := m.AllValues(PrefixKeyword); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("expected single blank keyword value, got %v", got)
	}
}
