package glud

import (
	"slices"
	"strings"
)

// Symbol A single input character of an alphabet.
type Symbol rune

// Epsilon labels transitions that consume no input. It is never a member of an Alphabet.
const Epsilon Symbol = -1

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

// Alphabet A sorted set of symbols.
type Alphabet []Symbol

// NewAlphabet Returns the sorted, duplicate free alphabet made of symbols.
func NewAlphabet(symbols ...Symbol) Alphabet {
	a := make(Alphabet, len(symbols))
	copy(a, symbols)
	slices.Sort(a)
	return slices.Compact(a)
}

// AlphabetOf Returns the alphabet of every character in s.
func AlphabetOf(s string) Alphabet {
	symbols := make([]Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, Symbol(r))
	}
	return NewAlphabet(symbols...)
}

// Contains Returns true if s is a member of the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	_, ok := slices.BinarySearch(a, s)
	return ok
}

func (a Alphabet) Len() int {
	return len(a)
}

func (a Alphabet) String() string {
	parts := make([]string, len(a))
	for i, s := range a {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (a Alphabet) clone() Alphabet {
	return slices.Clone(a)
}
