package glud

import (
	"fmt"
	"strconv"
)

// Automata builds small total DFAs over a given alphabet.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (total) automaton with the empty language: a single sink state.
func (*Automata) MakeEmpty(alphabet ...Symbol) (*DFA, error) {
	b := NewDFABuilder(alphabet...)
	s := b.AddState()
	b.SetInitial(s)
	for _, symbol := range b.alphabet {
		if err := b.AddTransition(s, symbol, s); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// MakeEmptyString
// Returns a new (total) automaton that accepts only the empty string.
func (a *Automata) MakeEmptyString(alphabet ...Symbol) (*DFA, error) {
	return a.MakeString("", alphabet...)
}

// MakeAnyString
// Returns a new (total) automaton that accepts all strings over the alphabet.
func (*Automata) MakeAnyString(alphabet ...Symbol) (*DFA, error) {
	b := NewDFABuilder(alphabet...)
	s := b.AddState("any")
	b.SetInitial(s)
	b.SetAccept(s, true)
	for _, symbol := range b.alphabet {
		if err := b.AddTransition(s, symbol, s); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// MakeString
// Returns a new (total) automaton that accepts exactly s. Every character of s must be in the
// alphabet.
func (*Automata) MakeString(s string, alphabet ...Symbol) (*DFA, error) {
	b := NewDFABuilder(alphabet...)
	runes := []rune(s)
	states := make([]StateID, len(runes)+1)
	for i := range states {
		states[i] = b.AddState(strconv.Itoa(i))
	}
	sink := b.AddState()
	b.SetInitial(states[0])
	b.SetAccept(states[len(runes)], true)

	for i, r := range runes {
		if !b.alphabet.Contains(Symbol(r)) {
			return nil, fmt.Errorf("%w: %q is not in the alphabet %s", ErrInvalidAutomaton, r, b.alphabet)
		}
		if err := b.AddTransition(states[i], Symbol(r), states[i+1]); err != nil {
			return nil, err
		}
	}
	for _, id := range append(states, sink) {
		for _, symbol := range b.alphabet {
			if _, ok := b.delta[id][symbol]; ok {
				continue
			}
			if err := b.AddTransition(id, symbol, sink); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}
