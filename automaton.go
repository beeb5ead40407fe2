package glud

// Automaton is the read-only view shared by both automaton forms. S is the state identifier: raw
// names (string) for an NFA, interned composite state ids (StateID) for a DFA. States, Alphabet
// and Transitions always enumerate in the same order for the same automaton.
type Automaton[S comparable] interface {
	States() []S
	Alphabet() Alphabet
	Initial() S
	IsAccept(state S) bool
	NumStates() int
	Transitions() []Transition[S]
}

var (
	_ Automaton[string]  = (*NFA)(nil)
	_ Automaton[StateID] = (*DFA)(nil)
)

// Transition is one labelled edge. Symbol is Epsilon for ε-transitions.
type Transition[S comparable] struct {
	Source S
	Symbol Symbol
	Dest   S
}

// Accepting Returns the accepting states of a in enumeration order.
func Accepting[S comparable](a Automaton[S]) []S {
	out := make([]S, 0)
	for _, s := range a.States() {
		if a.IsAccept(s) {
			out = append(out, s)
		}
	}
	return out
}

// NumTransitions Number of edges of a, counting every target of a nondeterministic pair.
func NumTransitions[S comparable](a Automaton[S]) int {
	return len(a.Transitions())
}
