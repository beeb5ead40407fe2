package glud

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// NFA Nondeterministic finite automaton over named states. Every (state, symbol) pair, including
// (state, Epsilon), maps to a set of target states. An NFA is created by NFABuilder.Build and is
// never mutated afterwards.
type NFA struct {
	// State names, sorted. A state is identified internally by its index here.
	names []string
	index map[string]int

	alphabet Alphabet

	// delta[state][symbol] holds the target indices of each transition.
	delta []map[Symbol]*bitset.BitSet

	initial  int
	isAccept *bitset.BitSet
}

// States Returns every state name in ascending order.
func (n *NFA) States() []string {
	return slices.Clone(n.names)
}

func (n *NFA) NumStates() int {
	return len(n.names)
}

func (n *NFA) Alphabet() Alphabet {
	return n.alphabet.clone()
}

func (n *NFA) Initial() string {
	return n.names[n.initial]
}

// IsAccept Returns true if name is an accepting state.
func (n *NFA) IsAccept(name string) bool {
	i, ok := n.index[name]
	return ok && n.isAccept.Test(uint(i))
}

// HasState Returns true if name is a state of the automaton.
func (n *NFA) HasState(name string) bool {
	_, ok := n.index[name]
	return ok
}

// Targets Returns the sorted targets of the transition (name, symbol); symbol may be Epsilon.
func (n *NFA) Targets(name string, symbol Symbol) []string {
	i, ok := n.index[name]
	if !ok {
		return nil
	}
	targets, ok := n.delta[i][symbol]
	if !ok {
		return nil
	}
	out := make([]string, 0, targets.Count())
	for t, ok := targets.NextSet(0); ok; t, ok = targets.NextSet(t + 1) {
		out = append(out, n.names[t])
	}
	return out
}

// Transitions Returns every edge sorted by source, then symbol (ε first), then target.
func (n *NFA) Transitions() []Transition[string] {
	out := make([]Transition[string], 0)
	for s := range n.names {
		symbols := slices.Sorted(maps.Keys(n.delta[s]))
		for _, sym := range symbols {
			targets := n.delta[s][sym]
			for t, ok := targets.NextSet(0); ok; t, ok = targets.NextSet(t + 1) {
				out = append(out, Transition[string]{Source: n.names[s], Symbol: sym, Dest: n.names[t]})
			}
		}
	}
	return out
}

func (n *NFA) String() string {
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "NFA(states=%v, alphabet=%s, initial=%s, accept=%v)\n",
		n.names, n.alphabet, n.Initial(), Accepting[string](n))
	for _, t := range n.Transitions() {
		fmt.Fprintf(sb, "  %s --%s--> %s\n", t.Source, t.Symbol, t.Dest)
	}
	return sb.String()
}

// EpsilonClosure Returns the smallest superset of states closed under ε-transitions. Names that
// are not states of the automaton are ignored.
func (n *NFA) EpsilonClosure(states ...string) CompositeState {
	set := n.newStateSet()
	for _, name := range states {
		if i, ok := n.index[name]; ok {
			set.add(i)
		}
	}
	return n.closure(set).freeze()
}

// Move Returns the union of the symbol targets of every member of states, without ε-closure.
func (n *NFA) Move(states CompositeState, symbol Symbol) CompositeState {
	set := n.newStateSet()
	for _, name := range states.members {
		if i, ok := n.index[name]; ok {
			set.add(i)
		}
	}
	return n.move(set, symbol).freeze()
}

// closure computes the ε-closure of set with a worklist; set itself is left untouched.
func (n *NFA) closure(set *stateSet) *stateSet {
	result := n.newStateSet()
	result.union(set.bits)

	workList := set.indices()
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		targets, ok := n.delta[s][Epsilon]
		if !ok {
			continue
		}
		for t, ok := targets.NextSet(0); ok; t, ok = targets.NextSet(t + 1) {
			if result.add(int(t)) {
				workList = append(workList, int(t))
			}
		}
	}
	return result
}

func (n *NFA) move(set *stateSet, symbol Symbol) *stateSet {
	result := n.newStateSet()
	for _, s := range set.indices() {
		if targets, ok := n.delta[s][symbol]; ok {
			result.union(targets)
		}
	}
	return result
}

// NFABuilder Collects states and transitions and validates them into an NFA. The zero value is not
// usable; call NewNFABuilder.
type NFABuilder struct {
	states      map[string]struct{}
	alphabet    []Symbol
	transitions []Transition[string]
	initial     string
	hasInitial  bool
	accept      map[string]bool
}

func NewNFABuilder() *NFABuilder {
	return &NFABuilder{
		states: make(map[string]struct{}),
		accept: make(map[string]bool),
	}
}

// AddState Declare states. Declaring a state twice is harmless.
func (b *NFABuilder) AddState(names ...string) {
	for _, name := range names {
		b.states[name] = struct{}{}
	}
}

// SetAlphabet Add symbols to the alphabet.
func (b *NFABuilder) SetAlphabet(symbols ...Symbol) {
	b.alphabet = append(b.alphabet, symbols...)
}

// AddTransition Add source --symbol--> dest. Repeated pairs accumulate into a target set.
func (b *NFABuilder) AddTransition(source string, symbol Symbol, dest string) {
	b.transitions = append(b.transitions, Transition[string]{Source: source, Symbol: symbol, Dest: dest})
}

// AddEpsilon Add an ε-transition from source to dest.
func (b *NFABuilder) AddEpsilon(source, dest string) {
	b.AddTransition(source, Epsilon, dest)
}

func (b *NFABuilder) SetInitial(name string) {
	b.initial = name
	b.hasInitial = true
}

// SetAccept Set or clear name as an accepting state.
func (b *NFABuilder) SetAccept(name string, accept bool) {
	b.accept[name] = accept
}

// Build Validates the collected parts and returns an independent NFA. The builder may keep
// being used afterwards without affecting the result.
func (b *NFABuilder) Build() (*NFA, error) {
	alphabet := NewAlphabet(b.alphabet...)
	if alphabet.Contains(Epsilon) {
		return nil, invalidf("ε cannot be an alphabet symbol")
	}
	if !b.hasInitial {
		return nil, invalidf("no initial state")
	}
	if _, ok := b.states[b.initial]; !ok {
		return nil, invalidf("initial state %q is not declared", b.initial)
	}

	names := slices.Sorted(maps.Keys(b.states))
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	n := &NFA{
		names:    names,
		index:    index,
		alphabet: alphabet,
		delta:    make([]map[Symbol]*bitset.BitSet, len(names)),
		initial:  index[b.initial],
		isAccept: bitset.New(uint(len(names))),
	}
	for i := range n.delta {
		n.delta[i] = make(map[Symbol]*bitset.BitSet)
	}

	for _, t := range b.transitions {
		s, ok := index[t.Source]
		if !ok {
			return nil, invalidf("transition source %q is not declared", t.Source)
		}
		d, ok := index[t.Dest]
		if !ok {
			return nil, invalidf("transition target %q is not declared", t.Dest)
		}
		if t.Symbol != Epsilon && !alphabet.Contains(t.Symbol) {
			return nil, invalidf("transition %s --%s--> %s uses a symbol outside the alphabet", t.Source, t.Symbol, t.Dest)
		}
		targets, ok := n.delta[s][t.Symbol]
		if !ok {
			targets = bitset.New(uint(len(names)))
			n.delta[s][t.Symbol] = targets
		}
		targets.Set(uint(d))
	}

	for name, accept := range b.accept {
		i, ok := index[name]
		if !ok {
			return nil, invalidf("accepting state %q is not declared", name)
		}
		n.isAccept.SetTo(uint(i), accept)
	}
	return n, nil
}
