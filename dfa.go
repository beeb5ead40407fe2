package glud

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// StateID Index of a composite state in the arena of its DFA.
type StateID int

// NoState is returned where no state applies.
const NoState StateID = -1

// DFA Deterministic finite automaton whose states are interned composite states. Each
// (state, symbol) pair has at most one target. Determinize always returns a total DFA; a DFA
// assembled with DFABuilder may be incomplete. A DFA is never mutated once built.
type DFA struct {
	// Arena of composite states; a StateID is an index here.
	states []CompositeState
	lookup *HashMap[StateID]

	alphabet Alphabet
	delta    []map[Symbol]StateID
	initial  StateID
	isAccept *bitset.BitSet

	// sink is the absorbing, non-accepting empty composite state, or NoState.
	sink StateID
}

// States Returns every state id in ascending order, which is discovery order for
// determinized automata.
func (d *DFA) States() []StateID {
	out := make([]StateID, len(d.states))
	for i := range d.states {
		out[i] = StateID(i)
	}
	return out
}

// SortedStates Returns every state id ordered by the key of its composite state.
func (d *DFA) SortedStates() []StateID {
	out := d.States()
	slices.SortStableFunc(out, func(a, b StateID) int {
		return strings.Compare(d.states[a].Key(), d.states[b].Key())
	})
	return out
}

func (d *DFA) NumStates() int {
	return len(d.states)
}

func (d *DFA) Alphabet() Alphabet {
	return d.alphabet.clone()
}

func (d *DFA) Initial() StateID {
	return d.initial
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state StateID) bool {
	return d.valid(state) && d.isAccept.Test(uint(state))
}

// State Returns the composite state behind id.
func (d *DFA) State(id StateID) CompositeState {
	if !d.valid(id) {
		return CompositeState{}
	}
	return d.states[id]
}

// Lookup Returns the id of a composite state of this DFA.
func (d *DFA) Lookup(c CompositeState) (StateID, bool) {
	return d.lookup.Get(c)
}

// Sink Returns the sink state, or NoState when the automaton has none.
func (d *DFA) Sink() StateID {
	return d.sink
}

// Step Performs the transition from state on symbol. Returns NoState and false when undefined.
func (d *DFA) Step(state StateID, symbol Symbol) (StateID, bool) {
	if !d.valid(state) {
		return NoState, false
	}
	next, ok := d.delta[state][symbol]
	if !ok {
		return NoState, false
	}
	return next, true
}

// Transitions Returns every edge sorted by source id, then symbol.
func (d *DFA) Transitions() []Transition[StateID] {
	out := make([]Transition[StateID], 0)
	for s := range d.states {
		for _, sym := range slices.Sorted(maps.Keys(d.delta[s])) {
			out = append(out, Transition[StateID]{Source: StateID(s), Symbol: sym, Dest: d.delta[s][sym]})
		}
	}
	return out
}

// IsTotal Returns true if every (state, symbol) pair has a transition.
func (d *DFA) IsTotal() bool {
	for s := range d.states {
		for _, sym := range d.alphabet {
			if _, ok := d.delta[s][sym]; !ok {
				return false
			}
		}
	}
	return true
}

func (d *DFA) String() string {
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "DFA(states=%d, alphabet=%s, initial=%s)\n", len(d.states), d.alphabet, d.states[d.initial])
	for _, t := range d.Transitions() {
		fmt.Fprintf(sb, "  %s --%s--> %s\n", d.states[t.Source], t.Symbol, d.states[t.Dest])
	}
	return sb.String()
}

func (d *DFA) valid(state StateID) bool {
	return state >= 0 && int(state) < len(d.states)
}

// findSink Returns the empty composite state if it is absorbing and non-accepting.
func (d *DFA) findSink() StateID {
	id, ok := d.lookup.Get(CompositeState{})
	if !ok || d.isAccept.Test(uint(id)) {
		return NoState
	}
	for _, sym := range d.alphabet {
		if next, ok := d.delta[id][sym]; !ok || next != id {
			return NoState
		}
	}
	return id
}

// clone Returns a structurally independent copy.
func (d *DFA) clone() *DFA {
	c := &DFA{
		states:   slices.Clone(d.states),
		lookup:   NewHashMap[StateID](WithCapacity(len(d.states))),
		alphabet: d.alphabet.clone(),
		delta:    make([]map[Symbol]StateID, len(d.delta)),
		initial:  d.initial,
		isAccept: d.isAccept.Clone(),
		sink:     d.sink,
	}
	for key, id := range d.lookup.Iterator() {
		c.lookup.Set(key, id)
	}
	for i := range c.states {
		c.delta[i] = maps.Clone(d.delta[i])
	}
	return c
}

// DFABuilder Assembles a DFA state by state. States are interned: adding the same member set
// twice yields the same id.
type DFABuilder struct {
	states   []CompositeState
	lookup   *HashMap[StateID]
	alphabet Alphabet
	delta    []map[Symbol]StateID
	initial  StateID
	accept   map[StateID]bool
}

// NewDFABuilder creates a builder for a DFA over alphabet.
func NewDFABuilder(alphabet ...Symbol) *DFABuilder {
	return &DFABuilder{
		lookup:   NewHashMap[StateID](WithCapacity(16)),
		alphabet: NewAlphabet(alphabet...),
		initial:  NoState,
		accept:   make(map[StateID]bool),
	}
}

// AddState Returns the id of the composite state made of members, creating it if needed.
func (b *DFABuilder) AddState(members ...string) StateID {
	id, _ := b.intern(NewCompositeState(members...))
	return id
}

func (b *DFABuilder) intern(c CompositeState) (StateID, bool) {
	if id, ok := b.lookup.Get(c); ok {
		return id, false
	}
	id := StateID(len(b.states))
	b.states = append(b.states, c)
	b.delta = append(b.delta, make(map[Symbol]StateID))
	b.lookup.Set(c, id)
	return id, true
}

func (b *DFABuilder) NumStates() int {
	return b.lookup.Size()
}

// AddTransition Add source --symbol--> dest. Re-adding the same edge is a no-op; a different
// target for an existing pair fails with ErrNondeterministic.
func (b *DFABuilder) AddTransition(source StateID, symbol Symbol, dest StateID) error {
	if !b.valid(source) || !b.valid(dest) {
		return invalidf("transition %d --%s--> %d references an unknown state", source, symbol, dest)
	}
	if !b.alphabet.Contains(symbol) {
		return invalidf("symbol %q is not in the alphabet %s", string(rune(symbol)), b.alphabet)
	}
	if prev, ok := b.delta[source][symbol]; ok && prev != dest {
		return fmt.Errorf("%w: %s on %s goes to %s, not %s",
			ErrNondeterministic, b.states[source], symbol, b.states[prev], b.states[dest])
	}
	b.delta[source][symbol] = dest
	return nil
}

func (b *DFABuilder) SetInitial(id StateID) {
	b.initial = id
}

// SetAccept Set or clear this state as an accept state.
func (b *DFABuilder) SetAccept(id StateID, accept bool) {
	b.accept[id] = accept
}

// Build Validates and returns an independent DFA.
func (b *DFABuilder) Build() (*DFA, error) {
	if b.alphabet.Contains(Epsilon) {
		return nil, invalidf("ε cannot be an alphabet symbol")
	}
	if !b.valid(b.initial) {
		return nil, invalidf("initial state %d is not a state", b.initial)
	}

	numStates := len(b.states)
	d := &DFA{
		states:   slices.Clone(b.states),
		lookup:   NewHashMap[StateID](WithCapacity(numStates)),
		alphabet: b.alphabet.clone(),
		delta:    make([]map[Symbol]StateID, numStates),
		initial:  b.initial,
		isAccept: bitset.New(uint(numStates)),
	}
	for i, s := range d.states {
		d.lookup.Set(s, StateID(i))
		d.delta[i] = maps.Clone(b.delta[i])
	}
	for id, accept := range b.accept {
		if !b.valid(id) {
			return nil, invalidf("accepting state %d is not a state", id)
		}
		d.isAccept.SetTo(uint(id), accept)
	}
	d.sink = d.findSink()
	return d, nil
}

func (b *DFABuilder) valid(id StateID) bool {
	return id >= 0 && int(id) < len(b.states)
}
