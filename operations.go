package glud

import (
	"fmt"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// Complement Returns a DFA accepting exactly the strings d rejects. The states, alphabet,
// transitions and initial state are copied, and the accepting set becomes states − accepting.
// d must be total; an incomplete DFA fails with ErrIncompleteDFA (see Totalize).
func Complement(d *DFA) (*DFA, error) {
	if !d.IsTotal() {
		return nil, fmt.Errorf("%w: complement needs a transition for every state and symbol", ErrIncompleteDFA)
	}
	c := d.clone()
	c.isAccept = d.isAccept.Complement()
	c.sink = c.findSink()
	return c, nil
}

// Reverse Returns a DFA accepting the reversal of every string d accepts. It builds an NFA
// with every edge of d inverted, whose states are fresh names q0..qn given in composite key
// order, plus a new initial state R with ε-transitions to the former accepting states; the former
// initial state is the only accepting state. That NFA is then determinized.
func Reverse(d *DFA, opts ...Option) (*DFA, error) {
	o := newOptions(opts...)

	names := make([]string, d.NumStates())
	for i, id := range d.SortedStates() {
		names[id] = "q" + strconv.Itoa(i)
		o.tracer.Trace(Event{Kind: EventStateRenamed, Source: d.states[id].String(), Target: names[id]})
	}

	b := NewNFABuilder()
	b.SetAlphabet(d.alphabet...)
	b.AddState(names...)
	b.AddState(ReverseInitialState)
	b.SetInitial(ReverseInitialState)

	for _, t := range d.Transitions() {
		b.AddTransition(names[t.Dest], t.Symbol, names[t.Source])
	}
	for _, f := range Accepting[StateID](d) {
		b.AddEpsilon(ReverseInitialState, names[f])
	}
	b.SetAccept(names[d.initial], true)

	nfa, err := b.Build()
	if err != nil {
		return nil, err
	}
	return Determinize(nfa, opts...)
}

// Totalize Returns a total copy of d. Missing transitions are sent to the sink of d. When d has
// none, a new dead state is added: the empty composite state if d does not use it, otherwise a
// fresh singleton state, so an existing empty composite state keeps its edges and acceptance.
func Totalize(d *DFA) (*DFA, error) {
	if d.IsTotal() {
		return d.clone(), nil
	}

	b := NewDFABuilder(d.alphabet...)
	for _, s := range d.states {
		b.intern(s)
	}
	b.SetInitial(d.initial)
	for _, f := range Accepting[StateID](d) {
		b.SetAccept(f, true)
	}
	for _, t := range d.Transitions() {
		if err := b.AddTransition(t.Source, t.Symbol, t.Dest); err != nil {
			return nil, err
		}
	}

	deadState := d.sink
	if deadState == NoState {
		deadState = b.newDeadState()
	}
	for s := 0; s < b.NumStates(); s++ {
		for _, symbol := range d.alphabet {
			if _, ok := b.delta[s][symbol]; ok {
				continue
			}
			if err := b.AddTransition(StateID(s), symbol, deadState); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

// IsEmpty Returns true if d accepts no strings.
func IsEmpty(d *DFA) bool {
	if d.IsAccept(d.initial) {
		return false
	}

	workList := []StateID{d.initial}
	seen := bitset.New(uint(d.NumStates()))
	seen.Set(uint(d.initial))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if d.IsAccept(state) {
			return false
		}
		for _, next := range d.delta[state] {
			if !seen.Test(uint(next)) {
				seen.Set(uint(next))
				workList = append(workList, next)
			}
		}
	}
	return true
}

// newDeadState Adds a non-accepting state that no existing composite state equals.
func (b *DFABuilder) newDeadState() StateID {
	if id, isNew := b.intern(CompositeState{}); isNew {
		return id
	}
	for i := 0; ; i++ {
		if id, isNew := b.intern(NewCompositeState("dead" + strconv.Itoa(i))); isNew {
			return id
		}
	}
}
