package glud

import "fmt"

// Determinize Converts an NFA into an equivalent total DFA using the subset construction.
// Composite states are explored breadth first, symbols in alphabet order, so state ids are
// reproducible. An empty move leads to the sink (the empty composite state), which receives a self
// loop on every symbol once exploration ends. Accepting states are the explored composite states
// holding at least one accepting NFA state.
//
// Worst case complexity: exponential in the number of NFA states. Use WithWorkLimit to bound it.
func Determinize(nfa *NFA, opts ...Option) (*DFA, error) {
	o := newOptions(opts...)
	b := NewDFABuilder(nfa.alphabet...)

	type pending struct {
		id  StateID
		set *stateSet
	}

	start := nfa.newStateSet()
	start.add(nfa.initial)
	initialSet := nfa.closure(start)
	initial := initialSet.freeze()
	o.tracer.Trace(Event{Kind: EventClosure, Source: "{" + nfa.Initial() + "}", Target: initial.String()})

	initialID, _ := b.intern(initial)
	b.SetInitial(initialID)
	b.SetAccept(initialID, initialSet.intersects(nfa.isAccept))
	o.tracer.Trace(Event{Kind: EventStateDiscovered, Source: initial.String()})

	workList := []pending{{id: initialID, set: initialSet}}
	sink := NoState
	needSink := false

	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]
		source := b.states[current.id]

		for _, symbol := range nfa.alphabet {
			moved := nfa.move(current.set, symbol)

			var target StateID
			if moved.isEmpty() {
				needSink = true
				if sink == NoState {
					sink, _ = b.intern(CompositeState{})
				}
				target = sink
			} else {
				closed := nfa.closure(moved)
				composite := closed.freeze()
				o.tracer.Trace(Event{Kind: EventClosure, Source: moved.freeze().String(), Target: composite.String()})

				id, isNew := b.intern(composite)
				if isNew {
					if o.workLimit > 0 && b.NumStates() > o.workLimit {
						return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, o.workLimit)
					}
					b.SetAccept(id, closed.intersects(nfa.isAccept))
					workList = append(workList, pending{id: id, set: closed})
					o.tracer.Trace(Event{Kind: EventStateDiscovered, Source: composite.String()})
				}
				target = id
			}

			if err := b.AddTransition(current.id, symbol, target); err != nil {
				return nil, err
			}
			o.tracer.Trace(Event{Kind: EventTransition, Source: source.String(), Symbol: symbol, Target: b.states[target].String()})
		}
	}

	if needSink {
		for _, symbol := range nfa.alphabet {
			if err := b.AddTransition(sink, symbol, sink); err != nil {
				return nil, err
			}
		}
		o.tracer.Trace(Event{Kind: EventSinkCompleted, Source: CompositeState{}.String(), Detail: "self loops on every symbol"})
	}

	return b.Build()
}
