package glud

// Step is one transition taken while simulating.
type Step struct {
	From   StateID
	Symbol Symbol
	To     StateID
}

// Result is the outcome of simulating one input string.
type Result struct {
	Input    string
	Accepted bool
	// Steps taken before the simulation ended; empty for the empty input.
	Steps []Step
	// Final is the last state reached.
	Final StateID
	// Err explains an early rejection: a *SimulationError of kind UnknownSymbol or
	// UndefinedTransition. It is nil when every symbol was consumed.
	Err error
}

// Simulate Runs d over input. The empty input takes no transition and is accepted iff the initial
// state accepts. A symbol outside the alphabet, or a missing transition in an incomplete DFA,
// rejects immediately. d is only read.
func (d *DFA) Simulate(input string) Result {
	res := Result{Input: input, Final: d.initial, Steps: make([]Step, 0, len(input))}

	if input == "" {
		res.Accepted = d.IsAccept(d.initial)
		return res
	}

	state := d.initial
	position := 0
	for _, r := range input {
		symbol := Symbol(r)
		if !d.alphabet.Contains(symbol) {
			res.Err = &SimulationError{Kind: UnknownSymbol, Position: position, Symbol: symbol, State: d.states[state]}
			return res
		}
		next, ok := d.Step(state, symbol)
		if !ok {
			res.Err = &SimulationError{Kind: UndefinedTransition, Position: position, Symbol: symbol, State: d.states[state]}
			return res
		}
		res.Steps = append(res.Steps, Step{From: state, Symbol: symbol, To: next})
		state = next
		res.Final = state
		position++
	}

	res.Accepted = d.IsAccept(state)
	return res
}

// Run Returns true if d accepts s.
func Run(d *DFA, s string) bool {
	return d.Simulate(s).Accepted
}
