package glud

import (
	"fmt"
	"unicode/utf8"

	"github.com/geange/glud/grammar"
)

// NFAFromGrammar Translates a right-linear grammar into an NFA with states V ∪ {qf}, alphabet Σ,
// initial state S and accepting set {qf}:
//
//	A -> ε    adds A --ε--> qf
//	A -> aB   adds A --a--> B
//	A -> a    adds A --a--> qf
//	A -> B    adds A --ε--> B
//
// Productions of any other shape, or with tokens that are neither terminals nor non-terminals,
// are left out and returned as skipped; the NFA is still built from the rest. The error is only
// set when the grammar itself is unusable.
func NFAFromGrammar(g *grammar.Grammar, opts ...Option) (*NFA, []*ProductionError, error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}
	o := newOptions(opts...)
	qf := o.finalState
	if g.IsNonTerminal(qf) {
		return nil, nil, fmt.Errorf("%w: final state %q collides with a non-terminal", grammar.ErrInvalidGrammar, qf)
	}

	b := NewNFABuilder()
	b.AddState(g.NonTerminals...)
	b.AddState(qf)
	for _, t := range g.Terminals {
		r, _ := utf8.DecodeRuneInString(t)
		b.SetAlphabet(Symbol(r))
	}
	b.SetInitial(g.Start)
	b.SetAccept(qf, true)

	skipped := make([]*ProductionError, 0)
	for _, p := range g.Productions {
		edge, perr := classify(g, p, qf)
		if perr != nil {
			skipped = append(skipped, perr)
			o.tracer.Trace(Event{Kind: EventProductionSkipped, Source: p.String(), Detail: perr.Error()})
			continue
		}
		b.AddTransition(edge.Source, edge.Symbol, edge.Dest)
		o.tracer.Trace(Event{Kind: EventProductionAdded, Source: edge.Source, Symbol: edge.Symbol, Target: edge.Dest, Detail: p.String()})
	}

	nfa, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return nfa, skipped, nil
}

// classify maps a production to the single NFA edge it stands for.
func classify(g *grammar.Grammar, p grammar.Production, qf string) (Transition[string], *ProductionError) {
	fail := func(token, reason string) (Transition[string], *ProductionError) {
		return Transition[string]{}, &ProductionError{Production: p, Token: token, Reason: reason}
	}

	if !g.IsNonTerminal(p.Head) {
		return fail(p.Head, "on the left-hand side is not a non-terminal")
	}

	switch len(p.Body) {
	case 0:
		return Transition[string]{Source: p.Head, Symbol: Epsilon, Dest: qf}, nil
	case 1:
		tok := p.Body[0]
		if g.IsTerminal(tok) {
			return Transition[string]{Source: p.Head, Symbol: terminal(tok), Dest: qf}, nil
		}
		if g.IsNonTerminal(tok) {
			return Transition[string]{Source: p.Head, Symbol: Epsilon, Dest: tok}, nil
		}
		return fail(tok, "is neither a terminal nor a non-terminal")
	case 2:
		a, nt := p.Body[0], p.Body[1]
		if !g.IsTerminal(a) {
			return fail(a, "is not a terminal")
		}
		if !g.IsNonTerminal(nt) {
			return fail(nt, "is not a non-terminal")
		}
		return Transition[string]{Source: p.Head, Symbol: terminal(a), Dest: nt}, nil
	default:
		return fail("", fmt.Sprintf("has %d symbols on the right-hand side, want ε, a, B or aB", len(p.Body)))
	}
}

func terminal(tok string) Symbol {
	r, _ := utf8.DecodeRuneInString(tok)
	return Symbol(r)
}
