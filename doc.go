// Package glud builds finite automata from right-linear grammars and transforms them.
//
// The pipeline is one-shot and synchronous:
//
//	g, _, err := grammar.ReadFile("glud.txt")
//	nfa, skipped, err := glud.NFAFromGrammar(g)
//	dfa, err := glud.Determinize(nfa)
//	comp, err := glud.Complement(dfa)
//	rev, err := glud.Reverse(dfa)
//	ok := glud.Run(dfa, "aab")
//
// NFA states are named by strings. DFA states are composite states (sets of NFA state names)
// interned to a StateID the first time determinization discovers them; DFA.State maps an id
// back to its composite state. Every automaton is immutable once built, and every operation
// returns a new, independent value.
//
// The algorithms never print. Pass WithTracer to observe closures, discovered states and
// transitions as Events.
package glud
