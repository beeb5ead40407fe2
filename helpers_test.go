package glud

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geange/glud/grammar"
)

// G = ({S,A}, {a,b}, P, S) with S -> aA | b and A -> aA | ε, the language b | a+.
func exampleGrammar() *grammar.Grammar {
	return &grammar.Grammar{
		NonTerminals: []string{"S", "A"},
		Terminals:    []string{"a", "b"},
		Start:        "S",
		Productions: []grammar.Production{
			grammar.NewProduction("S", "aA"),
			grammar.NewProduction("S", "b"),
			grammar.NewProduction("A", "aA"),
			grammar.NewProduction("A", "ε"),
		},
	}
}

// S -> aS | b, the language a*b.
func suffixGrammar() *grammar.Grammar {
	return &grammar.Grammar{
		NonTerminals: []string{"S"},
		Terminals:    []string{"a", "b"},
		Start:        "S",
		Productions: []grammar.Production{
			grammar.NewProduction("S", "aS"),
			grammar.NewProduction("S", "b"),
		},
	}
}

// Strings over {a,b,c} whose third symbol from the end is a, written with unit productions
// and a choice at every step.
func thirdFromEndGrammar() *grammar.Grammar {
	return &grammar.Grammar{
		NonTerminals: []string{"S", "A", "B", "C", "T"},
		Terminals:    []string{"a", "b", "c"},
		Start:        "S",
		Productions: []grammar.Production{
			grammar.NewProduction("S", "aS"),
			grammar.NewProduction("S", "bS"),
			grammar.NewProduction("S", "cS"),
			grammar.NewProduction("S", "T"),
			grammar.NewProduction("T", "aA"),
			grammar.NewProduction("A", "aB"),
			grammar.NewProduction("A", "bB"),
			grammar.NewProduction("A", "cB"),
			grammar.NewProduction("B", "aC"),
			grammar.NewProduction("B", "bC"),
			grammar.NewProduction("B", "cC"),
			grammar.NewProduction("C", "ε"),
		},
	}
}

func mustNFA(t *testing.T, g *grammar.Grammar) *NFA {
	t.Helper()
	nfa, skipped, err := NFAFromGrammar(g)
	require.NoError(t, err)
	require.Empty(t, skipped)
	return nfa
}

func mustDFA(t *testing.T, g *grammar.Grammar) *DFA {
	t.Helper()
	dfa, err := Determinize(mustNFA(t, g))
	require.NoError(t, err)
	return dfa
}

// allStrings Returns every string over alphabet of length 0 to maxLen.
func allStrings(alphabet Alphabet, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for n := 0; n < maxLen; n++ {
		next := make([]string, 0, len(level)*len(alphabet))
		for _, prefix := range level {
			for _, s := range alphabet {
				next = append(next, prefix+string(rune(s)))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

func reverseString(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}

// nfaAccepts simulates the NFA directly, as an oracle independent of Determinize.
func nfaAccepts(n *NFA, input string) bool {
	current := n.EpsilonClosure(n.Initial())
	for _, r := range input {
		current = n.EpsilonClosure(n.Move(current, Symbol(r)).Members()...)
	}
	for _, name := range current.Members() {
		if n.IsAccept(name) {
			return true
		}
	}
	return false
}
