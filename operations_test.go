package glud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/glud/grammar"
)

// partialDFA accepts a* over {a,b} and has no transition on b.
func partialDFA(t *testing.T) *DFA {
	t.Helper()
	b := NewDFABuilder('a', 'b')
	x := b.AddState("x")
	b.SetInitial(x)
	b.SetAccept(x, true)
	require.NoError(t, b.AddTransition(x, 'a', x))
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func TestComplement(t *testing.T) {
	dfa := mustDFA(t, exampleGrammar())
	comp, err := Complement(dfa)
	require.NoError(t, err)

	for _, w := range []string{"", "aaab", "ba", "bb"} {
		assert.True(t, Run(comp, w), "input %q", w)
	}
	for _, w := range []string{"b", "a", "aa"} {
		assert.False(t, Run(comp, w), "input %q", w)
	}
	for _, w := range allStrings(dfa.Alphabet(), 6) {
		assert.NotEqual(t, Run(dfa, w), Run(comp, w), "input %q", w)
	}

	assert.Equal(t, dfa.Transitions(), comp.Transitions())
	assert.Equal(t, dfa.Initial(), comp.Initial())
	// The former sink now accepts, so it no longer counts as a sink.
	assert.Equal(t, NoState, comp.Sink())
	assert.True(t, comp.IsAccept(dfa.Sink()))
}

func TestComplement_Involution(t *testing.T) {
	for _, g := range []*grammar.Grammar{exampleGrammar(), suffixGrammar(), thirdFromEndGrammar()} {
		dfa := mustDFA(t, g)
		comp, err := Complement(dfa)
		require.NoError(t, err)
		back, err := Complement(comp)
		require.NoError(t, err)

		assert.Equal(t, Accepting[StateID](dfa), Accepting[StateID](back))
		assert.Equal(t, dfa.Transitions(), back.Transitions())
		assert.Equal(t, dfa.Sink(), back.Sink())
	}
}

func TestComplement_LeavesInputUntouched(t *testing.T) {
	dfa := mustDFA(t, exampleGrammar())
	before := Accepting[StateID](dfa)

	comp, err := Complement(dfa)
	require.NoError(t, err)
	assert.Equal(t, before, Accepting[StateID](dfa))

	// The copy carries its own interning table.
	id, ok := comp.Lookup(NewCompositeState("qf", "A"))
	assert.True(t, ok)
	assert.Equal(t, StateID(1), id)
	_, ok = comp.Lookup(NewCompositeState("B"))
	assert.False(t, ok)
}

func TestComplement_Incomplete(t *testing.T) {
	_, err := Complement(partialDFA(t))
	assert.ErrorIs(t, err, ErrIncompleteDFA)
}

func TestReverse(t *testing.T) {
	dfa := mustDFA(t, suffixGrammar())
	rev, err := Reverse(dfa)
	require.NoError(t, err)

	assert.True(t, Run(dfa, "aab"))
	assert.True(t, Run(rev, "baa"))
	assert.False(t, Run(rev, "aab"))
	assert.True(t, Run(rev, "b"))
	assert.False(t, Run(rev, ""))
	assert.True(t, rev.IsTotal())
}

func TestReverse_Language(t *testing.T) {
	tests := []struct {
		name    string
		grammar *grammar.Grammar
		maxLen  int
	}{
		{"b or a+", exampleGrammar(), 6},
		{"a*b", suffixGrammar(), 6},
		{"third from end", thirdFromEndGrammar(), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dfa := mustDFA(t, tt.grammar)
			rev, err := Reverse(dfa)
			require.NoError(t, err)
			for _, w := range allStrings(dfa.Alphabet(), tt.maxLen) {
				assert.Equal(t, Run(dfa, w), Run(rev, reverseString(w)), "input %q", w)
			}
		})
	}
}

func TestReverse_Naming(t *testing.T) {
	dfa := mustDFA(t, exampleGrammar())
	log := &EventLog{}
	rev, err := Reverse(dfa, WithTracer(log))
	require.NoError(t, err)

	renamed := log.Filter(EventStateRenamed)
	require.Len(t, renamed, dfa.NumStates())
	got := make(map[string]string)
	for _, e := range renamed {
		got[e.Source] = e.Target
	}
	assert.Equal(t, map[string]string{"{}": "q0", "{A,qf}": "q1", "{S}": "q2", "{qf}": "q3"}, got)

	// R reaches the former accepting states {A,qf} and {qf} by ε.
	assert.Equal(t, []string{ReverseInitialState, "q1", "q3"}, rev.State(rev.Initial()).Members())
	for _, id := range rev.States() {
		assert.Equal(t, rev.State(id).Contains("q2"), rev.IsAccept(id))
	}
}

func TestReverse_Incomplete(t *testing.T) {
	rev, err := Reverse(partialDFA(t))
	require.NoError(t, err)
	assert.True(t, Run(rev, "aaa"))
	assert.False(t, Run(rev, "ab"))
}

func TestTotalize(t *testing.T) {
	partial := partialDFA(t)
	assert.False(t, partial.IsTotal())
	assert.Equal(t, NoState, partial.Sink())

	total, err := Totalize(partial)
	require.NoError(t, err)
	assert.True(t, total.IsTotal())
	assert.NotEqual(t, NoState, total.Sink())
	assert.Equal(t, 2, total.NumStates())
	assert.False(t, partial.IsTotal())

	for _, w := range allStrings(total.Alphabet(), 4) {
		want := partial.Simulate(w).Accepted
		assert.Equal(t, want, Run(total, w), "input %q", w)
	}

	comp, err := Complement(total)
	require.NoError(t, err)
	assert.True(t, Run(comp, "ab"))
	assert.False(t, Run(comp, "aa"))
}

func TestTotalize_AlreadyTotal(t *testing.T) {
	dfa := mustDFA(t, exampleGrammar())
	total, err := Totalize(dfa)
	require.NoError(t, err)
	assert.Equal(t, dfa.Transitions(), total.Transitions())
	assert.Equal(t, dfa.Sink(), total.Sink())
}

func TestTotalize_EmptyCompositeIsNotSink(t *testing.T) {
	// {} --a--> {x}, {x} accepting: exactly "a".
	b := NewDFABuilder('a', 'b')
	empty := b.AddState()
	x := b.AddState("x")
	b.SetInitial(empty)
	b.SetAccept(x, true)
	require.NoError(t, b.AddTransition(empty, 'a', x))
	partial, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, NoState, partial.Sink())

	total, err := Totalize(partial)
	require.NoError(t, err)
	assert.True(t, total.IsTotal())
	assert.Equal(t, 3, total.NumStates())
	for _, w := range allStrings(total.Alphabet(), 4) {
		assert.Equal(t, w == "a", Run(total, w), "input %q", w)
	}

	next, _ := total.Step(empty, 'a')
	assert.Equal(t, x, next)
	dead, _ := total.Step(empty, 'b')
	assert.Equal(t, "{dead0}", total.State(dead).String())
	assert.False(t, total.IsAccept(dead))
}

func TestTotalize_AcceptingEmptyComposite(t *testing.T) {
	b := NewDFABuilder('a')
	empty := b.AddState()
	b.SetInitial(empty)
	b.SetAccept(empty, true)
	partial, err := b.Build()
	require.NoError(t, err)
	assert.True(t, Run(partial, ""))

	total, err := Totalize(partial)
	require.NoError(t, err)
	assert.True(t, total.IsTotal())
	for _, w := range allStrings(total.Alphabet(), 4) {
		assert.Equal(t, w == "", Run(total, w), "input %q", w)
	}
}

func TestTotalize_ReusesSink(t *testing.T) {
	b := NewDFABuilder('a', 'b')
	x := b.AddState("x")
	sink := b.AddState()
	b.SetInitial(x)
	b.SetAccept(x, true)
	require.NoError(t, b.AddTransition(x, 'a', sink))
	require.NoError(t, b.AddTransition(sink, 'a', sink))
	require.NoError(t, b.AddTransition(sink, 'b', sink))
	partial, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, sink, partial.Sink())

	total, err := Totalize(partial)
	require.NoError(t, err)
	assert.Equal(t, 2, total.NumStates())
	next, _ := total.Step(x, 'b')
	assert.Equal(t, sink, next)
	assert.Equal(t, sink, total.Sink())
}

func TestIsEmpty(t *testing.T) {
	assert.False(t, IsEmpty(mustDFA(t, exampleGrammar())))
	assert.False(t, IsEmpty(partialDFA(t)))

	empty, err := defaultAutomata.MakeEmpty('a', 'b')
	require.NoError(t, err)
	assert.True(t, IsEmpty(empty))

	all, err := defaultAutomata.MakeAnyString('a', 'b')
	require.NoError(t, err)
	none, err := Complement(all)
	require.NoError(t, err)
	assert.True(t, IsEmpty(none))
}
