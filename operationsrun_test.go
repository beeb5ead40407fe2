package glud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	dfa := mustDFA(t, exampleGrammar())

	tests := []struct {
		input    string
		accepted bool
		final    StateID
		steps    int
	}{
		{"b", true, 2, 1},
		{"a", true, 1, 1},
		{"aaaa", true, 1, 4},
		{"aaab", false, 3, 4},
		{"ba", false, 3, 2},
		{"", false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := dfa.Simulate(tt.input)
			assert.Equal(t, tt.input, res.Input)
			assert.Equal(t, tt.accepted, res.Accepted)
			assert.Equal(t, tt.final, res.Final)
			assert.Len(t, res.Steps, tt.steps)
			assert.NoError(t, res.Err)
			assert.Equal(t, tt.accepted, Run(dfa, tt.input))
		})
	}
}

func TestSimulate_Steps(t *testing.T) {
	dfa := mustDFA(t, exampleGrammar())
	res := dfa.Simulate("ab")
	assert.Equal(t, []Step{{From: 0, Symbol: 'a', To: 1}, {From: 1, Symbol: 'b', To: 3}}, res.Steps)
}

func TestSimulate_EmptyInput(t *testing.T) {
	dfa := mustDFA(t, exampleGrammar())
	comp, err := Complement(dfa)
	require.NoError(t, err)

	assert.False(t, Run(dfa, ""))
	assert.True(t, Run(comp, ""))
	assert.Empty(t, comp.Simulate("").Steps)
}

func TestSimulate_UnknownSymbol(t *testing.T) {
	dfa := mustDFA(t, exampleGrammar())
	res := dfa.Simulate("abc")

	assert.False(t, res.Accepted)
	assert.Len(t, res.Steps, 2)
	assert.ErrorIs(t, res.Err, ErrUnknownSymbol)
	assert.False(t, errors.Is(res.Err, ErrUndefinedTransition))

	var simErr *SimulationError
	require.ErrorAs(t, res.Err, &simErr)
	assert.Equal(t, UnknownSymbol, simErr.Kind)
	assert.Equal(t, 2, simErr.Position)
	assert.Equal(t, Symbol('c'), simErr.Symbol)
	assert.Equal(t, `symbol "c" at position 2 is not in the alphabet`, simErr.Error())
}

func TestSimulate_UndefinedTransition(t *testing.T) {
	d := partialDFA(t)
	res := d.Simulate("aab")

	assert.False(t, res.Accepted)
	assert.Equal(t, d.Initial(), res.Final)
	assert.ErrorIs(t, res.Err, ErrUndefinedTransition)

	var simErr *SimulationError
	require.ErrorAs(t, res.Err, &simErr)
	assert.Equal(t, UndefinedTransition, simErr.Kind)
	assert.Equal(t, 2, simErr.Position)
	assert.Equal(t, "{x}", simErr.State.String())
	assert.Equal(t, "UndefinedTransition", simErr.Kind.String())
}

func TestSimulate_PositionCountsSymbols(t *testing.T) {
	d, err := defaultAutomata.MakeString("αβ", 'α', 'β')
	require.NoError(t, err)

	assert.True(t, Run(d, "αβ"))
	assert.False(t, Run(d, "βα"))

	var simErr *SimulationError
	require.ErrorAs(t, d.Simulate("αγ").Err, &simErr)
	assert.Equal(t, 1, simErr.Position)
	assert.Equal(t, Symbol('γ'), simErr.Symbol)
}
