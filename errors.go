package glud

import (
	"errors"
	"fmt"

	"github.com/geange/glud/grammar"
)

var (
	// ErrInvalidAutomaton indicates a builder was asked to produce an automaton that breaks
	// its structural invariants (undeclared states, missing initial state, bad symbols).
	ErrInvalidAutomaton = errors.New("invalid automaton")

	// ErrNondeterministic indicates a second, different target for a (state, symbol) pair of a DFA.
	ErrNondeterministic = errors.New("transition already defined")

	// ErrIncompleteDFA indicates an operation that requires a total DFA received an incomplete one.
	ErrIncompleteDFA = errors.New("DFA is not total")

	// ErrTooComplex indicates determinization discovered more states than the configured work limit.
	ErrTooComplex = errors.New("determinization exceeded work limit")

	// ErrProductionClassification indicates a production that is not right-linear.
	ErrProductionClassification = errors.New("production cannot be classified")

	// ErrUnknownSymbol indicates a simulated input symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrUndefinedTransition indicates a simulation reached a (state, symbol) pair with no transition.
	ErrUndefinedTransition = errors.New("undefined transition")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAutomaton, fmt.Sprintf(format, args...))
}

// ProductionError Reports a production dropped while building an NFA from a grammar.
type ProductionError struct {
	Production grammar.Production
	// Token is the body token that failed classification, empty when the shape itself is wrong.
	Token  string
	Reason string
}

// Error implements the error interface
func (e *ProductionError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("production %s (line %d): token %q %s",
			e.Production, e.Production.Line, e.Token, e.Reason)
	}
	return fmt.Sprintf("production %s (line %d): %s", e.Production, e.Production.Line, e.Reason)
}

// Unwrap returns ErrProductionClassification
func (e *ProductionError) Unwrap() error {
	return ErrProductionClassification
}

// SimulationErrorKind classifies why a simulation rejected its input early.
type SimulationErrorKind uint8

const (
	// UnknownSymbol the input contains a symbol outside the DFA alphabet
	UnknownSymbol SimulationErrorKind = iota

	// UndefinedTransition the DFA has no transition for the current state and symbol
	UndefinedTransition
)

// String returns a human-readable error kind name
func (k SimulationErrorKind) String() string {
	switch k {
	case UnknownSymbol:
		return "UnknownSymbol"
	case UndefinedTransition:
		return "UndefinedTransition"
	default:
		return fmt.Sprintf("UnknownSimulationErrorKind(%d)", k)
	}
}

// SimulationError describes the step at which a simulation was cut short.
type SimulationError struct {
	Kind SimulationErrorKind
	// Position is the index of the offending symbol in the input, counted in symbols.
	Position int
	Symbol   Symbol
	State    CompositeState
}

// Error implements the error interface
func (e *SimulationError) Error() string {
	switch e.Kind {
	case UnknownSymbol:
		return fmt.Sprintf("symbol %q at position %d is not in the alphabet", string(rune(e.Symbol)), e.Position)
	default:
		return fmt.Sprintf("no transition from %s on %q at position %d", e.State, string(rune(e.Symbol)), e.Position)
	}
}

// Unwrap returns the sentinel matching the error kind (for errors.Is)
func (e *SimulationError) Unwrap() error {
	if e.Kind == UnknownSymbol {
		return ErrUnknownSymbol
	}
	return ErrUndefinedTransition
}
