package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrGrammarFormat indicates the header line does not match G = ({V}, {Σ}, P, S).
	ErrGrammarFormat = errors.New("unrecognized grammar format")

	// ErrSourceNotFound indicates the grammar file does not exist.
	ErrSourceNotFound = errors.New("grammar source not found")

	// ErrInvalidGrammar indicates a well formed grammar that cannot describe an automaton.
	ErrInvalidGrammar = errors.New("invalid grammar")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGrammar, fmt.Sprintf(format, args...))
}

// FormatError is a fatal error in the grammar text.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap returns ErrGrammarFormat
func (e *FormatError) Unwrap() error {
	return ErrGrammarFormat
}

// LineError reports a production line that was skipped. It never stops parsing.
type LineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d skipped: %s: %q", e.Line, e.Reason, e.Text)
}
