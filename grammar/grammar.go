// Package grammar holds right-linear grammars and reads them from their text form.
//
// The text form is a header line followed by production lines:
//
//	G = ({S,A}, {a,b}, P, S)
//	S -> aA | b
//	A -> aA | ε
//
// Blank lines and lines starting with '#' are ignored.
package grammar

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// EpsilonToken is the body written for an empty production.
const EpsilonToken = "ε"

// Production is one alternative of a rule. An empty Body is the ε production.
type Production struct {
	Head string
	Body []string
	// Line is the 1-based source line, 0 for productions built in code.
	Line int
}

// NewProduction creates a production whose body is split into one token per character.
// Body "ε" or "" gives the ε production.
func NewProduction(head, body string) Production {
	return Production{Head: head, Body: tokenize(body)}
}

// IsEpsilon returns true for A -> ε.
func (p Production) IsEpsilon() bool {
	return len(p.Body) == 0
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return p.Head + " -> " + EpsilonToken
	}
	sep := ""
	for _, tok := range p.Body {
		if utf8.RuneCountInString(tok) != 1 {
			sep = " "
			break
		}
	}
	return p.Head + " -> " + strings.Join(p.Body, sep)
}

// Grammar is G = (V, Σ, P, S). Productions keep their source order.
type Grammar struct {
	NonTerminals []string
	Terminals    []string
	Start        string
	Productions  []Production
}

// IsNonTerminal returns true if tok is in V.
func (g *Grammar) IsNonTerminal(tok string) bool {
	return slices.Contains(g.NonTerminals, tok)
}

// IsTerminal returns true if tok is in Σ.
func (g *Grammar) IsTerminal(tok string) bool {
	return slices.Contains(g.Terminals, tok)
}

// Validate checks the parts of the grammar that automaton construction relies on: a non-empty V
// containing S, single character terminals other than ε, and disjoint V and Σ.
func (g *Grammar) Validate() error {
	if len(g.NonTerminals) == 0 {
		return invalidf("no non-terminals")
	}
	if !g.IsNonTerminal(g.Start) {
		return invalidf("start symbol %q is not a non-terminal", g.Start)
	}
	for _, nt := range g.NonTerminals {
		if nt == "" || nt == EpsilonToken {
			return invalidf("non-terminal %q is not a valid name", nt)
		}
	}
	for _, t := range g.Terminals {
		if utf8.RuneCountInString(t) != 1 || t == EpsilonToken {
			return invalidf("terminal %q must be a single character other than %s", t, EpsilonToken)
		}
		if g.IsNonTerminal(t) {
			return invalidf("%q is both a terminal and a non-terminal", t)
		}
	}
	return nil
}

func (g *Grammar) String() string {
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "G = ({%s}, {%s}, P, %s)\n",
		strings.Join(g.NonTerminals, ","), strings.Join(g.Terminals, ","), g.Start)
	for _, p := range g.Productions {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// tokenize splits a production body. Whitespace separated bodies keep their tokens, otherwise
// every character is a token.
func tokenize(body string) []string {
	body = strings.TrimSpace(body)
	if body == "" || body == EpsilonToken {
		return nil
	}
	if fields := strings.Fields(body); len(fields) > 1 {
		return fields
	}
	tokens := make([]string, 0, utf8.RuneCountInString(body))
	for _, r := range body {
		tokens = append(tokens, string(r))
	}
	return tokens
}
