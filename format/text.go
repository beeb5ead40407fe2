// Package format renders automata for people: the plain text form written to the output files
// and transition tables for the terminal.
package format

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/geange/glud"
)

// Section titles of the text form.
const (
	TitleNFA        = "# AFN Original"
	TitleDFA        = "# AFD Determinizado"
	TitleComplement = "# AFD Complemento"
	TitleReverse    = "# AFD Reverso"
)

type edge struct {
	source string
	symbol glud.Symbol
	dest   string
}

// NFA renders n under TitleNFA. States are renamed q0, q1, ... in name order.
func NFA(n *glud.NFA) string {
	names := stateNames(n.States())

	edges := make([]edge, 0)
	for _, t := range n.Transitions() {
		edges = append(edges, edge{names[t.Source], t.Symbol, names[t.Dest]})
	}

	accepting := make([]string, 0)
	for _, f := range glud.Accepting[string](n) {
		accepting = append(accepting, names[f])
	}

	states := make([]string, 0, n.NumStates())
	for _, s := range n.States() {
		states = append(states, names[s])
	}
	return render(TitleNFA, states, n.Alphabet(), edges, names[n.Initial()], accepting)
}

// DFA renders d under title. Every NFA state appearing in a composite state is renamed q0, q1,
// ... in name order and composite states are shown as sets of those names. States are listed in
// composite key order.
func DFA(d *glud.DFA, title string) string {
	r := newCompositeRenamer(d)

	states := make([]string, 0, d.NumStates())
	accepting := make([]string, 0)
	for _, id := range d.SortedStates() {
		states = append(states, r.name(id))
		if d.IsAccept(id) {
			accepting = append(accepting, r.name(id))
		}
	}

	edges := make([]edge, 0)
	for _, t := range d.Transitions() {
		edges = append(edges, edge{r.name(t.Source), t.Symbol, r.name(t.Dest)})
	}
	return render(title, states, d.Alphabet(), edges, r.name(d.Initial()), accepting)
}

// WriteNFA writes the text form of n to w.
func WriteNFA(w io.Writer, n *glud.NFA) error {
	_, err := io.WriteString(w, NFA(n))
	return err
}

// WriteDFA writes the text form of d to w.
func WriteDFA(w io.Writer, d *glud.DFA, title string) error {
	_, err := io.WriteString(w, DFA(d, title))
	return err
}

func render(title string, states []string, alphabet glud.Alphabet, edges []edge, initial string, accepting []string) string {
	slices.SortStableFunc(edges, func(a, b edge) int {
		return cmp.Or(
			strings.Compare(a.source, b.source),
			cmp.Compare(a.symbol, b.symbol),
			strings.Compare(a.dest, b.dest),
		)
	})

	symbols := make([]string, 0, alphabet.Len())
	for _, s := range alphabet {
		symbols = append(symbols, s.String())
	}

	sb := new(strings.Builder)
	sb.WriteString(title + "\n")
	fmt.Fprintf(sb, "Q: %s\n", strings.Join(states, ", "))
	fmt.Fprintf(sb, "Σ: %s\n", strings.Join(symbols, ", "))
	sb.WriteString("δ:\n")
	for _, e := range edges {
		fmt.Fprintf(sb, "%s, %s -> %s\n", e.source, e.symbol, e.dest)
	}
	fmt.Fprintf(sb, "%s: inicial\n", initial)
	fmt.Fprintf(sb, "F: %s\n", strings.Join(accepting, ", "))
	return sb.String()
}

// stateNames maps sorted names to q0, q1, ...
func stateNames(sorted []string) map[string]string {
	names := make(map[string]string, len(sorted))
	for i, s := range sorted {
		names[s] = fmt.Sprintf("q%d", i)
	}
	return names
}

type compositeRenamer struct {
	dfa     *glud.DFA
	members map[string]string
}

func newCompositeRenamer(d *glud.DFA) *compositeRenamer {
	all := make([]string, 0)
	for _, id := range d.States() {
		all = append(all, d.State(id).Members()...)
	}
	slices.Sort(all)
	return &compositeRenamer{dfa: d, members: stateNames(slices.Compact(all))}
}

func (r *compositeRenamer) name(id glud.StateID) string {
	members := r.dfa.State(id).Members()
	for i, m := range members {
		members[i] = r.members[m]
	}
	return "{" + strings.Join(members, ", ") + "}"
}
