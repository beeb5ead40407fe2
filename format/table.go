package format

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/geange/glud"
)

const missing = "-"

// WriteNFATable writes one row per state with the targets of every symbol, ε last.
func WriteNFATable(w io.Writer, n *glud.NFA) error {
	alphabet := n.Alphabet()
	symbols := append(slices.Clone(alphabet), glud.Epsilon)

	table := tablewriter.NewWriter(w)
	table.Header(header("Estado", symbols))
	for _, s := range n.States() {
		row := []string{marked(s, s == n.Initial(), n.IsAccept(s))}
		for _, symbol := range symbols {
			row = append(row, cell(strings.Join(n.Targets(s, symbol), ", ")))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteDFATable writes one row per state in composite key order. States are named q0, q1, ...
// in that order, followed by their composite state.
func WriteDFATable(w io.Writer, d *glud.DFA) error {
	order := d.SortedStates()
	names := make(map[glud.StateID]string, len(order))
	for i, id := range order {
		names[id] = fmt.Sprintf("q%d", i)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header("Estado", d.Alphabet()))
	for _, id := range order {
		label := fmt.Sprintf("%s %s", names[id], d.State(id))
		row := []string{marked(label, id == d.Initial(), d.IsAccept(id))}
		for _, symbol := range d.Alphabet() {
			next, ok := d.Step(id, symbol)
			if !ok {
				row = append(row, missing)
				continue
			}
			row = append(row, names[next])
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteDeterminizationTable writes the transitions recorded during determinization, one row per
// composite state in discovery order. Events of other kinds are ignored.
func WriteDeterminizationTable(w io.Writer, events []glud.Event) error {
	sources := make([]string, 0)
	symbols := make(glud.Alphabet, 0)
	targets := make(map[string]map[glud.Symbol]string)

	for _, e := range events {
		if e.Kind != glud.EventTransition {
			continue
		}
		if _, ok := targets[e.Source]; !ok {
			sources = append(sources, e.Source)
			targets[e.Source] = make(map[glud.Symbol]string)
		}
		if !slices.Contains(symbols, e.Symbol) {
			symbols = append(symbols, e.Symbol)
		}
		targets[e.Source][e.Symbol] = e.Target
	}
	slices.Sort(symbols)

	table := tablewriter.NewWriter(w)
	table.Header(header("ε-fecho", symbols))
	for _, s := range sources {
		row := []string{s}
		for _, symbol := range symbols {
			row = append(row, cell(targets[s][symbol]))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteSimulation writes the step by step trace of res over d.
func WriteSimulation(w io.Writer, d *glud.DFA, res glud.Result) error {
	sb := new(strings.Builder)
	if res.Input == "" {
		sb.WriteString("Simulando cadeia épsilon (ε) - cadeia vazia\n")
	} else {
		fmt.Fprintf(sb, "Simulando cadeia: '%s'\n", res.Input)
	}
	fmt.Fprintf(sb, "Estado inicial: %s\n", d.State(d.Initial()))

	if res.Input == "" {
		sb.WriteString("Cadeia vazia - nenhuma transição executada\n")
		fmt.Fprintf(sb, "Estado inicial é final? %s\n", yesNo(res.Accepted))
		_, err := io.WriteString(w, sb.String())
		return err
	}

	for i, step := range res.Steps {
		fmt.Fprintf(sb, "Passo %d: Lendo símbolo '%s'\n", i+1, step.Symbol)
		fmt.Fprintf(sb, "  %s --%s--> %s\n", d.State(step.From), step.Symbol, d.State(step.To))
	}

	var simErr *glud.SimulationError
	if errors.As(res.Err, &simErr) {
		fmt.Fprintf(sb, "Passo %d: Lendo símbolo '%s'\n", simErr.Position+1, simErr.Symbol)
		switch simErr.Kind {
		case glud.UnknownSymbol:
			fmt.Fprintf(sb, "  ERRO: Símbolo '%s' não está no alfabeto %s\n", simErr.Symbol, d.Alphabet())
		case glud.UndefinedTransition:
			fmt.Fprintf(sb, "  ERRO: Não há transição de %s com símbolo '%s'\n", simErr.State, simErr.Symbol)
		}
	} else {
		fmt.Fprintf(sb, "Estado final: %s\n", d.State(res.Final))
		fmt.Fprintf(sb, "Estado final é de aceitação? %s\n", yesNo(res.Accepted))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Verdict is the two line summary of a simulation.
func Verdict(input string, accepted bool) string {
	shown := input
	if input == "" {
		shown = "ε (épsilon - cadeia vazia)"
	}
	result := "Rejeitada"
	if accepted {
		result = "Aceita"
	}
	return fmt.Sprintf("cadeia: %s\nResultado: %s\n", shown, result)
}

func header(first string, symbols []glud.Symbol) []string {
	out := []string{first}
	for _, s := range symbols {
		out = append(out, s.String())
	}
	return out
}

// marked prefixes the initial state with -> and accepting states with *.
func marked(label string, initial, accept bool) string {
	prefix := ""
	if initial {
		prefix += "->"
	}
	if accept {
		prefix += "*"
	}
	if prefix == "" {
		return label
	}
	return prefix + " " + label
}

func cell(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
