package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	u "github.com/araddon/gou"

	"github.com/geange/glud"
	"github.com/geange/glud/format"
	"github.com/geange/glud/grammar"
)

var separator = strings.Repeat("=", 50)

type pipeline struct {
	cfg    Config
	out    io.Writer
	prompt prompter
}

func newPipeline(cfg Config, out io.Writer, p prompter) *pipeline {
	return &pipeline{cfg: cfg, out: out, prompt: p}
}

// run reads the grammar, builds and transforms the automata, writes the output files and
// simulates the input string on the determinized automaton.
func (p *pipeline) run() error {
	g, lineErrs, err := grammar.ReadFile(p.cfg.GrammarPath)
	if err != nil {
		return err
	}
	for _, le := range lineErrs {
		u.Warnf("%v", le)
		fmt.Fprintln(p.out, styleWarning("aviso: "+le.Error()))
	}
	fmt.Fprintln(p.out, g)

	a, err := p.build(g)
	if err != nil {
		return err
	}

	if p.cfg.WriteFiles {
		paths, err := writeOutputs(p.cfg.OutputDir, a)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, "\nArquivos salvos:")
		for _, path := range paths {
			fmt.Fprintf(p.out, "- %s\n", path)
		}
		u.Infof("wrote %d files to %s", len(paths), p.cfg.OutputDir)
	}

	return p.simulate(a.dfa)
}

func (p *pipeline) build(g *grammar.Grammar) (automata, error) {
	var a automata
	events := &glud.EventLog{}
	opts := []glud.Option{glud.WithTracer(events), glud.WithWorkLimit(p.cfg.WorkLimit)}

	nfa, skipped, err := glud.NFAFromGrammar(g, opts...)
	if err != nil {
		return a, err
	}
	for _, perr := range skipped {
		u.Warnf("skipping %v", perr)
		fmt.Fprintln(p.out, styleWarning("aviso: produção ignorada: "+perr.Error()))
	}
	a.nfa = nfa
	u.Debugf("nfa: %d states, %d transitions", nfa.NumStates(), glud.NumTransitions[string](nfa))
	fmt.Fprintln(p.out, format.NFA(nfa))
	if p.cfg.Verbose {
		if err := format.WriteNFATable(p.out, nfa); err != nil {
			return a, err
		}
	}

	dfa, err := glud.Determinize(nfa, opts...)
	if err != nil {
		return a, err
	}
	a.dfa = dfa
	u.Debugf("dfa: %d states, sink %v", dfa.NumStates(), dfa.Sink() != glud.NoState)
	fmt.Fprintln(p.out, format.DFA(dfa, format.TitleDFA))
	if p.cfg.Verbose {
		if err := format.WriteDeterminizationTable(p.out, events.Events()); err != nil {
			return a, err
		}
		if err := format.WriteDFATable(p.out, dfa); err != nil {
			return a, err
		}
	}

	p.section("")
	comp, err := glud.Complement(dfa)
	if err != nil {
		return a, err
	}
	a.complement = comp
	fmt.Fprintln(p.out, format.DFA(comp, format.TitleComplement))

	p.section("")
	rev, err := glud.Reverse(dfa, opts...)
	if err != nil {
		return a, err
	}
	a.reverse = rev
	u.Debugf("reverse: %d states", rev.NumStates())
	fmt.Fprintln(p.out, format.DFA(rev, format.TitleReverse))
	return a, nil
}

func (p *pipeline) simulate(dfa *glud.DFA) error {
	p.section("SIMULAÇÃO DA CADEIA")

	input, verbose, err := p.input()
	if err != nil {
		return err
	}

	res := dfa.Simulate(input)
	if res.Err != nil {
		u.Debugf("simulation of %q stopped: %v", input, res.Err)
	}
	if verbose {
		fmt.Fprintln(p.out, "\nSimulando no AFD original:")
		if err := format.WriteSimulation(p.out, dfa, res); err != nil {
			return err
		}
	}

	fmt.Fprintln(p.out, "\n"+separator)
	fmt.Fprint(p.out, styleVerdict(format.Verdict(input, res.Accepted), res.Accepted))
	fmt.Fprintf(p.out, "Arquivos gerados: %s\n", outputNames())
	return nil
}

// input returns the string to simulate and whether to show every step.
func (p *pipeline) input() (string, bool, error) {
	if p.cfg.Input != nil {
		input := *p.cfg.Input
		fmt.Fprintf(p.out, "Cadeia recebida via argumento: %s\n", quoted(input))
		return input, true, nil
	}

	input, err := p.prompt.Input()
	if err != nil {
		return "", false, err
	}
	fmt.Fprintf(p.out, "Cadeia digitada: %s\n", quoted(input))

	if p.cfg.Verbose {
		return input, true, nil
	}
	verbose, err := p.prompt.Confirm("Simulação detalhada")
	if err != nil {
		return "", false, err
	}
	return input, verbose, nil
}

func (p *pipeline) section(title string) {
	fmt.Fprintln(p.out, "\n"+styleSection(separator))
	if title != "" {
		fmt.Fprintln(p.out, title)
		fmt.Fprintln(p.out, styleSection(separator))
	}
}

func quoted(s string) string {
	if s == "" {
		return "ε (épsilon - cadeia vazia)"
	}
	return "'" + s + "'"
}

// describe turns a fatal pipeline error into the single message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, grammar.ErrSourceNotFound):
		return "Arquivo de gramática não encontrado."
	case errors.Is(err, grammar.ErrGrammarFormat), errors.Is(err, grammar.ErrInvalidGrammar):
		return fmt.Sprintf("Erro ao ler a gramática: %v", err)
	default:
		return fmt.Sprintf("Ocorreu um erro inesperado: %v", err)
	}
}
