package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geange/glud"
	"github.com/geange/glud/format"
)

// Output file names, in the order they are written.
const (
	fileNFA        = "AFN.txt"
	fileDFA        = "AFD.txt"
	fileComplement = "COMP.txt"
	fileReverse    = "REV.txt"
)

type automata struct {
	nfa        *glud.NFA
	dfa        *glud.DFA
	complement *glud.DFA
	reverse    *glud.DFA
}

// writeOutputs writes the text form of every automaton into dir and returns the written paths.
func writeOutputs(dir string, a automata) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	outputs := []struct {
		name string
		text string
	}{
		{fileNFA, format.NFA(a.nfa)},
		{fileDFA, format.DFA(a.dfa, format.TitleDFA)},
		{fileComplement, format.DFA(a.complement, format.TitleComplement)},
		{fileReverse, format.DFA(a.reverse, format.TitleReverse)},
	}

	paths := make([]string, 0, len(outputs))
	for _, o := range outputs {
		path := filepath.Join(dir, o.name)
		if err := os.WriteFile(path, []byte(o.text), 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", o.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func outputNames() string {
	return strings.Join([]string{fileNFA, fileDFA, fileReverse, fileComplement}, ", ")
}
