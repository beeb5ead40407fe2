// Command glud reads a right-linear grammar, converts it into an NFA, determinizes it, builds
// the complement and reverse automata, writes all four to text files and simulates a string on
// the determinized automaton.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"
)

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Println(err)
		return
	}

	u.SetupLogging(cfg.LogLevel)
	u.SetColorIfTerminal()

	if err := newPipeline(cfg, os.Stdout, terminalPrompter{}).run(); err != nil {
		u.Debugf("pipeline failed: %v", err)
		fmt.Println(describe(err))
	}
}
