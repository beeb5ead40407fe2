package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds everything a run needs.
type Config struct {
	// GrammarPath is the grammar source file.
	GrammarPath string

	// OutputDir receives AFN.txt, AFD.txt, COMP.txt and REV.txt. It is created if missing.
	OutputDir string

	// WriteFiles disables the output files when false.
	WriteFiles bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// Verbose prints transition tables and the step by step simulation without asking.
	Verbose bool

	// WorkLimit bounds the number of DFA states determinization may discover. Zero means no limit.
	WorkLimit int

	// Input is the string to simulate. Nil means ask for it interactively.
	Input *string
}

// DefaultConfig returns the configuration used when no flag is given.
func DefaultConfig() Config {
	return Config{
		GrammarPath: "./grammar/glud.txt",
		OutputDir:   "output",
		WriteFiles:  true,
		LogLevel:    "info",
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.GrammarPath == "" {
		return errors.New("grammar path must not be empty")
	}
	if c.WriteFiles && c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log level %q must be one of %v", c.LogLevel, logLevels)
	}
	if c.WorkLimit < 0 {
		return fmt.Errorf("work limit must be >= 0, got %d", c.WorkLimit)
	}
	return nil
}

// parseArgs reads the command line. Help requests print usage to w and return flag.ErrHelp.
func parseArgs(args []string, w io.Writer) (Config, error) {
	cfg := DefaultConfig()
	noFiles := false

	fs := flag.NewFlagSet("glud", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&cfg.GrammarPath, "grammar", cfg.GrammarPath, "grammar source file")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for the output files")
	fs.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "log level [debug|info|warn|error]")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print tables and the step by step simulation")
	fs.BoolVar(&noFiles, "no-files", false, "do not write the output files")
	fs.IntVar(&cfg.WorkLimit, "limit", cfg.WorkLimit, "maximum number of DFA states, 0 for no limit")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	rest := fs.Args()
	if len(rest) > 0 && rest[0] == "help" {
		fs.Usage()
		return cfg, flag.ErrHelp
	}
	if len(rest) > 1 {
		return cfg, fmt.Errorf("expected at most one input string, got %d", len(rest))
	}
	if len(rest) == 1 {
		input := rest[0]
		cfg.Input = &input
	}
	cfg.WriteFiles = !noFiles

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Uso: glud [flags] [cadeia]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Argumentos:")
	fmt.Fprintln(w, "  cadeia    Cadeia opcional a ser testada (ex: 'abaaab')")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Se nenhuma cadeia for fornecida, será solicitada interativamente.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exemplos:")
	fmt.Fprintln(w, "  glud abaaab")
	fmt.Fprintln(w, "  glud \"\"      # cadeia vazia")
	fmt.Fprintln(w, "  glud         # modo interativo")
}
