package grammar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

var (
	headerPattern     = regexp.MustCompile(`^G\s*=\s*\(\s*\{(.+?)\}\s*,\s*\{(.+?)\}\s*,\s*P\s*,\s*(\w+)\s*\)\s*$`)
	productionPattern = regexp.MustCompile(`^(\w+)\s*->\s*(.+)$`)
)

// ReadFile parses the grammar stored at path. A missing file fails with ErrSourceNotFound.
func ReadFile(path string) (*Grammar, []*LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a grammar. The first significant line must be the header; a bad header is a
// *FormatError. Production lines that cannot be read are skipped and returned as LineErrors.
// Whether the symbols of a production are terminals or non-terminals is not checked here.
func Parse(r io.Reader) (*Grammar, []*LineError, error) {
	scanner := bufio.NewScanner(r)
	var g *Grammar
	skipped := make([]*LineError, 0)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if g == nil {
			h, err := parseHeader(line, lineNo)
			if err != nil {
				return nil, nil, err
			}
			g = h
			continue
		}

		m := productionPattern.FindStringSubmatch(line)
		if m == nil {
			skipped = append(skipped, &LineError{Line: lineNo, Text: line, Reason: "not a production"})
			continue
		}
		head := m[1]
		for _, alt := range strings.Split(m[2], "|") {
			alt = strings.TrimSpace(alt)
			if alt == "" {
				skipped = append(skipped, &LineError{Line: lineNo, Text: line, Reason: "empty alternative"})
				continue
			}
			g.Productions = append(g.Productions, Production{Head: head, Body: tokenize(alt), Line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, &FormatError{Line: lineNo, Reason: "missing header"}
	}
	return g, skipped, nil
}

func parseHeader(line string, lineNo int) (*Grammar, error) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, &FormatError{Line: lineNo, Text: line, Reason: "expected G = ({V}, {Σ}, P, S)"}
	}
	return &Grammar{
		NonTerminals: splitSet(m[1]),
		Terminals:    splitSet(m[2]),
		Start:        m[3],
		Productions:  make([]Production, 0),
	}, nil
}

func splitSet(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
