// Copyright © 2025 The lpyac authors

// Package repl provides an interactive session for exploring a
// lispython namespace: tab completion, candidate annotation, and
// documentation lookup over the completion API.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/lispython/lpyac/complete"
	"github.com/lispython/lpyac/inspect"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Option configures the REPL session.
type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// Run starts an interactive session over the given API. Each input
// line names a candidate; the session prints its annotation and
// one-line documentation. The commands :full NAME, :names, and :quit
// print full documentation, list the namespace, and exit.
func Run(prompt string, api *complete.API, opts ...Option) {
	cfg := newConfig(opts...)
	stderr := io.Writer(os.Stderr)
	if cfg.stderr != nil {
		stderr = cfg.stderr
	}

	rlCfg := &readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyPath(),
		HistorySearchFold: true,
		AutoComplete:      &symbolCompleter{api: api},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	if cfg.stderr != nil {
		rlCfg.Stdout = cfg.stderr
		rlCfg.Stderr = cfg.stderr
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		errlnf(stderr, "readline initialization failure: %v", err)
		os.Exit(1)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		raw, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}
		if quit := command(stderr, api, line); quit {
			break
		}
	}
}

// command dispatches one input line, reporting whether the session
// should end.
func command(w io.Writer, api *complete.API, line string) bool {
	switch {
	case line == ":quit":
		return true
	case line == ":names":
		for _, name := range api.Namespace().Names() {
			fmt.Fprintln(w, name) //nolint:errcheck // best-effort REPL output
		}
	case strings.HasPrefix(line, ":full "):
		name := strings.TrimSpace(strings.TrimPrefix(line, ":full "))
		if err := inspect.RenderDoc(w, api.FullDocs(name)); err != nil {
			errlnf(w, "%v", err)
		}
	default:
		fmt.Fprintln(w, api.Annotate(line)) //nolint:errcheck // best-effort REPL output
		if docs := api.Docs(line); docs != "" {
			if err := inspect.RenderDoc(w, docs); err != nil {
				errlnf(w, "%v", err)
			}
		}
	}
	return false
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lpyac_history")
}

func errlnf(w io.Writer, format string, v ...interface{}) {
	fmt.Fprintf(w, format+"\n", v...) //nolint:errcheck // best-effort error display
}
