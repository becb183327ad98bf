// Copyright © 2025 The lpyac authors

package repl

import (
	"strings"

	"github.com/lispython/lpyac/complete"
)

// symbolCompleter implements readline.AutoCompleter by delegating to
// the completion API.
type symbolCompleter struct {
	api *complete.API
}

func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace or open paren).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == '(' || ch == '\n' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.api.Complete(prefix)
	if len(candidates) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append. A prefix
	// typed in host form yields surface-form candidates that do not
	// extend it; those are skipped rather than mis-spliced.
	result := make([][]rune, 0, len(candidates))
	for _, sym := range candidates {
		if !strings.HasPrefix(sym, prefix) {
			continue
		}
		result = append(result, []rune(sym[len(prefix):]))
	}
	if len(result) == 0 {
		return nil, 0
	}
	return result, len(prefix)
}
