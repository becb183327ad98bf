// Copyright © 2025 The lpyac authors

// Package symbol converts identifiers between the hyphenated lispython
// surface convention and the underscore convention used by the host
// runtime.
package symbol

import "strings"

// Mangle converts a lispy symbol to a host identifier by replacing
// every hyphen with an underscore.
func Mangle(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// Unmangle converts a host identifier to a lispy symbol. Interior
// underscores become hyphens while leading and trailing underscore runs
// are preserved, so names like __call__ and _private survive the round
// trip. A string consisting entirely of underscores is returned
// unchanged.
func Unmangle(s string) string {
	if s == "" {
		return ""
	}
	leading := len(s) - len(strings.TrimLeft(s, "_"))
	trailing := len(s) - len(strings.TrimRight(s, "_"))
	if leading+trailing >= len(s) {
		return s
	}
	middle := strings.ReplaceAll(s[leading:len(s)-trailing], "_", "-")
	return s[:leading] + middle + s[len(s)-trailing:]
}

// Distinct returns names with duplicates removed, preserving the first
// occurrence order.
func Distinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
