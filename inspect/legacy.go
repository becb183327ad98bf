// Copyright © 2025 The lpyac authors

package inspect

import (
	"strings"

	"github.com/lispython/lpyac/host"
)

// legacyReplacements are applied to the docstring text after the name
// prefix is split off, in this order. Every occurrence is rewritten.
var legacyReplacements = [...][2]string{
	{"...", "* args"},
	{"*args", "* args"},
	{"**kwargs", "** kwargs"},
	{"\n", "newline"},
	{"-->", "- return"},
}

// ParseLegacyDoc converts a builtin-style docstring fragment such as
// "func(a, b=1) - description" into the lispy rendering
// "func: (a &optional [b 1]) - description". Text lacking a "(" or a
// ")" is returned unchanged. Only the first "(" and the first ")"
// after substitution delimit the argument list; nested parentheses in
// surrounding prose are out of contract.
func ParseLegacyDoc(docs string) string {
	if !strings.Contains(docs, "(") || !strings.Contains(docs, ")") {
		return docs
	}

	preArgs, rest, _ := strings.Cut(docs, "(")
	formatted := preArgs + ": (" + rest
	for _, r := range legacyReplacements {
		formatted = strings.ReplaceAll(formatted, r[0], r[1])
	}

	preArgs, args, postArgs := splitLegacyDoc(formatted)

	pieces := strings.Split(args, ",")
	for i, piece := range pieces {
		pieces[i] = strings.TrimSpace(piece)
	}
	pieces = insertOptional(pieces)

	rendered := make([]string, len(pieces))
	for i, piece := range pieces {
		rendered[i] = legacyParam(piece).String()
	}

	return preArgs + strings.Join(rendered, " ") + postArgs
}

// splitLegacyDoc partitions the transformed text around the argument
// list delimited by the first "(" and the first ")". Should the ")"
// precede the "(", the argument list reads as empty, mirroring the
// source system's slice semantics.
func splitLegacyDoc(docs string) (pre, args, post string) {
	argStart := strings.Index(docs, "(") + 1
	argEnd := strings.Index(docs, ")")
	pre = docs[:argStart]
	if argEnd >= argStart {
		args = docs[argStart:argEnd]
	}
	post = docs[argEnd:]
	return pre, args, post
}

// insertOptional splices the literal "&optional" token before the
// first piece carrying a default. The token then flows through
// Parameter conversion as a bare symbol.
func insertOptional(pieces []string) []string {
	for i, piece := range pieces {
		if strings.Contains(piece, "=") {
			out := make([]string, 0, len(pieces)+1)
			out = append(out, pieces[:i]...)
			out = append(out, "&optional")
			out = append(out, pieces[i:]...)
			return out
		}
	}
	return pieces
}

// legacyParam converts one argument-list piece to a Parameter. A
// default textually equal to the host's "None" collapses to a bare
// parameter.
func legacyParam(piece string) Parameter {
	name, def, found := strings.Cut(piece, "=")
	if !found {
		return NewParameter(piece)
	}
	if def == host.NoneLiteral {
		return NewParameter(name)
	}
	return NewParameterDefault(name, def)
}
