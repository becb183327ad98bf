// Copyright © 2025 The lpyac authors

package complete

import (
	"strings"

	"github.com/lispython/lpyac/symbol"
)

// Prefix is an in-progress input split at its last dot into a base
// candidate (everything before, possibly empty) and a trailing
// attribute prefix to filter against. A Prefix holds the unfiltered
// candidate pool of its last Complete call; passing that Prefix into a
// later call with an equal base reuses the pool without re-querying
// the reflection port.
type Prefix struct {
	prefix     string
	ns         *Namespace
	candidate  *Candidate
	attrPrefix string

	// pool is the one-shot cache slot: the unfiltered candidate list
	// from the last Complete call.
	pool []string
}

// NewPrefix splits input at its last dot and binds the pieces to ns.
func NewPrefix(input string, ns *Namespace) *Prefix {
	base, attr := splitPrefix(input)
	return &Prefix{
		prefix:     input,
		ns:         ns,
		candidate:  NewCandidate(base, ns),
		attrPrefix: symbol.Unmangle(attr),
	}
}

// splitPrefix separates input into the dotted base path and the
// trailing partial attribute name.
func splitPrefix(input string) (base, attr string) {
	idx := strings.LastIndex(input, ".")
	if idx < 0 {
		return "", input
	}
	return input[:idx], input[idx+1:]
}

// String returns the raw input string.
func (p *Prefix) String() string { return p.prefix }

// Candidate returns the base candidate.
func (p *Prefix) Candidate() *Candidate { return p.candidate }

// AttrPrefix returns the surface-form partial attribute name.
func (p *Prefix) AttrPrefix() string { return p.attrPrefix }

// HasAttr reports whether the input references an attribute (contains
// a dot).
func (p *Prefix) HasAttr() bool {
	return strings.Contains(p.prefix, ".")
}

// HasObject reports whether the base candidate resolves to an object.
func (p *Prefix) HasObject() bool {
	return p.candidate.Object() != nil
}

// Complete returns the completions for the prefix in pool order. When
// cached is non-nil and shares an equal base candidate, its unfiltered
// pool is reused verbatim and the reflection port is not consulted;
// otherwise the pool is the base's attributes, falling back to the
// namespace's top-level names. A dotted input whose base does not
// resolve completes to nothing.
func (p *Prefix) Complete(cached *Prefix) []string {
	if p.HasAttr() && !p.HasObject() {
		p.pool = nil
		return nil
	}

	if cached != nil && p.candidate.Equal(cached.candidate) {
		p.pool = cached.pool
	} else if attrs := p.candidate.Attributes(); len(attrs) > 0 {
		p.pool = attrs
	} else {
		p.pool = p.ns.Names()
	}

	var out []string
	for _, name := range p.pool {
		if strings.HasPrefix(name, p.attrPrefix) {
			out = append(out, p.attach(name))
		}
	}
	return out
}

// attach joins a surviving pool entry back onto the base path.
func (p *Prefix) attach(completion string) string {
	if p.candidate.IsZero() {
		return completion
	}
	return p.candidate.String() + "." + completion
}
