// Copyright © 2025 The lpyac authors

package complete

import (
	"fmt"

	"github.com/lispython/lpyac/host"
	"github.com/lispython/lpyac/symbol"
)

// Candidate is a dotted-path symbol resolved against a namespace. The
// symbol is held in surface form; the mangled host form is used for
// evaluation. A candidate with an empty symbol resolves to nothing.
type Candidate struct {
	symbol  string
	mangled string
	ns      *Namespace
}

// NewCandidate constructs a candidate for sym, which may be given in
// either convention.
func NewCandidate(sym string, ns *Namespace) *Candidate {
	return &Candidate{
		symbol:  symbol.Unmangle(sym),
		mangled: symbol.Mangle(sym),
		ns:      ns,
	}
}

// String returns the surface-form symbol.
func (c *Candidate) String() string { return c.symbol }

// IsZero reports whether the candidate has an empty symbol.
func (c *Candidate) IsZero() bool { return c.symbol == "" }

// Equal reports surface-symbol equality. Namespace identity is
// deliberately ignored; the completion cache keys on this.
func (c *Candidate) Equal(other *Candidate) bool {
	return other != nil && c.symbol == other.symbol
}

// Macro returns the macro bound to the candidate's surface symbol, or
// nil.
func (c *Candidate) Macro() *host.Object {
	return c.ns.Macro(c.symbol)
}

// Evaled evaluates the candidate's host form, or nil if it does not
// resolve.
func (c *Candidate) Evaled() *host.Object {
	return c.ns.Eval(c.mangled)
}

// Object resolves the candidate. Macro bindings shadow evaluated
// bindings.
func (c *Candidate) Object() *host.Object {
	if m := c.Macro(); m != nil {
		return m
	}
	return c.Evaled()
}

// Attributes returns the surface-form member names of the evaluated
// value, or nil when the candidate does not evaluate.
func (c *Candidate) Attributes() []string {
	obj := c.Evaled()
	if obj == nil {
		return nil
	}
	members := c.ns.Reflector().Members(obj)
	attrs := make([]string, len(members))
	for i, m := range members {
		attrs[i] = symbol.Unmangle(m)
	}
	return attrs
}

// translateClass maps a host class name to an annotation kind.
func translateClass(class string) string {
	switch class {
	case host.ClassFunction, host.ClassBuiltin:
		return "function"
	case host.ClassType:
		return "class"
	case host.ClassModule:
		return "module"
	default:
		return "instance"
	}
}

// Annotate returns a tag of the form "<kind name>" describing what the
// candidate resolves to. Evaluated values are classified by their
// runtime class; a macro binding with no evaluated value is tagged
// macro; anything else is unknown.
func (c *Candidate) Annotate() string {
	var kind string
	if obj := c.Evaled(); obj != nil {
		kind = translateClass(c.ns.Reflector().ClassName(obj))
	} else if c.Macro() != nil {
		kind = "macro"
	} else {
		kind = "unknown"
	}
	return fmt.Sprintf("<%s %s>", kind, c.symbol)
}
