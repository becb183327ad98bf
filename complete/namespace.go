// Copyright © 2025 The lpyac authors

// Package complete implements name resolution and prefix completion
// over a layered lispython namespace. Symbols are presented in surface
// form (hyphenated) and evaluated in host form (underscored); macro
// bindings shadow evaluated bindings of the same name.
package complete

import (
	"errors"

	"github.com/lispython/lpyac/host"
	"github.com/lispython/lpyac/symbol"
)

// Namespace aggregates the scopes a resolution session completes
// against: zero or more evaluatable scopes in priority order (globals
// before locals) plus a macro table. The merged name list is collected
// once at construction; callers supply fresh scopes to rebuild.
type Namespace struct {
	refl   host.Reflector
	scopes []*host.Scope
	macros *host.Scope
	names  []string
}

// NewNamespace builds a namespace from the given macro table and
// evaluatable scopes. Macro keys are translated to surface form
// immediately; all later macro lookups are by surface name. A nil
// macros table and zero scopes are both valid.
func NewNamespace(refl host.Reflector, macros *host.Scope, scopes ...*host.Scope) *Namespace {
	ns := &Namespace{
		refl:   refl,
		scopes: scopes,
		macros: host.NewScope(),
	}
	if macros != nil {
		for _, key := range macros.Names() {
			v, _ := macros.Get(key)
			if obj, ok := v.(*host.Object); ok {
				ns.macros.Bind(symbol.Unmangle(key), obj)
			}
		}
	}
	ns.names = ns.collectNames()
	return ns
}

// Names returns the order-preserving de-duplicated union of surface
// names across every scope (flattening nested scopes to their
// innermost keys) followed by the macro names.
func (ns *Namespace) Names() []string {
	return ns.names
}

func (ns *Namespace) collectNames() []string {
	var all []string
	for _, scope := range ns.scopes {
		for _, key := range scope.AllKeys() {
			all = append(all, symbol.Unmangle(key))
		}
	}
	all = append(all, ns.macros.Names()...)
	return symbol.Distinct(all)
}

// Macro returns the macro bound to the given surface name, or nil.
func (ns *Namespace) Macro(surface string) *host.Object {
	v, ok := ns.macros.Get(surface)
	if !ok {
		return nil
	}
	obj, _ := v.(*host.Object)
	return obj
}

// Eval resolves a host-form dotted expression against the scopes in
// order. A name-not-found failure falls through to the next scope; any
// other evaluation failure resolves to nothing. Eval never reports an
// error to the caller.
func (ns *Namespace) Eval(mangled string) *host.Object {
	if mangled == "" {
		return nil
	}
	for _, scope := range ns.scopes {
		obj, err := ns.refl.Eval(mangled, scope)
		if err == nil {
			return obj
		}
		if errors.Is(err, host.ErrNotFound) {
			continue
		}
		return nil
	}
	return nil
}

// Reflector returns the reflection port the namespace was built with.
func (ns *Namespace) Reflector() host.Reflector {
	return ns.refl
}
