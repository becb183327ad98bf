// Copyright © 2025 The lpyac authors

package complete

import (
	"github.com/lispython/lpyac/host"
	"github.com/lispython/lpyac/inspect"
)

// API is the public surface for editor and REPL integrations. It owns
// the current namespace and the single-slot completion cache. An API
// value is intended for one logical caller at a time; none of its
// methods are safe for concurrent use.
type API struct {
	refl   host.Reflector
	ns     *Namespace
	cached *Prefix
}

// New returns an API with an empty namespace. Call SetNamespace to
// supply scopes.
func New(refl host.Reflector) *API {
	api := &API{refl: refl}
	api.SetNamespace(nil)
	return api
}

// SetNamespace rebuilds the namespace wholesale from the given macro
// table and evaluatable scopes (priority order, globals before
// locals). The completion cache is discarded; a cached pool must not
// survive a namespace change.
func (a *API) SetNamespace(macros *host.Scope, scopes ...*host.Scope) {
	a.ns = NewNamespace(a.refl, macros, scopes...)
	a.cached = nil
}

// Namespace returns the current namespace.
func (a *API) Namespace() *Namespace { return a.ns }

// Complete returns the completions for a prefix string, in the pool
// order of the underlying scope. Consecutive calls sharing a base
// reuse the previous call's candidate pool.
func (a *API) Complete(prefix string) []string {
	cached := a.cached
	p := NewPrefix(prefix, a.ns)
	a.cached = p
	return p.Complete(cached)
}

// Annotate returns the "<kind name>" tag for a candidate string.
func (a *API) Annotate(candidate string) string {
	return NewCandidate(candidate, a.ns).Annotate()
}

// Docs returns the one-line documentation for a candidate string, or
// "" when the candidate does not resolve.
func (a *API) Docs(candidate string) string {
	obj := NewCandidate(candidate, a.ns).Object()
	if obj == nil {
		return ""
	}
	return inspect.New(a.refl, obj).Docs()
}

// FullDocs returns the complete documentation for a candidate string,
// or "" when the candidate does not resolve.
func (a *API) FullDocs(candidate string) string {
	obj := NewCandidate(candidate, a.ns).Object()
	if obj == nil {
		return ""
	}
	return inspect.New(a.refl, obj).FullDocs()
}
