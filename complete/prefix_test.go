// Copyright © 2025 The lpyac authors

package complete

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lispython/lpyac/host"
)

func TestPrefixSplit(t *testing.T) {
	ns := newTestNamespace(t)

	tests := []struct {
		input string
		base  string
		attr  string
	}{
		{"prin", "", "prin"},
		{"print.", "print", ""},
		{"print.__c", "print", "__c"},
		{"a.b.c", "a.b", "c"},
		{"", "", ""},
		{"my_mod.attr_name", "my-mod", "attr-name"},
	}
	for _, tt := range tests {
		p := NewPrefix(tt.input, ns)
		assert.Equal(t, tt.base, p.Candidate().String(), "base of %q", tt.input)
		assert.Equal(t, tt.attr, p.AttrPrefix(), "attr of %q", tt.input)
	}
}

func TestPrefixHasAttr(t *testing.T) {
	ns := newTestNamespace(t)
	assert.False(t, NewPrefix("prin", ns).HasAttr())
	assert.True(t, NewPrefix("print.", ns).HasAttr())
	assert.True(t, NewPrefix("print.__c", ns).HasAttr())
}

func TestCompleteTopLevel(t *testing.T) {
	ns := newTestNamespace(t)

	got := NewPrefix("prin", ns).Complete(nil)
	assert.Equal(t, []string{"print"}, got)
}

func TestCompleteEmptyInput(t *testing.T) {
	ns := newTestNamespace(t)
	// The empty prefix completes to the full top-level name list.
	got := NewPrefix("", ns).Complete(nil)
	assert.Equal(t, ns.Names(), got)
}

func TestCompleteAttributes(t *testing.T) {
	ns := newTestNamespace(t)

	got := NewPrefix("print.", ns).Complete(nil)
	assert.Equal(t, []string{"print.__call__", "print.__class__", "print.__str__"}, got)

	got = NewPrefix("print.__c", ns).Complete(nil)
	assert.Equal(t, []string{"print.__call__", "print.__class__"}, got)
}

func TestCompleteUnresolvedBase(t *testing.T) {
	ns := newTestNamespace(t)
	// A dotted prefix whose base does not resolve completes to nothing.
	assert.Empty(t, NewPrefix("nonsense.real-attr", ns).Complete(nil))
}

func TestCompleteMacroName(t *testing.T) {
	ns := newTestNamespace(t)
	got := NewPrefix("my-", ns).Complete(nil)
	assert.Equal(t, []string{"my-var", "my-macro"}, got)
}

func TestCompleteCachedPoolReused(t *testing.T) {
	refl := &countingReflector{}
	ns := NewNamespace(refl, testMacros(), testGlobals())

	first := NewPrefix("print.", ns)
	all := first.Complete(nil)
	require.NotEmpty(t, all)
	callsAfterFirst := refl.memberCalls
	assert.Greater(t, callsAfterFirst, 0)

	// Refining the prefix with the same base reuses the pool without
	// consulting the reflection port again.
	second := NewPrefix("print.__c", ns)
	narrowed := second.Complete(first)
	assert.Equal(t, callsAfterFirst, refl.memberCalls)

	// Every narrowed result appears in the first result set and keeps
	// the refined attribute prefix after the final dot.
	for _, c := range narrowed {
		assert.Contains(t, all, c)
		assert.True(t, strings.HasPrefix(c[strings.LastIndex(c, ".")+1:], "__c"), "completion %q", c)
	}
	assert.Less(t, len(narrowed), len(all))
}

func TestCompleteCacheMissOnDifferentBase(t *testing.T) {
	ns := newTestNamespace(t)

	first := NewPrefix("print.", ns)
	first.Complete(nil)

	got := NewPrefix("itertools.ch", ns).Complete(first)
	assert.Equal(t, []string{"itertools.chain"}, got)
}

func TestCompleteIdempotent(t *testing.T) {
	ns := newTestNamespace(t)
	a := NewPrefix("print.__c", ns).Complete(nil)
	b := NewPrefix("print.__c", ns).Complete(nil)
	assert.Equal(t, a, b)
}

func TestCompleteEmptyAttributesFallsBack(t *testing.T) {
	// An object exposing no members falls back to the top-level names
	// for a bare (dotless) prefix, and the dotless empty base never
	// consults member enumeration results.
	scope := host.NewScope()
	scope.Bind("bare", host.NewInstance("bare", "int", ""))
	ns := NewNamespace(host.MapReflector{}, nil, scope)

	got := NewPrefix("ba", ns).Complete(nil)
	assert.Equal(t, []string{"bare"}, got)
}
