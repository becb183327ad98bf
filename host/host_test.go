// Copyright © 2025 The lpyac authors

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectMemberOrder(t *testing.T) {
	obj := NewModule("m", "")
	obj.Set("b", NewInstance("b", "int", ""))
	obj.Set("a", NewInstance("a", "int", ""))
	obj.Set("c", NewInstance("c", "int", ""))
	assert.Equal(t, []string{"b", "a", "c"}, obj.MemberNames())

	// Rebinding keeps the original position.
	obj.Set("a", NewInstance("a", "str", ""))
	assert.Equal(t, []string{"b", "a", "c"}, obj.MemberNames())
}

func TestScopeAllKeys(t *testing.T) {
	inner := NewScope()
	inner.Bind("x", NewInstance("x", "int", ""))
	inner.Bind("y", NewInstance("y", "int", ""))

	scope := NewScope()
	scope.Bind("a", NewInstance("a", "int", ""))
	scope.BindScope("nested", inner)
	scope.Bind("b", NewInstance("b", "int", ""))

	// Nested scopes contribute their innermost keys in place.
	assert.Equal(t, []string{"a", "x", "y", "b"}, scope.AllKeys())
	assert.Equal(t, []string{"a", "nested", "b"}, scope.Names())
}

func TestMapReflectorEval(t *testing.T) {
	refl := MapReflector{}

	attr := NewInstance("attr", "int", "")
	obj := NewModule("mod", "a module")
	obj.Set("attr", attr)

	scope := NewScope()
	scope.Bind("mod", obj)

	got, err := refl.Eval("mod", scope)
	require.NoError(t, err)
	assert.Same(t, obj, got)

	got, err = refl.Eval("mod.attr", scope)
	require.NoError(t, err)
	assert.Same(t, attr, got)

	_, err = refl.Eval("missing", scope)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = refl.Eval("mod.missing", scope)
	assert.ErrorIs(t, err, ErrNoAttr)

	// A failed attribute step is not a missing root name.
	_, err = refl.Eval("mod.missing", scope)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMapReflectorParams(t *testing.T) {
	refl := MapReflector{}

	fn := NewFunction("f", "", Param{Symbol: "a"}, Param{Symbol: "b", HasDefault: true, Default: "1"})
	params, err := refl.Params(fn)
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "a", params[0].Symbol)
	assert.True(t, params[1].HasDefault)

	// Builtins carry no structured metadata.
	_, err = refl.Params(NewBuiltin("print", "print(...)"))
	assert.ErrorIs(t, err, ErrNotIntrospectable)

	// Zero parameters is distinct from not introspectable.
	params, err = refl.Params(NewFunction("thunk", ""))
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestMapReflectorMetadata(t *testing.T) {
	refl := MapReflector{}
	obj := NewClass("Foo", "A class.", Param{Symbol: "self"}, Param{Symbol: "x"})
	assert.Equal(t, "Foo", refl.Name(obj))
	assert.Equal(t, ClassType, refl.ClassName(obj))
	assert.Equal(t, "A class.", refl.Doc(obj))
	assert.Empty(t, refl.Members(obj))
}

func TestEvalNestedScopeValue(t *testing.T) {
	refl := MapReflector{}

	inner := NewScope()
	inner.Bind("k", NewInstance("k", "int", ""))
	scope := NewScope()
	scope.BindScope("cfg", inner)

	// A nested scope evaluates to an opaque dict instance; its keys are
	// not attributes.
	obj, err := refl.Eval("cfg", scope)
	require.NoError(t, err)
	assert.Equal(t, ClassDict, refl.ClassName(obj))

	_, err = refl.Eval("cfg.k", scope)
	assert.ErrorIs(t, err, ErrNoAttr)
}
