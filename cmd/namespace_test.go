// Copyright © 2025 The lpyac authors

package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lispython/lpyac/host"
)

func TestLoadScope(t *testing.T) {
	const doc = `{
		"zeta": "hello",
		"alpha": 1.5,
		"mod": {"inner_fn": true, "other": null},
		"flags": [1, 2, 3]
	}`
	scope, err := loadScope(strings.NewReader(doc))
	require.NoError(t, err)

	// Document order, not lexical order.
	assert.Equal(t, []string{"zeta", "alpha", "mod", "flags"}, scope.Names())

	v, ok := scope.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, "str", v.(*host.Object).ClassName())

	v, ok = scope.Get("mod")
	require.True(t, ok)
	nested, ok := v.(*host.Scope)
	require.True(t, ok)
	assert.Equal(t, []string{"inner_fn", "other"}, nested.Names())

	v, ok = scope.Get("flags")
	require.True(t, ok)
	assert.Equal(t, "list", v.(*host.Object).ClassName())
}

func TestLoadScopeBadDocument(t *testing.T) {
	_, err := loadScope(strings.NewReader(`[1, 2]`))
	assert.Error(t, err)
	_, err = loadScope(strings.NewReader(`{"a": `))
	assert.Error(t, err)
}

func TestDemoGlobals(t *testing.T) {
	scope := demoGlobals()
	v, ok := scope.Get("print")
	require.True(t, ok)
	obj := v.(*host.Object)
	assert.Equal(t, host.ClassBuiltin, obj.ClassName())
	assert.Equal(t, []string{"__call__", "__class__", "__str__"}, obj.MemberNames())
}
