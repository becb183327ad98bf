// Copyright © 2025 The lpyac authors

package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lispython/lpyac/host"
)

var refl = host.MapReflector{}

func TestDocsStructuredSignature(t *testing.T) {
	fn := host.NewFunction("greet", "Say hello.\nLonger explanation\nacross lines.",
		host.Param{Symbol: "name"},
		host.Param{Symbol: "greeting", HasDefault: true, Default: "'hi'"},
	)
	in := New(refl, fn)
	assert.Equal(t, "greet: (name &optional [greeting 'hi']) - Say hello.", in.Docs())
}

func TestDocsStructuredNoDocstring(t *testing.T) {
	fn := host.NewFunction("noop", "")
	in := New(refl, fn)
	// No docstring means no delimiter and no trailing text.
	assert.Equal(t, "noop: ()", in.Docs())
}

func TestDocsLegacyFallback(t *testing.T) {
	b := host.NewBuiltin("len", "len(obj, /)\n\nReturn the number of items.")
	in := New(refl, b)
	assert.Equal(t, "len: (obj /)", in.Docs())
}

func TestDocsLegacyFallbackPlainText(t *testing.T) {
	b := host.NewBuiltin("thing", "No signature here.")
	in := New(refl, b)
	assert.Equal(t, "No signature here.", in.Docs())
}

func TestDocsClassStripsSelf(t *testing.T) {
	cls := host.NewClass("Foo", "A class.",
		host.Param{Symbol: "self"},
		host.Param{Symbol: "x"},
		host.Param{Symbol: "y"},
	)
	in := New(refl, cls)
	assert.Equal(t, "Foo: (x y) - A class.", in.Docs())
}

func TestDocsMethodWrapper(t *testing.T) {
	w := host.NewMethodWrapper("__str__", "Return str(self).")
	in := New(refl, w)
	got := in.Docs()
	assert.True(t, len(got) > 0)
	assert.Contains(t, got, "method-wrapper:")
	assert.NotContains(t, got, "self")
}

func TestDocsCompileTable(t *testing.T) {
	tbl := host.NewInstance("table", "tuple", "Built-in immutable sequence.\n\nDetails.")
	in := New(refl, tbl)
	assert.Equal(t, "Compile table", in.Docs())
	assert.Equal(t, "", in.FullDocs())
}

func TestFullDocs(t *testing.T) {
	fn := host.NewFunction("greet", "Say hello.\n\nLonger explanation.",
		host.Param{Symbol: "name"},
	)
	in := New(refl, fn)
	full := in.FullDocs()
	require.Contains(t, full, "greet: (name) - Say hello.")
	assert.Contains(t, full, "\n\n\nLonger explanation.")
}

func TestFullDocsSingleLine(t *testing.T) {
	fn := host.NewFunction("f", "One line only.", host.Param{Symbol: "x"})
	in := New(refl, fn)
	assert.Equal(t, in.Docs(), in.FullDocs())
}

func TestObjNameUnmangled(t *testing.T) {
	fn := host.NewFunction("my_func", "", host.Param{Symbol: "x"})
	in := New(refl, fn)
	assert.Equal(t, "my-func", in.ObjName())
	assert.Equal(t, "my-func: (x)", in.Docs())
}
