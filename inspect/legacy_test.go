// Copyright © 2025 The lpyac authors

package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLegacyDocBasic(t *testing.T) {
	got := ParseLegacyDoc("func(a, b=1) - desc")
	assert.Equal(t, "func: (a &optional [b 1]) - desc", got)
}

func TestParseLegacyDocNoneDefaultCollapses(t *testing.T) {
	got := ParseLegacyDoc("func(a, b=None) - desc")
	assert.Contains(t, got, "func: (")
	assert.Contains(t, got, "&optional")
	assert.True(t, strings.HasSuffix(got, "- desc"))
	// b renders bare, with no bracketed default.
	assert.Contains(t, got, " b)")
	assert.NotContains(t, got, "[b")
}

func TestParseLegacyDocNoParens(t *testing.T) {
	// Text without a paren pair is not a signature-bearing doc.
	assert.Equal(t, "just a description", ParseLegacyDoc("just a description"))
	assert.Equal(t, "open(only", ParseLegacyDoc("open(only"))
	assert.Equal(t, "close)only", ParseLegacyDoc("close)only"))
	assert.Equal(t, "", ParseLegacyDoc(""))
}

func TestParseLegacyDocSubstitutions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chain(*iterables) --> chain object", "chain: (*iterables) - return chain object"},
		{"f(a, ...)", "f: (a * args)"},
		{"f(*args)", "f: (* args)"},
		{"f(**kwargs)", "f: (** kwargs)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLegacyDoc(tt.in), "ParseLegacyDoc(%q)", tt.in)
	}
}

func TestParseLegacyDocNewline(t *testing.T) {
	got := ParseLegacyDoc("f(a)\nmore")
	assert.Equal(t, "f: (a)newlinemore", got)
}

func TestParseLegacyDocOptionalInsertion(t *testing.T) {
	// The &optional token lands immediately before the first defaulted
	// argument and passes through as a bare symbol.
	got := ParseLegacyDoc("f(a, b, c=1, d=2)")
	assert.Equal(t, "f: (a b &optional [c 1] [d 2])", got)
}

func TestParseLegacyDocOnlyFirstParens(t *testing.T) {
	// Only the first "(" and first ")" delimit the argument list.
	got := ParseLegacyDoc("f(a) makes (b)")
	assert.Equal(t, "f: (a) makes (b)", got)
}

func TestParseLegacyDocUnmanglesArgs(t *testing.T) {
	got := ParseLegacyDoc("f(my_arg, other_arg=3)")
	assert.Equal(t, "f: (my-arg &optional [other-arg 3])", got)
}
