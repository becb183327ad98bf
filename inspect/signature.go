// Copyright © 2025 The lpyac authors

// Package inspect renders callable signatures and documentation in
// lispy form. Structured parameter metadata from the reflection port
// is preferred; when a value is not introspectable, a semi-structured
// docstring fragment can be parsed instead.
package inspect

import (
	"strings"

	"github.com/lispython/lpyac/host"
	"github.com/lispython/lpyac/symbol"
)

// Parameter is a single rendered parameter: a surface-form symbol with
// an optional default text. Without a default it renders bare; with
// one it renders as "[symbol default]".
type Parameter struct {
	symbol     string
	def        string
	hasDefault bool
}

// NewParameter constructs a parameter without a default. The symbol is
// translated to surface form.
func NewParameter(sym string) Parameter {
	return Parameter{symbol: symbol.Unmangle(sym)}
}

// NewParameterDefault constructs a parameter with the given default
// text, kept verbatim.
func NewParameterDefault(sym, def string) Parameter {
	return Parameter{symbol: symbol.Unmangle(sym), def: def, hasDefault: true}
}

func (p Parameter) String() string {
	if !p.hasDefault {
		return p.symbol
	}
	return "[" + p.symbol + " " + p.def + "]"
}

// Signature classifies a callable's parameters into the five lispy
// buckets. Rendering concatenates the buckets in fixed order, each
// non-empty bucket prefixed by its marker token.
type Signature struct {
	args     []Parameter // positional, no default
	defaults []Parameter // positional with default
	varargs  []Parameter // at most one
	varkw    []Parameter // at most one
	kwonly   []Parameter // no-default entries first
}

// NewSignature builds a Signature from the reflection port's parameter
// metadata. A value without metadata yields host.ErrNotIntrospectable;
// a callable with zero parameters yields a Signature rendering as "".
func NewSignature(refl host.Reflector, obj *host.Object) (*Signature, error) {
	params, err := refl.Params(obj)
	if err != nil {
		return nil, err
	}

	sig := &Signature{}
	var kwNoDefault, kwDefault []Parameter
	for _, p := range params {
		switch p.Kind {
		case host.ParamVarArgs:
			sig.varargs = append(sig.varargs, NewParameter(p.Symbol))
		case host.ParamVarKw:
			sig.varkw = append(sig.varkw, NewParameter(p.Symbol))
		case host.ParamKeyOnly:
			if p.HasDefault {
				kwDefault = append(kwDefault, NewParameterDefault(p.Symbol, p.Default))
			} else {
				kwNoDefault = append(kwNoDefault, NewParameter(p.Symbol))
			}
		default:
			if p.HasDefault {
				sig.defaults = append(sig.defaults, NewParameterDefault(p.Symbol, p.Default))
			} else {
				sig.args = append(sig.args, NewParameter(p.Symbol))
			}
		}
	}
	sig.kwonly = append(kwNoDefault, kwDefault...)
	return sig, nil
}

// formatBucket renders one bucket, prefixing the marker when present.
func formatBucket(params []Parameter, marker string) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	joined := strings.Join(parts, " ")
	if marker == "" {
		return joined
	}
	return marker + " " + joined
}

func (s *Signature) String() string {
	buckets := []struct {
		params []Parameter
		marker string
	}{
		{s.args, ""},
		{s.defaults, "&optional"},
		{s.varargs, "*"},
		{s.varkw, "**"},
		{s.kwonly, "&kwonly"},
	}
	var sb strings.Builder
	for _, b := range buckets {
		formatted := formatBucket(b.params, b.marker)
		if formatted == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(formatted)
	}
	return sb.String()
}
