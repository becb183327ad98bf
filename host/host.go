// Copyright © 2025 The lpyac authors

// Package host defines the reflection capability the completion core
// consumes from the lispython runtime, along with a self-contained
// in-memory object model implementing it. The core never evaluates
// arbitrary expressions; evaluation is restricted to dotted
// attribute-chain lookup over explicit scopes.
package host

import "errors"

var (
	// ErrNotFound indicates the root name of an expression is not bound
	// in the scope. Callers retry against subsequent scopes.
	ErrNotFound = errors.New("host: name not found")

	// ErrNoAttr indicates an attribute lookup failed partway through a
	// dotted expression. Unlike ErrNotFound this is terminal; retrying
	// in another scope would not bind the attribute.
	ErrNoAttr = errors.New("host: no such attribute")

	// ErrNotIntrospectable indicates a value carries no parameter
	// metadata. Distinct from a callable with zero parameters.
	ErrNotIntrospectable = errors.New("host: not introspectable")
)

// ParamKind classifies a callable parameter.
type ParamKind int

const (
	ParamPositional ParamKind = iota
	ParamVarArgs
	ParamKeyOnly
	ParamVarKw
)

func (k ParamKind) String() string {
	switch k {
	case ParamPositional:
		return "positional"
	case ParamVarArgs:
		return "varargs"
	case ParamKeyOnly:
		return "keyword-only"
	case ParamVarKw:
		return "varkw"
	default:
		return "unknown"
	}
}

// Param describes a single parameter in a callable's metadata. Symbol
// is in host form; Default is the host's canonical literal text for
// the default value and is meaningful only when HasDefault is set.
type Param struct {
	Symbol     string
	Kind       ParamKind
	HasDefault bool
	Default    string
}

// NoneLiteral is the host's "no value" literal text.
const NoneLiteral = "None"

// Reflector is the reflection port. Implementations query the host
// runtime; the bundled MapReflector walks the in-memory object model.
type Reflector interface {
	// Eval resolves a dotted host-form expression against a single
	// scope. A missing root name yields ErrNotFound, a failed
	// attribute step yields ErrNoAttr.
	Eval(expr string, scope *Scope) (*Object, error)

	// Members lists the named members of a value in declaration order.
	Members(obj *Object) []string

	// Params returns a callable's parameter metadata, or
	// ErrNotIntrospectable when none is recorded.
	Params(obj *Object) ([]Param, error)

	// Doc returns the value's docstring, empty when absent.
	Doc(obj *Object) string

	// ClassName returns the name of the value's runtime class.
	ClassName(obj *Object) string

	// Name returns the value's own name (a function or class name, a
	// module name). Empty for anonymous values.
	Name(obj *Object) string
}
