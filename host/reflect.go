// Copyright © 2025 The lpyac authors

package host

import "strings"

// MapReflector implements Reflector over the in-memory object model.
// It is the reflection port used by the bundled CLI and by tests; an
// embedder sitting on a live runtime supplies its own Reflector.
type MapReflector struct{}

var _ Reflector = MapReflector{}

// Eval resolves a dotted host-form expression by walking member
// tables. Only attribute-chain lookup is supported; there is no
// general expression evaluation.
func (MapReflector) Eval(expr string, scope *Scope) (*Object, error) {
	parts := strings.Split(expr, ".")
	v, ok := scope.Get(parts[0])
	if !ok {
		return nil, ErrNotFound
	}
	obj := objectify(parts[0], v)
	for _, attr := range parts[1:] {
		next := obj.Get(attr)
		if next == nil {
			return nil, ErrNoAttr
		}
		obj = next
	}
	return obj, nil
}

// objectify adapts a raw scope binding to an Object. Nested scopes
// evaluate to an opaque dict instance; their keys are names, not
// attributes, so the instance exposes no members.
func objectify(name string, v any) *Object {
	if obj, ok := v.(*Object); ok {
		return obj
	}
	return NewInstance(name, ClassDict, "")
}

// Members lists member names in declaration order.
func (MapReflector) Members(obj *Object) []string {
	return obj.MemberNames()
}

// Params returns recorded parameter metadata.
func (MapReflector) Params(obj *Object) ([]Param, error) {
	if !obj.hasParams {
		return nil, ErrNotIntrospectable
	}
	params := make([]Param, len(obj.params))
	copy(params, obj.params)
	return params, nil
}

func (MapReflector) Doc(obj *Object) string       { return obj.doc }
func (MapReflector) ClassName(obj *Object) string { return obj.class }
func (MapReflector) Name(obj *Object) string      { return obj.name }
