// Copyright © 2025 The lpyac authors

package host

// Class names reported by the host runtime for the common object
// kinds. Annotation logic maps these onto user-facing tags.
const (
	ClassFunction = "function"
	ClassBuiltin  = "builtin_function_or_method"
	ClassType     = "type"
	ClassModule   = "module"
	ClassWrapper  = "method-wrapper"
	ClassDict     = "dict"
)

// Object is an in-memory host value: a function, class, module, or
// instance with an ordered member table and optional callable
// metadata. Member insertion order is preserved so completion output
// follows declaration order.
type Object struct {
	name      string
	class     string
	doc       string
	order     []string
	members   map[string]*Object
	params    []Param
	hasParams bool
}

func newObject(name, class, doc string) *Object {
	return &Object{
		name:    name,
		class:   class,
		doc:     doc,
		members: make(map[string]*Object),
	}
}

// NewFunction constructs a callable with parameter metadata.
func NewFunction(name, doc string, params ...Param) *Object {
	obj := newObject(name, ClassFunction, doc)
	obj.params = params
	obj.hasParams = true
	return obj
}

// NewBuiltin constructs a builtin callable. Builtins carry no
// structured parameter metadata; their signature lives in the first
// docstring line, as with the host runtime's native builtins.
func NewBuiltin(name, doc string) *Object {
	return newObject(name, ClassBuiltin, doc)
}

// NewClass constructs a class object. The params describe the
// constructor and include the self slot when the host reports one.
func NewClass(name, doc string, params ...Param) *Object {
	obj := newObject(name, ClassType, doc)
	obj.params = params
	obj.hasParams = true
	return obj
}

// NewModule constructs a module object.
func NewModule(name, doc string) *Object {
	return newObject(name, ClassModule, doc)
}

// NewInstance constructs a plain instance of the named class.
func NewInstance(name, class, doc string) *Object {
	return newObject(name, class, doc)
}

// NewMethodWrapper constructs a bound slot-wrapper method, the kind
// the host runtime reports for things like print.__str__.
func NewMethodWrapper(name, doc string, params ...Param) *Object {
	obj := newObject(name, ClassWrapper, doc)
	obj.params = params
	obj.hasParams = true
	return obj
}

// Set binds a member, appending to the declaration order on first
// insertion. Rebinding an existing member keeps its original position.
func (o *Object) Set(name string, member *Object) *Object {
	if _, ok := o.members[name]; !ok {
		o.order = append(o.order, name)
	}
	o.members[name] = member
	return o
}

// Get returns the named member, or nil.
func (o *Object) Get(name string) *Object {
	return o.members[name]
}

// MemberNames returns member names in declaration order.
func (o *Object) MemberNames() []string {
	names := make([]string, len(o.order))
	copy(names, o.order)
	return names
}

func (o *Object) Name() string      { return o.name }
func (o *Object) ClassName() string { return o.class }
func (o *Object) Doc() string       { return o.doc }

// Scope is an ordered name→value table. Values are host Objects or
// nested Scopes (the host's module-level dicts may nest arbitrarily).
type Scope struct {
	order []string
	vals  map[string]any
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{vals: make(map[string]any)}
}

// Bind adds an object binding, preserving first-insertion order.
func (s *Scope) Bind(name string, obj *Object) *Scope {
	return s.bind(name, obj)
}

// BindScope adds a nested scope binding.
func (s *Scope) BindScope(name string, nested *Scope) *Scope {
	return s.bind(name, nested)
}

func (s *Scope) bind(name string, v any) *Scope {
	if _, ok := s.vals[name]; !ok {
		s.order = append(s.order, name)
	}
	s.vals[name] = v
	return s
}

// Get returns the raw binding for name.
func (s *Scope) Get(name string) (any, bool) {
	v, ok := s.vals[name]
	return v, ok
}

// Names returns the bound names in insertion order. Nested scopes
// contribute their own name here, not their contents; AllKeys
// flattens.
func (s *Scope) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// AllKeys returns every terminal key in the scope, descending
// depth-first into nested scopes and collecting only the innermost
// key of each nested path.
func (s *Scope) AllKeys() []string {
	var keys []string
	for _, name := range s.order {
		if nested, ok := s.vals[name].(*Scope); ok {
			keys = append(keys, nested.AllKeys()...)
			continue
		}
		keys = append(keys, name)
	}
	return keys
}
