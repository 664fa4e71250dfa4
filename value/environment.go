package value

// binding is one (name, value) pair in an Environment's local scope.
type binding struct {
	name  string
	value *Value
}

// Environment is a symbol table with an optional parent link forming a
// lookup chain. Bindings are kept in an ordered slice: typical lumen
// environments are small, so linear scan is both simple and fast.
type Environment struct {
	bindings []binding
	parent   *Environment
}

// NewEnvironment creates an environment with the given parent (nil for
// a root environment).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent}
}

// Parent returns e's parent link, or nil at the root.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// SetParent installs p as e's parent. Used to temporarily reparent a
// lambda's captured environment onto the caller's environment for the
// duration of a call (spec §4.4, §9).
func (e *Environment) SetParent(p *Environment) {
	e.parent = p
}

// Get resolves name by scanning e's local bindings, then its parent
// chain. The first hit wins and its value is returned as an independent
// copy, so callers may freely mutate or discard it. An unresolved name
// yields an Error Value, not a Go error, matching spec §4.3.
func (e *Environment) Get(name string) *Value {
	for _, b := range e.bindings {
		if b.name == name {
			return b.value.Copy()
		}
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return NewError("Unbound Symbol '%s'", name)
}

// Put binds name to a copy of val in e's local scope, replacing any
// existing local binding in place.
func (e *Environment) Put(name string, val *Value) {
	for i, b := range e.bindings {
		if b.name == name {
			e.bindings[i].value = val.Copy()
			return
		}
	}
	e.bindings = append(e.bindings, binding{name: name, value: val.Copy()})
}

// Def walks to the top-most ancestor of e and binds name there,
// implementing the `def` builtin's global-definition semantics.
func (e *Environment) Def(name string, val *Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.Put(name, val)
}

// Copy returns a new Environment with e's parent link (shared, not
// duplicated) and deep copies of e's local bindings, matching the
// original lenv_copy used when a lambda Value is copied.
func (e *Environment) Copy() *Environment {
	n := &Environment{parent: e.parent, bindings: make([]binding, len(e.bindings))}
	for i, b := range e.bindings {
		n.bindings[i] = binding{name: b.name, value: b.value.Copy()}
	}
	return n
}
