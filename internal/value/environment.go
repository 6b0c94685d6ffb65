package value

// Environment is a persistent mapping from renamed names to lazy Thunks
// (spec.md §3). Because the renamer guarantees every binding occurrence is
// globally unique, the environment needs no scope-chain lookup: a bare map
// lookup always resolves correctly, and a closure captures its defining
// environment by a cheap reference to an immutable map header.
//
// Extension is functional: Extend/ExtendAll return a new Environment whose
// underlying map is a fresh clone with the new bindings layered on top. The
// receiver is left untouched, so any thunk or closure that already holds a
// reference to it keeps seeing exactly the bindings it captured
// (spec.md §3 Invariant 4).
type Environment struct {
	bindings map[string]*Thunk
}

// Empty returns the environment with no bindings.
func Empty() *Environment {
	return &Environment{bindings: map[string]*Thunk{}}
}

// Get looks up name, returning (thunk, true) if bound.
func (e *Environment) Get(name string) (*Thunk, bool) {
	t, ok := e.bindings[name]

	return t, ok
}

// Extend returns a new Environment with name bound to t, leaving e
// unmodified.
func (e *Environment) Extend(name string, t *Thunk) *Environment {
	return e.ExtendAll(map[string]*Thunk{name: t})
}

// ExtendAll returns a new Environment with every binding in extra layered
// on top of e's, leaving e unmodified.
func (e *Environment) ExtendAll(extra map[string]*Thunk) *Environment {
	next := make(map[string]*Thunk, len(e.bindings)+len(extra))

	for k, v := range e.bindings {
		next[k] = v
	}

	for k, v := range extra {
		next[k] = v
	}

	return &Environment{bindings: next}
}

// Names returns the bound names, for diagnostics/printing only.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for k := range e.bindings {
		names = append(names, k)
	}

	return names
}
