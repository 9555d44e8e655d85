package filter

import "reflect"

// Ref names a component type inside a filter without binding it to a bit
// position.
type Ref struct {
	typ reflect.Type
}

// Component returns a Ref for the component type T.
func Component[T any]() Ref {
	return Ref{typ: reflect.TypeFor[T]()}
}

// RefOf returns a Ref for a reflected component type. It is the dynamic
// counterpart of Component, used when types are resolved at runtime.
func RefOf(t reflect.Type) Ref {
	return Ref{typ: t}
}

// Type returns the Go type the Ref names.
func (r Ref) Type() reflect.Type {
	return r.typ
}
