package component

import (
	"reflect"

	"github.com/invopop/jsonschema"

	"pkg.world.dev/tabula/codec"
	"pkg.world.dev/tabula/types"
)

// Metadata describes one component type after a manager has assigned it a
// bit position.
type Metadata struct {
	id     types.ComponentID
	typ    reflect.Type
	name   string
	schema []byte
}

func newMetadata(id types.ComponentID, t reflect.Type) Metadata {
	m := Metadata{
		id:   id,
		typ:  t,
		name: displayName(t),
	}
	// Schema capture is best effort. Components are not required to be
	// serializable; a type jsonschema cannot describe only loses the schema
	// part of its diagnostics.
	if schema, err := jsonschema.ReflectFromType(t).MarshalJSON(); err == nil {
		m.schema = schema
	}
	return m
}

// ID returns the component's assigned bit position.
func (m Metadata) ID() types.ComponentID {
	return m.id
}

// Type returns the component's Go type.
func (m Metadata) Type() reflect.Type {
	return m.typ
}

// Name returns the component's display name.
func (m Metadata) Name() string {
	return m.name
}

// String returns the component's display name.
func (m Metadata) String() string {
	return m.name
}

// Schema returns the JSON schema captured for the component's type, or nil
// when the type could not be reflected.
func (m Metadata) Schema() []byte {
	return m.schema
}

// Encode marshals one value of the component's type to JSON.
func (m Metadata) Encode(v any) ([]byte, error) {
	return codec.Encode(v)
}

var namer = reflect.TypeOf((*types.Component)(nil)).Elem()

// displayName resolves the name a component type goes by: the Name method
// when the type implements types.Component, otherwise the Go type name.
func displayName(t reflect.Type) string {
	if t.Implements(namer) {
		return reflect.New(t).Elem().Interface().(types.Component).Name()
	}
	if pt := reflect.PointerTo(t); pt.Implements(namer) {
		return reflect.New(t).Interface().(types.Component).Name()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
