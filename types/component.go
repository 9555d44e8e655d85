package types

// ComponentID is the small integer a component manager assigns to a
// component type. IDs index bits of a Mask, so they live in
// [0, MaxComponentTypes).
type ComponentID int

// MaxComponentTypes is the ceiling on distinct component types per manager,
// fixed by the width of Mask.
const MaxComponentTypes = 64

// Component is optionally implemented by component types to override the
// display name used in logs, queries and state snapshots. Types that do not
// implement it are named after their Go type.
type Component interface {
	// Name returns the name of the component.
	Name() string
}
