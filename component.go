package mydi

import "reflect"

// Requirement is one typed input of a recipe, in factory consumption
// order. A deferred requirement receives a Lazy handle for the target key
// instead of the materialized value.
type Requirement struct {
	Key      TypeKey
	Deferred bool

	wrap   func(*lazyCell) any
	nested bool
}

// RequirementOf derives the requirement for a factory parameter of type D.
// A Lazy[X] parameter becomes a deferred requirement on X.
func RequirementOf[D any]() Requirement {
	return requirementForType(reflect.TypeOf((*D)(nil)).Elem())
}

// Deferred builds an explicitly deferred requirement on T for hand-written
// component entries; the factory slot receives a Lazy[T].
func Deferred[T any]() Requirement {
	var probe Lazy[T]
	return Requirement{
		Key:      KeyOf[T](),
		Deferred: true,
		wrap:     probe.wrapLazyCell,
		nested:   probe.lazyNested(),
	}
}

func requirementForType(t reflect.Type) Requirement {
	probe := reflect.Zero(t).Interface()
	if lm, ok := probe.(lazyMarker); ok {
		return Requirement{
			Key:      lm.lazyTarget(),
			Deferred: true,
			wrap:     lm.wrapLazyCell,
			nested:   lm.lazyNested(),
		}
	}
	return Requirement{Key: KeyFor(t)}
}

// ComponentEntry is the raw recipe form consumed by Binder.Register. The
// typed registration helpers assemble these internally; external recipe
// generators construct them directly. Deferred requirements built by hand
// (rather than via RequirementOf or Deferred) deliver a Lazy[any] handle.
type ComponentEntry struct {
	// Produced is the key this recipe satisfies.
	Produced TypeKey
	// Requires lists the factory inputs in consumption order.
	Requires []Requirement
	// Factory builds the value. Inputs arrive in Requires order, with
	// deferred slots holding Lazy handles.
	Factory func(deps []any) (any, error)
	// Origin is the registration site cited in error messages; Register
	// fills in the caller's file:line when empty.
	Origin string
}

// binderEntry is the stored registration: a recipe or a prebuilt instance.
type binderEntry struct {
	key      TypeKey
	requires []Requirement
	factory  func(deps []any) (any, error)
	instance any
	prebuilt bool
	origin   string
}
