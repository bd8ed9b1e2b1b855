/*
Package foundry provides an archetype-based Entity-Component-System core.

foundry groups entities by the exact set of component types they carry:
each such set is an archetype, backed by packed, densely stored columns
(one per component type) so that iterating an archetype's entities never
touches memory for a component they don't have.

Core Concepts:

  - Entity: an opaque id identifying one row across exactly one archetype.
  - Component: any Go type registered via FactoryNewComponent or used
    through a ComponentSource.
  - EntityType: an archetype - entities sharing one fixed component layout.
  - ComponentSource: the capability a caller implements to describe and
    push a batch of entities sharing one layout.

Basic Usage:

	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	world := foundry.NewWorld()

	e := foundry.Push2(world, Position{X: 1}, Velocity{X: 2})

	if foundry.HasComponent[Velocity](world, e) {
		// ...
	}

	world.Remove(e)

foundry performs no internal locking: callers hold exclusive access to a
World for the duration of any Push, Extend, Remove, or Clear call, the
same discipline a caller would apply to any slice it mutates directly.
*/
package foundry
