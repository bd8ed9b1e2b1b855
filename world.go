package foundry

// World owns every archetype, every component's storage, the entity
// allocator, and the entity -> location index. It performs no internal
// locking: callers are responsible for excluding concurrent access, the
// same way a single goroutine owns a slice it mutates.
type World struct {
	allocator  EntityAllocator
	archetypes []*EntityType
	components map[ComponentTypeIndex]OpaqueStorage
	locations  *locationMap
}

// NewWorld returns an empty World with no archetypes and no entities.
func NewWorld() *World {
	return &World{
		components: map[ComponentTypeIndex]OpaqueStorage{},
		locations:  newLocationMap(),
	}
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.locations.Len()
}

// IsEmpty reports whether the World holds any live entities.
func (w *World) IsEmpty() bool {
	return w.locations.IsEmpty()
}

// Contains reports whether e is a live entity in this World.
func (w *World) Contains(e Entity) bool {
	return w.locations.Contains(e)
}

// HasComponent reports whether e currently carries a component of type T.
func HasComponent[T any](w *World, e Entity) bool {
	loc, ok := w.locations.Get(e)
	if !ok {
		return false
	}
	t := componentTypeIndexOf[T]()
	return w.archetypes[loc.Archetype].containsComponent(t)
}

// ContainsComponentType reports whether any archetype in w carries a
// component of type T.
func ContainsComponentType[T any](w *World) bool {
	t := componentTypeIndexOf[T]()
	_, ok := w.components[t]
	return ok
}

// resolveArchetype finds the archetype matching source's layout by
// scanning every existing archetype's signature in order, calling
// source.Filter() against each in turn. It creates a new archetype only
// on a full miss; this is a literal linear scan, not a map lookup, so
// that ComponentSource.Filter() is always genuinely exercised.
func (w *World) resolveArchetype(source ComponentSource) *EntityType {
	filter := source.Filter()
	for _, a := range w.archetypes {
		if filter(a.layout.signature) {
			return a
		}
	}
	return w.createArchetype(source.Layout())
}

// resolveLayout finds or creates the archetype matching layout exactly,
// the same linear-scan-then-create path resolveArchetype uses, but keyed
// directly on a Layout rather than a ComponentSource. Used by AddComponent
// and RemoveComponent, which build a shifted Layout rather than routing
// through a ComponentSource.
func (w *World) resolveLayout(layout *Layout) *EntityType {
	filter := NewLayoutFilter(layout)
	for _, a := range w.archetypes {
		if filter(a.layout.signature) {
			return a
		}
	}
	return w.createArchetype(layout)
}

// createArchetype registers a brand new archetype for layout, eagerly
// inserting a column in every component storage it needs, creating the
// storage itself on first use.
func (w *World) createArchetype(layout *Layout) *EntityType {
	id := EntityTypeIndex(len(w.archetypes))
	a := &EntityType{id: id, layout: layout}
	w.archetypes = append(w.archetypes, a)

	for i, t := range layout.types {
		storage, ok := w.components[t]
		if !ok {
			storage = layout.constructors[i]()
			w.components[t] = storage
		}
		storage.InsertArchetype(id)
	}

	if Config.hooks.OnArchetypeCreated != nil {
		Config.hooks.OnArchetypeCreated(id, layout)
	}
	return a
}

// Push inserts the single entity produced by source and returns it. It is
// a convenience over Extend for sources that always describe exactly one
// entity.
func (w *World) Push(source ComponentSource) Entity {
	return w.Extend(source)[0]
}

// Extend resolves (or creates) the archetype matching source's layout,
// then lets source push one or more entities and their component values
// into a write session bound to that archetype. It returns the inserted
// entities in row order.
func (w *World) Extend(source ComponentSource) []Entity {
	archetype := w.resolveArchetype(source)
	session := newWriteSession(w.components)
	writer := newEntityTypeWriter(archetype, session)

	source.PushComponents(writer, EntityStream{allocator: &w.allocator})

	baseRow, entities := writer.Inserted()
	displaced := w.locations.Insert(entities, archetype.id, baseRow)
	for _, loc := range displaced {
		w.removeAtLocation(loc)
	}
	return entities
}

// Remove deletes e from the World, freeing its row via swap-remove and
// recycling its id. It reports whether e was present.
func (w *World) Remove(e Entity) bool {
	loc, ok := w.locations.Get(e)
	if !ok {
		return false
	}
	w.locations.Remove(e)
	w.removeAtLocation(loc)
	w.allocator.Deallocate(e)
	return true
}

// removeAtLocation swap-removes the row at loc from its archetype and
// every one of its component columns, then repairs the location entry of
// whichever entity was swapped into the freed row, if any.
func (w *World) removeAtLocation(loc Location) {
	arche := w.archetypes[loc.Archetype]
	arche.swapRemove(loc.Row)

	for _, t := range arche.layout.types {
		w.components[t].SwapRemoveDiscard(loc.Archetype, int(loc.Row))
	}

	if arche.contains(loc.Row) {
		swapped := arche.entities[loc.Row]
		w.locations.Set(swapped, loc)
	}
}

// migrate relocates e from old (at loc) to dest, moving every component
// type the two archetypes share via each storage's MoveWithin and
// dropping every type old carries that dest does not. It repairs the
// location of whichever entity gets swapped into the row e vacates, sets
// e's own location to its new row in dest, and returns that row. The
// caller is responsible for appending any component type dest carries
// that old did not.
func (w *World) migrate(e Entity, loc Location, old, dest *EntityType) ComponentIndex {
	old.swapRemove(loc.Row)

	for _, t := range old.layout.types {
		storage := w.components[t]
		if dest.containsComponent(t) {
			storage.MoveWithin(loc.Archetype, dest.id, int(loc.Row))
		} else {
			storage.SwapRemoveDiscard(loc.Archetype, int(loc.Row))
		}
	}

	if old.contains(loc.Row) {
		swapped := old.entities[loc.Row]
		w.locations.Set(swapped, loc)
	}

	newRow := dest.push(e)
	w.locations.Set(e, Location{Archetype: dest.id, Row: newRow})
	return newRow
}

// AddComponent attaches a T component to e, migrating it to the archetype
// carrying its current component set plus T. If e already carries a T,
// the value is overwritten in place and no migration happens. Reports
// whether e was present.
func AddComponent[T any](w *World, e Entity, value T) bool {
	loc, ok := w.locations.Get(e)
	if !ok {
		return false
	}
	old := w.archetypes[loc.Archetype]
	t := componentTypeIndexOf[T]()

	if old.containsComponent(t) {
		storage := w.components[t].(*TypedStorage[T])
		*storage.GetRowMut(loc.Archetype, int(loc.Row)) = value
		return true
	}

	newTypes := append(append([]ComponentTypeIndex{}, old.layout.types...), t)
	newConstructors := append(append([]storageConstructor{}, old.layout.constructors...), newTypedStorageOpaque[T])
	dest := w.resolveLayout(NewLayout(newTypes, newConstructors))

	w.migrate(e, loc, old, dest)
	storage := w.components[t].(*TypedStorage[T])
	storage.Append(dest.id, value)
	return true
}

// RemoveComponent detaches e's T component, migrating it to the
// archetype carrying its current component set minus T. Reports whether
// e carried a T to remove.
func RemoveComponent[T any](w *World, e Entity) bool {
	loc, ok := w.locations.Get(e)
	if !ok {
		return false
	}
	old := w.archetypes[loc.Archetype]
	t := componentTypeIndexOf[T]()
	if !old.containsComponent(t) {
		return false
	}

	newTypes := make([]ComponentTypeIndex, 0, len(old.layout.types)-1)
	newConstructors := make([]storageConstructor, 0, len(old.layout.constructors)-1)
	for i, ct := range old.layout.types {
		if ct == t {
			continue
		}
		newTypes = append(newTypes, ct)
		newConstructors = append(newConstructors, old.layout.constructors[i])
	}
	dest := w.resolveLayout(NewLayout(newTypes, newConstructors))

	w.migrate(e, loc, old, dest)
	return true
}

// Clear removes every entity from the World.
func (w *World) Clear() {
	for _, e := range w.locations.Keys() {
		w.Remove(e)
	}
}
