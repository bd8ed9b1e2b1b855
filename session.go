package foundry

// writeSession tracks, for one bulk insertion, which component storages a
// ComponentSource has claimed so far. A type may be claimed at most once
// per session: a second claim signals two disjoint writers would alias
// the same backing array, which this package's no-internal-locking
// contract relies on the caller never doing. claimed is the session's
// only bookkeeping; nothing else needs to shadow it.
type writeSession struct {
	components map[ComponentTypeIndex]OpaqueStorage
	claimed    map[ComponentTypeIndex]struct{}
}

func newWriteSession(components map[ComponentTypeIndex]OpaqueStorage) *writeSession {
	return &writeSession{
		components: components,
		claimed:    map[ComponentTypeIndex]struct{}{},
	}
}

func (s *writeSession) claim(t ComponentTypeIndex) OpaqueStorage {
	if _, ok := s.claimed[t]; ok {
		panicf("component type %d already claimed in this write session", t.id)
	}
	storage, ok := s.components[t]
	if !ok {
		panicErr(ComponentNotRegisteredError{Type: t})
	}
	s.claimed[t] = struct{}{}
	return storage
}

// EntityTypeWriter drives one bulk insertion into a single archetype: a
// ComponentSource pushes entity ids through it, then claims a
// ComponentWriter per component type to append matching values.
type EntityTypeWriter struct {
	archetype    *EntityType
	session      *writeSession
	initialCount int
	pushed       int
}

func newEntityTypeWriter(archetype *EntityType, session *writeSession) *EntityTypeWriter {
	return &EntityTypeWriter{
		archetype:    archetype,
		session:      session,
		initialCount: archetype.Len(),
	}
}

// Push appends e as a new row of the archetype being written and returns
// its row index.
func (w *EntityTypeWriter) Push(e Entity) ComponentIndex {
	row := w.archetype.push(e)
	w.pushed++
	return row
}

// validate asserts every claimed component storage wrote exactly as many
// values as entities were pushed, catching a ComponentSource that pushed
// entities without appending a matching value for every claimed type.
func (w *EntityTypeWriter) validate() {
	want := w.initialCount + w.pushed
	for t := range w.session.claimed {
		got := w.session.components[t].Len(w.archetype.id)
		if got != want {
			panicf(
				"component type %d holds %d rows for archetype %d, want %d",
				t.id, got, w.archetype.id, want,
			)
		}
	}
}

// Inserted validates the session and returns the row at which this
// session's entities begin, along with the entities themselves in row
// order.
func (w *EntityTypeWriter) Inserted() (ComponentIndex, []Entity) {
	w.validate()
	start := w.initialCount
	return ComponentIndex(start), w.archetype.entities[start:]
}

// ComponentWriter appends values of type T to the archetype an
// EntityTypeWriter is building. It keeps no count of its own;
// EntityTypeWriter.validate catches a mismatched push count by reading the
// length of T's column.
type ComponentWriter[T any] struct {
	storage   *TypedStorage[T]
	archetype EntityTypeIndex
	writer    *EntityTypeWriter
}

// Append writes values onto the archetype's T column, in order.
func (c ComponentWriter[T]) Append(values ...T) {
	c.storage.Append(c.archetype, values...)
}

// ClaimComponents claims exclusive write access to T's storage for the
// archetype w is building. Panics if T is not part of the archetype's
// layout, or if T was already claimed in this write session.
func ClaimComponents[T any](w *EntityTypeWriter) ComponentWriter[T] {
	t := componentTypeIndexOf[T]()
	if !w.archetype.containsComponent(t) {
		panicf("component type %d is not part of archetype %d's layout", t.id, w.archetype.id)
	}
	opaque := w.session.claim(t)
	storage, ok := opaque.(*TypedStorage[T])
	if !ok {
		panicf("component type %d: storage is not a TypedStorage of the expected type", t.id)
	}
	return ComponentWriter[T]{storage: storage, archetype: w.archetype.id, writer: w}
}
