package foundry

// Location pins an entity to a specific row of a specific archetype.
type Location struct {
	Archetype EntityTypeIndex
	Row       ComponentIndex
}

// locationMap is the World's entity -> Location index. Every live entity
// has exactly one entry; removing the entry is how an entity stops being
// live from the World's perspective.
type locationMap struct {
	locations map[Entity]Location
}

func newLocationMap() *locationMap {
	return &locationMap{locations: map[Entity]Location{}}
}

func (m *locationMap) Len() int {
	return len(m.locations)
}

func (m *locationMap) IsEmpty() bool {
	return len(m.locations) == 0
}

func (m *locationMap) Contains(e Entity) bool {
	_, ok := m.locations[e]
	return ok
}

func (m *locationMap) Get(e Entity) (Location, bool) {
	loc, ok := m.locations[e]
	return loc, ok
}

func (m *locationMap) Set(e Entity, loc Location) {
	m.locations[e] = loc
}

func (m *locationMap) Remove(e Entity) {
	delete(m.locations, e)
}

// Insert records contiguous rows starting at baseRow for entities, all in
// archetype. Any entity that already had a location recorded is
// overwritten, and that prior Location is returned in the result, in the
// order its entity was encountered, so the caller can reclaim the row it
// vacated in its former archetype.
func (m *locationMap) Insert(entities []Entity, archetype EntityTypeIndex, baseRow ComponentIndex) []Location {
	var displaced []Location
	for i, e := range entities {
		if old, ok := m.locations[e]; ok {
			displaced = append(displaced, old)
		}
		m.locations[e] = Location{Archetype: archetype, Row: baseRow + ComponentIndex(i)}
	}
	return displaced
}

// Keys returns every live entity. Order is unspecified.
func (m *locationMap) Keys() []Entity {
	keys := make([]Entity, 0, len(m.locations))
	for e := range m.locations {
		keys = append(keys, e)
	}
	return keys
}
