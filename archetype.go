package foundry

import "github.com/TheBitDrifter/mask"

// EntityTypeIndex identifies one archetype within a World. Archetypes are
// registered eagerly and never reordered, so an index remains valid for
// the life of the World that issued it.
type EntityTypeIndex uint32

// ComponentIndex is a row offset within an archetype's packed columns.
type ComponentIndex int

// storageConstructor builds an empty, type-erased column for one
// component type. A Layout carries one constructor per component type so
// World can lazily create the backing TypedStorage the first time that
// type is seen.
type storageConstructor func() OpaqueStorage

// Layout describes the fixed set of component types an archetype carries
// and how to construct storage for each.
type Layout struct {
	types        []ComponentTypeIndex
	constructors []storageConstructor
	signature    mask.Mask
}

// NewLayout builds a Layout from parallel slices of component types and
// their storage constructors.
func NewLayout(types []ComponentTypeIndex, constructors []storageConstructor) *Layout {
	var sig mask.Mask
	for _, t := range types {
		sig.Mark(t.id)
	}
	return &Layout{
		types:        types,
		constructors: constructors,
		signature:    sig,
	}
}

// ContainsComponent reports whether t is part of this layout.
func (l *Layout) ContainsComponent(t ComponentTypeIndex) bool {
	for _, ct := range l.types {
		if ct == t {
			return true
		}
	}
	return false
}

// EntityType is one archetype: a fixed component layout plus the ordered
// list of entities currently occupying its rows. Row i of every component
// column belongs to entities[i].
type EntityType struct {
	id       EntityTypeIndex
	layout   *Layout
	entities []Entity
}

// ID returns this archetype's index within its World.
func (a *EntityType) ID() EntityTypeIndex {
	return a.id
}

// Layout returns the archetype's component layout.
func (a *EntityType) Layout() *Layout {
	return a.layout
}

// Len returns the number of entities currently in this archetype.
func (a *EntityType) Len() int {
	return len(a.entities)
}

// Entities returns the archetype's entities in row order. The slice is
// owned by the archetype; callers must not retain it across a push or
// remove.
func (a *EntityType) Entities() []Entity {
	return a.entities
}

func (a *EntityType) push(e Entity) ComponentIndex {
	row := ComponentIndex(len(a.entities))
	a.entities = append(a.entities, e)
	return row
}

// swapRemove removes the entity at row, moving the archetype's last
// entity into its place, and returns the entity that was removed.
func (a *EntityType) swapRemove(row ComponentIndex) Entity {
	if int(row) < 0 || int(row) >= len(a.entities) {
		panicf("archetype %d: swap_remove row %d out of range (len %d)", a.id, row, len(a.entities))
	}
	removed := a.entities[row]
	last := len(a.entities) - 1
	a.entities[row] = a.entities[last]
	a.entities = a.entities[:last]
	return removed
}

func (a *EntityType) contains(row ComponentIndex) bool {
	return int(row) >= 0 && int(row) < len(a.entities)
}

func (a *EntityType) containsComponent(t ComponentTypeIndex) bool {
	return a.layout.ContainsComponent(t)
}

// LayoutFilter tests whether an archetype's signature matches what a
// ComponentSource needs. The default filter built by NewLayoutFilter
// implements the order-insensitive, multiplicity-one equality rule: two
// layouts match exactly when they carry the same set of component types.
type LayoutFilter func(signature mask.Mask) bool

// NewLayoutFilter builds the default equality filter for layout.
func NewLayoutFilter(layout *Layout) LayoutFilter {
	want := layout.signature
	return func(signature mask.Mask) bool {
		return signature == want
	}
}
