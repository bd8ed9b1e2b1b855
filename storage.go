package foundry

import "unsafe"

// packedArray is a growable, densely-packed slice for a single archetype's
// column of one component type. It never leaves gaps: removal is always
// swap-remove.
type packedArray[T any] struct {
	data []T
}

func (p *packedArray[T]) len() int {
	return len(p.data)
}

func (p *packedArray[T]) append(values ...T) {
	p.data = append(p.data, values...)
}

// swapRemove removes the value at row, moving the last value into its
// place, and returns the removed value. Panics if row is out of range.
func (p *packedArray[T]) swapRemove(row int) T {
	if row < 0 || row >= len(p.data) {
		panicf("swap_remove: row %d out of range (len %d)", row, len(p.data))
	}
	removed := p.data[row]
	last := len(p.data) - 1
	p.data[row] = p.data[last]
	var zero T
	p.data[last] = zero
	p.data = p.data[:last]
	return removed
}

// rawView returns the current backing pointer and length. The pointer is
// valid only until the next mutation of p; zero-sized T yields a stable,
// shared, non-advancing address with Go's own slice semantics, so no
// special case is needed here.
func (p *packedArray[T]) rawView() (unsafe.Pointer, int) {
	if len(p.data) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&p.data[0]), len(p.data)
}

// storageView is a byte-level snapshot of a packedArray's backing store,
// kept in sync by TypedStorage whenever the underlying slice might have
// reallocated.
type storageView struct {
	ptr unsafe.Pointer
	len int
}

// OpaqueStorage is the type-erased façade every component column exposes
// to World and writeSession. Concrete callers recover the generic
// TypedStorage[T] via a checked type assertion when they know T.
type OpaqueStorage interface {
	Metadata() ComponentMetadata

	// InsertArchetype registers a new archetype with this storage, eagerly
	// allocating its column. Archetypes are identified by index and must be
	// registered before any row is appended for them.
	InsertArchetype(archetype EntityTypeIndex)

	// SwapRemoveDiscard removes row from archetype's column, invoking the
	// component's Drop thunk (if any) on the removed value instead of
	// preserving it.
	SwapRemoveDiscard(archetype EntityTypeIndex, row int)

	// GetRaw and GetRawMut return the byte-level view backing archetype's
	// whole column: a pointer to its first element and its length in
	// elements, read straight out of the shadow view kept by updateView.
	GetRaw(archetype EntityTypeIndex) (unsafe.Pointer, int)
	GetRawMut(archetype EntityTypeIndex) (unsafe.Pointer, int)

	// AppendRaw copies count components' worth of bytes from src onto the
	// end of archetype's column.
	AppendRaw(archetype EntityTypeIndex, src unsafe.Pointer, count int)

	// MoveWithin relocates row from source to destination archetype within
	// the same storage, used when an entity migrates between archetypes
	// that both carry this component type.
	MoveWithin(source, destination EntityTypeIndex, row int)

	// TransferTo moves row from this storage's source archetype into
	// other's destination archetype. Used only when other is a distinct
	// OpaqueStorage instance (never reached in this package, since every
	// TypedStorage instance owns every archetype's column for its type,
	// but kept for symmetry with TransferArchetype's buffer-swap path).
	TransferTo(other OpaqueStorage, source, destination EntityTypeIndex, row int)

	// TransferArchetype moves every row of source into destination,
	// swapping backing buffers when destination starts empty.
	TransferArchetype(source, destination EntityTypeIndex)

	// Len returns the number of rows currently stored for archetype.
	Len(archetype EntityTypeIndex) int
}

// TypedStorage holds every archetype's column for a single component type
// T, addressed by EntityTypeIndex. It is the only place a *[]T ever lives;
// everything above it deals in erased bytes.
type TypedStorage[T any] struct {
	meta    ComponentMetadata
	slotFor map[EntityTypeIndex]int
	arrays  []packedArray[T]
	views   []storageView
}

// newTypedStorage constructs an empty TypedStorage for T.
func newTypedStorage[T any]() *TypedStorage[T] {
	return &TypedStorage[T]{
		meta:    metadataOf[T](),
		slotFor: map[EntityTypeIndex]int{},
	}
}

// newTypedStorageOpaque returns a storageConstructor that builds a
// TypedStorage[T] and exposes it behind the OpaqueStorage interface. Used
// by Layout when wiring up a component type's column.
func newTypedStorageOpaque[T any]() OpaqueStorage {
	return newTypedStorage[T]()
}

func (s *TypedStorage[T]) slot(archetype EntityTypeIndex) int {
	i, ok := s.slotFor[archetype]
	if !ok {
		panicErr(ArchetypeMismatchError{Archetype: archetype})
	}
	return i
}

func (s *TypedStorage[T]) updateView(slot int) {
	ptr, n := s.arrays[slot].rawView()
	s.views[slot] = storageView{ptr: ptr, len: n}
}

func (s *TypedStorage[T]) Metadata() ComponentMetadata {
	return s.meta
}

func (s *TypedStorage[T]) Len(archetype EntityTypeIndex) int {
	return s.arrays[s.slot(archetype)].len()
}

func (s *TypedStorage[T]) InsertArchetype(archetype EntityTypeIndex) {
	if _, ok := s.slotFor[archetype]; ok {
		return
	}
	slot := len(s.arrays)
	s.slotFor[archetype] = slot
	s.arrays = append(s.arrays, packedArray[T]{})
	s.views = append(s.views, storageView{})
}

// Append adds values to archetype's column.
func (s *TypedStorage[T]) Append(archetype EntityTypeIndex, values ...T) {
	slot := s.slot(archetype)
	s.arrays[slot].append(values...)
	s.updateView(slot)
}

// SwapRemove removes row from archetype's column and returns the removed
// value so a caller may inspect or re-home it.
func (s *TypedStorage[T]) SwapRemove(archetype EntityTypeIndex, row int) T {
	slot := s.slot(archetype)
	v := s.arrays[slot].swapRemove(row)
	s.updateView(slot)
	return v
}

// SwapRemoveDiscard removes row, invoking the Drop thunk on the removed
// value if one is registered, then discards it.
func (s *TypedStorage[T]) SwapRemoveDiscard(archetype EntityTypeIndex, row int) {
	v := s.SwapRemove(archetype, row)
	if s.meta.Drop != nil {
		s.meta.Drop(unsafe.Pointer(&v))
	}
}

// GetRow returns a copy of the value at row.
func (s *TypedStorage[T]) GetRow(archetype EntityTypeIndex, row int) T {
	slot := s.slot(archetype)
	return s.arrays[slot].data[row]
}

// GetRowMut returns a pointer to the value at row for in-place mutation.
func (s *TypedStorage[T]) GetRowMut(archetype EntityTypeIndex, row int) *T {
	slot := s.slot(archetype)
	return &s.arrays[slot].data[row]
}

// Get returns the contiguous slice view of archetype's whole column,
// built from the shadow view updateView keeps in sync. The slice aliases
// the column's backing array; it is invalidated by the next Append,
// SwapRemove, or transfer against this archetype.
func (s *TypedStorage[T]) Get(archetype EntityTypeIndex) []T {
	v := s.views[s.slot(archetype)]
	if v.len == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.ptr), v.len)
}

// GetMut returns the same column view as Get, for in-place mutation of any
// row through the returned slice.
func (s *TypedStorage[T]) GetMut(archetype EntityTypeIndex) []T {
	return s.Get(archetype)
}

// GetRaw returns archetype's column as a byte-level pointer and a length
// in elements, read directly from the shadow view.
func (s *TypedStorage[T]) GetRaw(archetype EntityTypeIndex) (unsafe.Pointer, int) {
	v := s.views[s.slot(archetype)]
	return v.ptr, v.len
}

// GetRawMut is GetRaw; the view makes no mutable/immutable distinction,
// both name the same backing bytes.
func (s *TypedStorage[T]) GetRawMut(archetype EntityTypeIndex) (unsafe.Pointer, int) {
	return s.GetRaw(archetype)
}

// AppendRaw copies count T's worth of bytes from src onto archetype's
// column.
func (s *TypedStorage[T]) AppendRaw(archetype EntityTypeIndex, src unsafe.Pointer, count int) {
	if count == 0 {
		return
	}
	values := unsafe.Slice((*T)(src), count)
	s.Append(archetype, values...)
}

// MoveWithin relocates row from source to destination, preserving the
// value without invoking Drop.
func (s *TypedStorage[T]) MoveWithin(source, destination EntityTypeIndex, row int) {
	v := s.SwapRemove(source, row)
	s.Append(destination, v)
}

// TransferTo is unreachable in this package: every component type has
// exactly one TypedStorage instance shared by all archetypes. It exists
// so OpaqueStorage stays symmetric with a multi-storage embedding.
func (s *TypedStorage[T]) TransferTo(other OpaqueStorage, source, destination EntityTypeIndex, row int) {
	dst, ok := other.(*TypedStorage[T])
	if !ok {
		panicf("typed storage: TransferTo target holds a different component type")
	}
	v := s.SwapRemove(source, row)
	dst.Append(destination, v)
}

// TransferArchetype moves every remaining row of source into destination.
// When destination already has rows, the source rows are bulk-appended in
// one copy and the source column is emptied; when destination is empty, the two columns' backing arrays are
// swapped outright, avoiding a copy. This is the resolved behavior for the
// swap-vs-copy choice on bulk archetype migration.
func (s *TypedStorage[T]) TransferArchetype(source, destination EntityTypeIndex) {
	srcSlot := s.slot(source)
	dstSlot := s.slot(destination)

	if s.arrays[dstSlot].len() == 0 {
		s.arrays[srcSlot], s.arrays[dstSlot] = s.arrays[dstSlot], s.arrays[srcSlot]
	} else {
		s.arrays[dstSlot].append(s.arrays[srcSlot].data...)
		s.arrays[srcSlot].data = s.arrays[srcSlot].data[:0]
	}
	s.updateView(srcSlot)
	s.updateView(dstSlot)
}
