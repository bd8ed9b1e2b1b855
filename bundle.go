package foundry

// Tuple2 pairs two component values destined for the same entity.
type Tuple2[A, B any] struct {
	A A
	B B
}

// Tuple3 groups three component values destined for the same entity.
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple4 groups four component values destined for the same entity.
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

func layoutFor(types []ComponentTypeIndex, constructors []storageConstructor) *Layout {
	return NewLayout(types, constructors)
}

// Bundle1 is a ComponentSource pushing one component type per entity.
type Bundle1[A any] struct {
	values []A
	layout *Layout
}

// NewBundle1 builds a Bundle1 that will push one entity per value in
// values, each carrying that value as its A component.
func NewBundle1[A any](values ...A) *Bundle1[A] {
	return &Bundle1[A]{
		values: values,
		layout: layoutFor(
			[]ComponentTypeIndex{componentTypeIndexOf[A]()},
			[]storageConstructor{newTypedStorageOpaque[A]},
		),
	}
}

func (b *Bundle1[A]) Layout() *Layout      { return b.layout }
func (b *Bundle1[A]) Filter() LayoutFilter { return NewLayoutFilter(b.layout) }
func (b *Bundle1[A]) PushComponents(w *EntityTypeWriter, entities EntityStream) {
	a := ClaimComponents[A](w)
	for _, v := range b.values {
		w.Push(entities.Next())
		a.Append(v)
	}
}

// Bundle2 is a ComponentSource pushing two component types per entity.
type Bundle2[A, B any] struct {
	values []Tuple2[A, B]
	layout *Layout
}

// NewBundle2 builds a Bundle2 from a list of (A, B) pairs, one entity per
// pair.
func NewBundle2[A, B any](values ...Tuple2[A, B]) *Bundle2[A, B] {
	return &Bundle2[A, B]{
		values: values,
		layout: layoutFor(
			[]ComponentTypeIndex{componentTypeIndexOf[A](), componentTypeIndexOf[B]()},
			[]storageConstructor{newTypedStorageOpaque[A], newTypedStorageOpaque[B]},
		),
	}
}

func (b *Bundle2[A, B]) Layout() *Layout      { return b.layout }
func (b *Bundle2[A, B]) Filter() LayoutFilter { return NewLayoutFilter(b.layout) }
func (b *Bundle2[A, B]) PushComponents(w *EntityTypeWriter, entities EntityStream) {
	a := ClaimComponents[A](w)
	c := ClaimComponents[B](w)
	for _, v := range b.values {
		w.Push(entities.Next())
		a.Append(v.A)
		c.Append(v.B)
	}
}

// Bundle3 is a ComponentSource pushing three component types per entity.
type Bundle3[A, B, C any] struct {
	values []Tuple3[A, B, C]
	layout *Layout
}

// NewBundle3 builds a Bundle3 from a list of (A, B, C) triples, one
// entity per triple.
func NewBundle3[A, B, C any](values ...Tuple3[A, B, C]) *Bundle3[A, B, C] {
	return &Bundle3[A, B, C]{
		values: values,
		layout: layoutFor(
			[]ComponentTypeIndex{componentTypeIndexOf[A](), componentTypeIndexOf[B](), componentTypeIndexOf[C]()},
			[]storageConstructor{newTypedStorageOpaque[A], newTypedStorageOpaque[B], newTypedStorageOpaque[C]},
		),
	}
}

func (b *Bundle3[A, B, C]) Layout() *Layout      { return b.layout }
func (b *Bundle3[A, B, C]) Filter() LayoutFilter { return NewLayoutFilter(b.layout) }
func (b *Bundle3[A, B, C]) PushComponents(w *EntityTypeWriter, entities EntityStream) {
	a := ClaimComponents[A](w)
	c := ClaimComponents[B](w)
	d := ClaimComponents[C](w)
	for _, v := range b.values {
		w.Push(entities.Next())
		a.Append(v.A)
		c.Append(v.B)
		d.Append(v.C)
	}
}

// Bundle4 is a ComponentSource pushing four component types per entity.
type Bundle4[A, B, C, D any] struct {
	values []Tuple4[A, B, C, D]
	layout *Layout
}

// NewBundle4 builds a Bundle4 from a list of (A, B, C, D) quadruples, one
// entity per quadruple.
func NewBundle4[A, B, C, D any](values ...Tuple4[A, B, C, D]) *Bundle4[A, B, C, D] {
	return &Bundle4[A, B, C, D]{
		values: values,
		layout: layoutFor(
			[]ComponentTypeIndex{
				componentTypeIndexOf[A](), componentTypeIndexOf[B](),
				componentTypeIndexOf[C](), componentTypeIndexOf[D](),
			},
			[]storageConstructor{
				newTypedStorageOpaque[A], newTypedStorageOpaque[B],
				newTypedStorageOpaque[C], newTypedStorageOpaque[D],
			},
		),
	}
}

func (b *Bundle4[A, B, C, D]) Layout() *Layout      { return b.layout }
func (b *Bundle4[A, B, C, D]) Filter() LayoutFilter { return NewLayoutFilter(b.layout) }
func (b *Bundle4[A, B, C, D]) PushComponents(w *EntityTypeWriter, entities EntityStream) {
	a := ClaimComponents[A](w)
	c := ClaimComponents[B](w)
	d := ClaimComponents[C](w)
	e := ClaimComponents[D](w)
	for _, v := range b.values {
		w.Push(entities.Next())
		a.Append(v.A)
		c.Append(v.B)
		d.Append(v.C)
		e.Append(v.D)
	}
}

// Push1 inserts a single entity carrying one component value.
func Push1[A any](w *World, a A) Entity {
	return w.Push(NewBundle1(a))
}

// Push2 inserts a single entity carrying two component values.
func Push2[A, B any](w *World, a A, b B) Entity {
	return w.Push(NewBundle2(Tuple2[A, B]{A: a, B: b}))
}

// Push3 inserts a single entity carrying three component values.
func Push3[A, B, C any](w *World, a A, b B, c C) Entity {
	return w.Push(NewBundle3(Tuple3[A, B, C]{A: a, B: b, C: c}))
}

// Push4 inserts a single entity carrying four component values.
func Push4[A, B, C, D any](w *World, a A, b B, c C, d D) Entity {
	return w.Push(NewBundle4(Tuple4[A, B, C, D]{A: a, B: b, C: c, D: d}))
}
