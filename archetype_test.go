package foundry

import "testing"

type aFoo struct{ V int }
type aBar struct{ V int }

func TestLayoutContainsComponent(t *testing.T) {
	foo := componentTypeIndexOf[aFoo]()
	bar := componentTypeIndexOf[aBar]()

	layout := NewLayout(
		[]ComponentTypeIndex{foo},
		[]storageConstructor{newTypedStorageOpaque[aFoo]},
	)

	if !layout.ContainsComponent(foo) {
		t.Fatal("layout should contain foo")
	}
	if layout.ContainsComponent(bar) {
		t.Fatal("layout should not contain bar")
	}
}

func TestLayoutFilterMatchesRegardlessOfConstructionOrder(t *testing.T) {
	foo := componentTypeIndexOf[aFoo]()
	bar := componentTypeIndexOf[aBar]()

	l1 := NewLayout(
		[]ComponentTypeIndex{foo, bar},
		[]storageConstructor{newTypedStorageOpaque[aFoo], newTypedStorageOpaque[aBar]},
	)
	l2 := NewLayout(
		[]ComponentTypeIndex{bar, foo},
		[]storageConstructor{newTypedStorageOpaque[aBar], newTypedStorageOpaque[aFoo]},
	)

	filter := NewLayoutFilter(l1)
	if !filter(l2.signature) {
		t.Fatal("filter should match a layout with the same component set in a different order")
	}
}

func TestEntityTypePushAndSwapRemove(t *testing.T) {
	foo := componentTypeIndexOf[aFoo]()
	layout := NewLayout([]ComponentTypeIndex{foo}, []storageConstructor{newTypedStorageOpaque[aFoo]})
	a := &EntityType{id: 0, layout: layout}

	a.push(Entity(1))
	a.push(Entity(2))
	a.push(Entity(3))

	removed := a.swapRemove(0)
	if removed != Entity(1) {
		t.Fatalf("swapRemove returned %v, want Entity(1)", removed)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if a.entities[0] != Entity(3) {
		t.Fatalf("row 0 = %v, want Entity(3) (last entity moved in)", a.entities[0])
	}
}

func TestEntityTypeSwapRemoveOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	a := &EntityType{layout: &Layout{}}
	a.swapRemove(0)
}
