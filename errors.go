package foundry

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// panicf formats a programming-error message, wraps it with bark.AddTrace
// for a captured stack, and panics. Used for every assertion in this
// package that is not reported as a typed error (see panicErr): double-claim, claim of a type outside an archetype's layout,
// wrong-type downcast, swap_remove past the end of an array.
func panicf(format string, args ...any) {
	panic(bark.AddTrace(fmt.Errorf(format, args...)))
}

// panicErr wraps err with bark.AddTrace and panics with it directly,
// preserving err's concrete type so a recovering caller can errors.As it
// back out. Used for the two conditions this package reports as typed
// errors rather than a formatted panicf message.
func panicErr(err error) {
	panic(bark.AddTrace(err))
}

// ComponentNotRegisteredError reports that a caller asked about a
// component type this World has never seen in any archetype.
type ComponentNotRegisteredError struct {
	Type ComponentTypeIndex
}

func (e ComponentNotRegisteredError) Error() string {
	return fmt.Sprintf("component type %d has no storage registered in this world", e.Type.id)
}

// ArchetypeMismatchError reports that a typed storage was asked about an
// archetype it was never registered with.
type ArchetypeMismatchError struct {
	Archetype EntityTypeIndex
}

func (e ArchetypeMismatchError) Error() string {
	return fmt.Sprintf("archetype %d is not registered in this storage", e.Archetype)
}
