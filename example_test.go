package foundry_test

import (
	"fmt"

	"github.com/foundrykit/foundry"
)

// Position is a simple component for 2D coordinates.
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement.
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification.
type Name struct {
	Value string
}

// Example_basic shows pushing entities of different layouts and reading
// their components back.
func Example_basic() {
	world := foundry.NewWorld()

	foundry.Push1(world, Position{X: 1, Y: 1})
	world.Extend(foundry.NewBundle2(
		foundry.Tuple2[Position, Velocity]{A: Position{X: 2, Y: 2}, B: Velocity{X: 1}},
		foundry.Tuple2[Position, Velocity]{A: Position{X: 3, Y: 3}, B: Velocity{X: 1}},
	))

	player := foundry.Push3(world, Position{X: 10, Y: 20}, Velocity{X: 1, Y: 2}, Name{Value: "Player"})

	if foundry.HasComponent[Velocity](world, player) {
		fmt.Println("player has velocity")
	}

	fmt.Printf("world has %d entities\n", world.Len())

	// Output:
	// player has velocity
	// world has 4 entities
}
