package testutils

import (
	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/testutils/builders"
)

// Creature ids used by the fixtures
const (
	BulbasaurID  = 1
	IvysaurID    = 2
	VenusaurID   = 3
	CharmanderID = 4
)

// Bulbasaur returns the first stage of the grass starter chain
func Bulbasaur() *entities.Creature {
	return builders.NewCreatureBuilder(BulbasaurID, "bulbasaur").
		WithTypes("grass", "poison").
		WithChain(1, 1).
		WithStats(45, 49, 49, 65, 65, 45).
		WithSize(7, 69).
		WithGenderRate(1).
		WithAbilities("overgrow", "chlorophyll").
		Build()
}

// Ivysaur returns the second stage of the grass starter chain
func Ivysaur() *entities.Creature {
	return builders.NewCreatureBuilder(IvysaurID, "ivysaur").
		WithTypes("grass", "poison").
		WithChain(1, 2).
		WithStats(60, 62, 63, 80, 80, 60).
		WithSize(10, 130).
		WithGenderRate(1).
		Build()
}

// Venusaur returns the last stage of the grass starter chain
func Venusaur() *entities.Creature {
	return builders.NewCreatureBuilder(VenusaurID, "venusaur").
		WithTypes("grass", "poison").
		WithChain(1, 3).
		WithStats(80, 82, 83, 100, 100, 80).
		WithSize(20, 1000).
		WithGenderRate(1).
		Build()
}

// Charmander returns the first stage of the fire starter chain
func Charmander() *entities.Creature {
	return builders.NewCreatureBuilder(CharmanderID, "charmander").
		WithTypes("fire").
		WithChain(2, 1).
		WithStats(39, 52, 43, 60, 50, 65).
		WithSize(6, 85).
		WithGenderRate(1).
		WithAbilities("blaze").
		Build()
}

// StarterCreatures returns fresh copies of every fixture creature
func StarterCreatures() []*entities.Creature {
	return []*entities.Creature{Bulbasaur(), Ivysaur(), Venusaur(), Charmander()}
}
