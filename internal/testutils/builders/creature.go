// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/dexboard/internal/entities"
)

// CreatureBuilder provides a fluent interface for building test Creature instances
type CreatureBuilder struct {
	creature *entities.Creature
}

// NewCreatureBuilder creates a builder for a single-stage creature with the given id.
// The creature starts as its own chain root.
func NewCreatureBuilder(id int, name string) *CreatureBuilder {
	return &CreatureBuilder{
		creature: &entities.Creature{
			ID:          id,
			Name:        name,
			ChainID:     id,
			Stage:       1,
			CaptureRate: 45,
			GenderRate:  4,
		},
	}
}

// WithTypes sets the primary and, optionally, secondary type
func (b *CreatureBuilder) WithTypes(types ...string) *CreatureBuilder {
	if len(types) > 0 {
		b.creature.PrimaryType = types[0]
	}
	if len(types) > 1 {
		b.creature.SecondaryType = types[1]
	}
	return b
}

// WithChain places the creature at stage of chainID
func (b *CreatureBuilder) WithChain(chainID, stage int) *CreatureBuilder {
	b.creature.ChainID = chainID
	b.creature.Stage = stage
	return b
}

// WithStats sets the six battle stats in display order
func (b *CreatureBuilder) WithStats(hp, attack, defense, spAttack, spDefense, speed int) *CreatureBuilder {
	b.creature.Stats = entities.Stats{
		HP:             hp,
		Attack:         attack,
		Defense:        defense,
		SpecialAttack:  spAttack,
		SpecialDefense: spDefense,
		Speed:          speed,
	}
	return b
}

// WithSize sets height in decimetres and weight in hectograms
func (b *CreatureBuilder) WithSize(height, weight float64) *CreatureBuilder {
	b.creature.Height = height
	b.creature.Weight = weight
	return b
}

// WithGenderRate sets the gender rate in eighths female, -1 for genderless
func (b *CreatureBuilder) WithGenderRate(rate int) *CreatureBuilder {
	b.creature.GenderRate = rate
	return b
}

// WithAbilities sets the ability list
func (b *CreatureBuilder) WithAbilities(abilities ...string) *CreatureBuilder {
	b.creature.Abilities = abilities
	return b
}

// Build returns the constructed creature
func (b *CreatureBuilder) Build() *entities.Creature {
	return b.creature
}
