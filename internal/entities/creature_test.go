package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dexboard/internal/entities"
)

func TestCreature_DisplayName(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{"bulbasaur", "Bulbasaur"},
		{"mr-mime", "Mr-mime"},
		{"HO-OH", "Ho-oh"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			c := &entities.Creature{Name: tc.name}
			assert.Equal(t, tc.want, c.DisplayName())
		})
	}
}

func TestCreature_Missing(t *testing.T) {
	c := &entities.Creature{ID: 1}
	assert.True(t, c.HasChain())

	c.MarkMissing(entities.FieldWeight)
	c.MarkMissing(entities.FieldChainID)
	c.MarkMissing(entities.FieldWeight)

	assert.Equal(t, []string{entities.FieldChainID, entities.FieldWeight}, c.Missing)
	assert.True(t, c.IsMissing(entities.FieldWeight))
	assert.False(t, c.IsMissing(entities.FieldHeight))
	assert.False(t, c.HasChain())
}

func TestCreature_Entity(t *testing.T) {
	c := &entities.Creature{ID: 25}
	assert.Equal(t, "25", c.GetID())
	assert.Equal(t, entities.EntityType, c.GetType())
}

func TestStats(t *testing.T) {
	s := entities.Stats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45}

	v, ok := s.Get(entities.StatSpecialAttack)
	assert.True(t, ok)
	assert.Equal(t, 65, v)

	_, ok = s.Get("luck")
	assert.False(t, ok)

	assert.Equal(t, []int{45, 49, 49, 65, 65, 45}, s.Values())
	assert.Equal(t, 65, s.Max())
	assert.Len(t, entities.StatLabels, len(entities.StatNames))
}
