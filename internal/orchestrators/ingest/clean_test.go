package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dexboard/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/orchestrators/ingest"
)

func TestCleanFillsDefaults(t *testing.T) {
	p := pokemon(132, "ditto", "normal")
	p.BaseExperience = nil
	p.Stats = p.Stats[:5]
	sp := &pokeapi.Species{ID: 132, GenderRate: -1, CaptureRate: 35}

	c := ingest.Clean(p, sp, 0, 0)

	assert.Equal(t, 132, c.ChainID, "chain defaults to own id")
	assert.Equal(t, 1, c.Stage)
	assert.Zero(t, c.BaseHappiness)
	assert.Zero(t, c.HatchCounter)
	assert.Empty(t, c.EggGroups)
	assert.Equal(t, "Genderless", c.GenderDistribution)
	assert.True(t, c.IsMissing(entities.FieldBaseExperience))
	assert.True(t, c.IsMissing(entities.StatSpeed))
	assert.False(t, c.IsMissing(entities.StatHP))
	assert.Equal(t, "normal", c.PrimaryType)
	assert.Empty(t, c.SecondaryType)
}
