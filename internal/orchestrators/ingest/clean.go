package ingest

import (
	"github.com/KirkDiggler/dexboard/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/evolution"
	"github.com/KirkDiggler/dexboard/internal/render"
)

// Clean merges the two payloads into a creature and fills the gaps the API
// leaves: no happiness or hatch counter becomes 0, no chain means the
// creature is its own chain at the base stage. A missing base experience or
// stat stays missing.
func Clean(p *pokeapi.Pokemon, s *pokeapi.Species, chainID, stage int) *entities.Creature {
	c := &entities.Creature{
		ID:          p.ID,
		Name:        p.Name,
		Height:      float64(p.Height),
		Weight:      float64(p.Weight),
		Abilities:   p.AbilityNames(),
		SpriteURL:   p.ArtworkURL(),
		GenderRate:  s.GenderRate,
		CaptureRate: s.CaptureRate,
		IsLegendary: s.IsLegendary,
		EggGroups:   s.EggGroupNames(),
		ChainID:     chainID,
		Stage:       stage,
	}

	if p.BaseExperience != nil {
		c.BaseExperience = *p.BaseExperience
	} else {
		c.MarkMissing(entities.FieldBaseExperience)
	}

	types := p.TypeNames()
	if len(types) > 0 {
		c.PrimaryType = types[0]
	}
	if len(types) > 1 {
		c.SecondaryType = types[1]
	}

	stats := p.StatMap()
	for _, name := range entities.StatNames {
		if _, ok := stats[name]; !ok {
			c.MarkMissing(name)
		}
	}
	c.Stats = entities.Stats{
		HP:             stats[entities.StatHP],
		Attack:         stats[entities.StatAttack],
		Defense:        stats[entities.StatDefense],
		SpecialAttack:  stats[entities.StatSpecialAttack],
		SpecialDefense: stats[entities.StatSpecialDefense],
		Speed:          stats[entities.StatSpeed],
	}

	if s.BaseHappiness != nil {
		c.BaseHappiness = *s.BaseHappiness
	}
	if s.HatchCounter != nil {
		c.HatchCounter = *s.HatchCounter
	}

	if c.ChainID <= 0 {
		c.ChainID = c.ID
	}
	if c.Stage < evolution.BaseStage {
		c.Stage = evolution.BaseStage
	}

	c.GenderDistribution = render.GenderLabel(c.GenderRate)

	return c
}
