package pokeapi

import (
	"slices"

	"github.com/KirkDiggler/dexboard/internal/evolution"
)

// NamedResource is the API's reference to another resource
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Resource is an unnamed reference
type Resource struct {
	URL string `json:"url"`
}

// Pokemon is the /pokemon/{id} payload, trimmed to the fields dexboard keeps
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	BaseExperience *int          `json:"base_experience"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	Types          []TypeSlot    `json:"types"`
	Stats          []StatEntry   `json:"stats"`
	Abilities      []AbilitySlot `json:"abilities"`
	Sprites        Sprites       `json:"sprites"`
	Species        NamedResource `json:"species"`
}

// TypeSlot is one elemental type; slot 1 is the primary type
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatEntry is one base stat
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// AbilitySlot is one ability
type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// Sprites holds image URLs
type Sprites struct {
	FrontDefault string       `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds the alternative artwork sets
type OtherSprites struct {
	OfficialArtwork Artwork `json:"official-artwork"`
}

// Artwork is a single artwork set
type Artwork struct {
	FrontDefault string `json:"front_default"`
}

// TypeNames returns type names ordered by slot
func (p *Pokemon) TypeNames() []string {
	slots := slices.Clone(p.Types)
	slices.SortStableFunc(slots, func(a, b TypeSlot) int {
		return a.Slot - b.Slot
	})

	names := make([]string, 0, len(slots))
	for _, t := range slots {
		names = append(names, t.Type.Name)
	}
	return names
}

// StatMap indexes base stats by stat name
func (p *Pokemon) StatMap() map[string]int {
	stats := make(map[string]int, len(p.Stats))
	for _, s := range p.Stats {
		stats[s.Stat.Name] = s.BaseStat
	}
	return stats
}

// AbilityNames returns ability names in payload order
func (p *Pokemon) AbilityNames() []string {
	names := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		names = append(names, a.Ability.Name)
	}
	return names
}

// ArtworkURL prefers the official artwork and falls back to the default sprite
func (p *Pokemon) ArtworkURL() string {
	if url := p.Sprites.Other.OfficialArtwork.FrontDefault; url != "" {
		return url
	}
	return p.Sprites.FrontDefault
}

// Species is the /pokemon-species/{id} payload
type Species struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	GenderRate     int             `json:"gender_rate"`
	CaptureRate    int             `json:"capture_rate"`
	IsLegendary    bool            `json:"is_legendary"`
	BaseHappiness  *int            `json:"base_happiness"`
	HatchCounter   *int            `json:"hatch_counter"`
	EggGroups      []NamedResource `json:"egg_groups"`
	EvolutionChain *Resource       `json:"evolution_chain"`
}

// EggGroupNames returns egg group names in payload order
func (s *Species) EggGroupNames() []string {
	names := make([]string, 0, len(s.EggGroups))
	for _, g := range s.EggGroups {
		names = append(names, g.Name)
	}
	return names
}

// ChainURL returns the evolution chain URL, or "" when the species has none
func (s *Species) ChainURL() string {
	if s.EvolutionChain == nil {
		return ""
	}
	return s.EvolutionChain.URL
}

// EvolutionChain is the /evolution-chain/{id} payload
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of the chain graph
type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}

// Link converts the payload graph into an evolution.Link tree
func (l ChainLink) Link() evolution.Link {
	link := evolution.Link{Species: l.Species.Name}
	for _, next := range l.EvolvesTo {
		link.EvolvesTo = append(link.EvolvesTo, next.Link())
	}
	return link
}
