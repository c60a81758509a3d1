// Package entities holds the creature record shared by every dexboard layer
package entities

import (
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type reported by Creature
const EntityType = "creature"

// Creature is one row of the dataset: a species with its battle stats,
// physical attributes and evolution placement.
type Creature struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	BaseExperience     int      `json:"base_experience"`
	Height             float64  `json:"height"` // decimetres
	Weight             float64  `json:"weight"` // hectograms
	PrimaryType        string   `json:"type_1,omitempty"`
	SecondaryType      string   `json:"type_2,omitempty"`
	Stats              Stats    `json:"stats"`
	Abilities          []string `json:"abilities,omitempty"`
	SpriteURL          string   `json:"sprite_url,omitempty"`
	GenderRate         int      `json:"gender_rate"`
	GenderDistribution string   `json:"gender_distribution,omitempty"` // label derived from GenderRate
	CaptureRate        int      `json:"capture_rate"`
	IsLegendary        bool     `json:"is_legendary"`
	BaseHappiness      int      `json:"base_happiness"`
	HatchCounter       int      `json:"hatch_counter"`
	EggGroups          []string `json:"egg_groups,omitempty"`
	ChainID            int      `json:"evolution_chain_id"`
	Stage              int      `json:"evolution_stage"`

	// Missing lists the fields whose stored value could not be read as a
	// number. Their struct values are zero and must not be displayed.
	Missing []string `json:"missing,omitempty"`
}

// Stats holds the six battle attributes
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// GetID implements core.Entity
func (c *Creature) GetID() string {
	return strconv.Itoa(c.ID)
}

// GetType implements core.Entity
func (c *Creature) GetType() string {
	return EntityType
}

var _ core.Entity = (*Creature)(nil)

// IsMissing reports whether field failed numeric coercion
func (c *Creature) IsMissing(field string) bool {
	return slices.Contains(c.Missing, field)
}

// MarkMissing records field as missing, keeping Missing sorted and unique
func (c *Creature) MarkMissing(field string) {
	i, found := slices.BinarySearch(c.Missing, field)
	if found {
		return
	}
	c.Missing = slices.Insert(c.Missing, i, field)
}

// HasChain reports whether the creature carries a usable chain identifier
func (c *Creature) HasChain() bool {
	return !c.IsMissing(FieldChainID)
}

// DisplayName upper-cases the first letter and lower-cases the rest,
// e.g. "mr-mime" -> "Mr-mime".
func (c *Creature) DisplayName() string {
	return Capitalize(c.Name)
}

// Capitalize upper-cases the first rune of s and lower-cases the remainder
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	r := []rune(lower)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// Get returns the value of the named stat and false for an unknown name
func (s Stats) Get(name string) (int, bool) {
	switch name {
	case StatHP:
		return s.HP, true
	case StatAttack:
		return s.Attack, true
	case StatDefense:
		return s.Defense, true
	case StatSpecialAttack:
		return s.SpecialAttack, true
	case StatSpecialDefense:
		return s.SpecialDefense, true
	case StatSpeed:
		return s.Speed, true
	default:
		return 0, false
	}
}

// Values returns the stats in StatNames order
func (s Stats) Values() []int {
	return []int{s.HP, s.Attack, s.Defense, s.SpecialAttack, s.SpecialDefense, s.Speed}
}

// Max returns the highest of the six stats
func (s Stats) Max() int {
	return slices.Max(s.Values())
}
