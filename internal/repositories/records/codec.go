package records

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dexboard/internal/entities"
)

const listSeparator = ", "

// rowDecoder turns one flat file row into a Creature. Numeric cells that
// do not parse mark the field missing and are reported as failures; empty
// cells and absent optional columns mark the field missing silently.
type rowDecoder struct {
	index    map[string]int
	row      []string
	line     int
	failures []CoercionFailure
}

func newHeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return index
}

func (d *rowDecoder) text(field string) string {
	i, ok := d.index[field]
	if !ok || i >= len(d.row) {
		return ""
	}
	return strings.TrimSpace(d.row[i])
}

func (d *rowDecoder) number(c *entities.Creature, field string) (float64, bool) {
	raw := d.text(field)
	if raw == "" {
		c.MarkMissing(field)
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		c.MarkMissing(field)
		d.failures = append(d.failures, CoercionFailure{Row: d.line, Field: field, Value: raw})
		return 0, false
	}
	return v, true
}

// whole reads field as an integer. Fractional values and values beyond the
// int32 range are coercion failures.
func (d *rowDecoder) whole(c *entities.Creature, field string) (int, bool) {
	v, ok := d.number(c, field)
	if !ok {
		return 0, false
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		c.MarkMissing(field)
		d.failures = append(d.failures, CoercionFailure{Row: d.line, Field: field, Value: d.text(field)})
		return 0, false
	}
	return int(v), true
}

func (d *rowDecoder) integer(c *entities.Creature, field string) int {
	v, _ := d.whole(c, field)
	return v
}

func (d *rowDecoder) list(field string) []string {
	raw := d.text(field)
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// decode builds the creature for the current row. It returns false when the
// id cannot be read, since such a row cannot be addressed.
func (d *rowDecoder) decode() (*entities.Creature, bool) {
	c := &entities.Creature{}

	id, ok := d.whole(c, entities.FieldID)
	if !ok {
		if raw := d.text(entities.FieldID); raw == "" {
			d.failures = append(d.failures, CoercionFailure{Row: d.line, Field: entities.FieldID})
		}
		return nil, false
	}
	c.ID = id

	c.Name = d.text(entities.FieldName)
	c.BaseExperience = d.integer(c, entities.FieldBaseExperience)
	c.Height, _ = d.number(c, entities.FieldHeight)
	c.Weight, _ = d.number(c, entities.FieldWeight)
	c.PrimaryType = d.text(entities.FieldPrimaryType)
	c.SecondaryType = d.text(entities.FieldSecondaryType)
	c.Stats = entities.Stats{
		HP:             d.integer(c, entities.StatHP),
		Attack:         d.integer(c, entities.StatAttack),
		Defense:        d.integer(c, entities.StatDefense),
		SpecialAttack:  d.integer(c, entities.StatSpecialAttack),
		SpecialDefense: d.integer(c, entities.StatSpecialDefense),
		Speed:          d.integer(c, entities.StatSpeed),
	}
	c.Abilities = d.list(entities.FieldAbilities)
	c.SpriteURL = d.text(entities.FieldSpriteURL)
	c.GenderRate = d.integer(c, entities.FieldGenderRate)
	c.GenderDistribution = d.text(entities.FieldGenderDistribution)
	c.CaptureRate = d.integer(c, entities.FieldCaptureRate)
	c.IsLegendary, _ = strconv.ParseBool(d.text(entities.FieldIsLegendary))
	c.BaseHappiness = d.integer(c, entities.FieldBaseHappiness)
	c.HatchCounter = d.integer(c, entities.FieldHatchCounter)
	c.EggGroups = d.list(entities.FieldEggGroups)
	c.ChainID = d.integer(c, entities.FieldChainID)

	c.Stage = d.integer(c, entities.FieldStage)
	if c.Stage < 1 {
		c.Stage = 1
	}

	return c, true
}

// encodeRow renders c in Columns order. Missing fields are written empty.
func encodeRow(c *entities.Creature) []string {
	integer := func(field string, v int) string {
		if c.IsMissing(field) {
			return ""
		}
		return strconv.Itoa(v)
	}
	float := func(field string, v float64) string {
		if c.IsMissing(field) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return []string{
		strconv.Itoa(c.ID),
		c.Name,
		integer(entities.FieldBaseExperience, c.BaseExperience),
		float(entities.FieldHeight, c.Height),
		float(entities.FieldWeight, c.Weight),
		c.PrimaryType,
		c.SecondaryType,
		integer(entities.StatHP, c.Stats.HP),
		integer(entities.StatAttack, c.Stats.Attack),
		integer(entities.StatDefense, c.Stats.Defense),
		integer(entities.StatSpecialAttack, c.Stats.SpecialAttack),
		integer(entities.StatSpecialDefense, c.Stats.SpecialDefense),
		integer(entities.StatSpeed, c.Stats.Speed),
		strings.Join(c.Abilities, listSeparator),
		c.SpriteURL,
		integer(entities.FieldGenderRate, c.GenderRate),
		integer(entities.FieldCaptureRate, c.CaptureRate),
		strconv.FormatBool(c.IsLegendary),
		integer(entities.FieldBaseHappiness, c.BaseHappiness),
		integer(entities.FieldHatchCounter, c.HatchCounter),
		strings.Join(c.EggGroups, listSeparator),
		integer(entities.FieldChainID, c.ChainID),
		strconv.Itoa(c.Stage),
		c.GenderDistribution,
	}
}
