package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/selection"
	"github.com/KirkDiggler/dexboard/internal/tree"
)

// DetailView is the page for a single creature
type DetailView struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	SpriteURL    string        `json:"sprite_url"`
	Highlighted  bool          `json:"highlighted"`
	Measurements string        `json:"measurements"`
	Abilities    string        `json:"abilities"`
	TypeLine     string        `json:"type_line"`
	Legendary    bool          `json:"legendary"`
	Radar        Radar         `json:"radar"`
	Tree         TreeView      `json:"tree"`
	Capture      CaptureView   `json:"capture"`
	Gender       GenderView    `json:"gender"`
	Types        []TypeCount   `json:"types"`
	Scatter      []Point       `json:"scatter"`
	Histogram    HistogramView `json:"histogram"`
}

// DetailInput defines what a detail page is built from
type DetailInput struct {
	Creature *entities.Creature
	Records  Records
	State    selection.State
	Stat     string
}

// Detail renders the page for in.Creature. The sprite is highlighted when
// the creature sits in a comparison slot. An unknown Stat falls back to
// DefaultStat.
func Detail(in DetailInput) DetailView {
	c := in.Creature
	all := in.Records.All()

	view := DetailView{
		ID:           c.ID,
		Name:         c.DisplayName(),
		SpriteURL:    c.SpriteURL,
		Highlighted:  in.State.InSlot(c.ID),
		Measurements: measurements(c),
		Abilities:    "Abilities: " + strings.Join(c.Abilities, ", "),
		TypeLine:     typeLine(c),
		Legendary:    c.IsLegendary,
		Radar:        StatRadar(c),
		Capture:      Capture(c),
		Gender:       CreatureGender(c),
		Types:        TypeDistribution(all),
		Scatter:      HappinessScatter(all, c.ID),
	}

	if seq, ok := tree.BuildFor(c, all); ok {
		view.Tree = Tree(seq, c.ID)
	} else {
		view.Tree = NoTree()
	}

	stat := in.Stat
	if stat == "" {
		stat = DefaultStat
	}
	hist, err := StatHistogram(all, stat, DefaultBins)
	if err != nil {
		hist, _ = StatHistogram(all, DefaultStat, DefaultBins)
	}
	view.Histogram = hist

	return view
}

func measurements(c *entities.Creature) string {
	return fmt.Sprintf("Height: %s dm | Weight: %s hg",
		measure(c, entities.FieldHeight, c.Height),
		measure(c, entities.FieldWeight, c.Weight))
}

func measure(c *entities.Creature, field string, v float64) string {
	if c.IsMissing(field) {
		return "?"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func typeLine(c *entities.Creature) string {
	line := "Type: " + entities.Capitalize(c.PrimaryType)
	if c.SecondaryType != "" {
		line += " / " + entities.Capitalize(c.SecondaryType)
	}
	return line
}
