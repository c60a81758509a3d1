package render

import (
	"fmt"

	"github.com/KirkDiggler/dexboard/internal/entities"
)

// comparisonBaseSize is the drawn height, in pixels, of the taller creature
const comparisonBaseSize = 200

// statAxisHeadroom scales the tallest bar to size the value axis
const statAxisHeadroom = 1.2

// Side is one of the two creatures being compared
type Side struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	SpriteURL string  `json:"sprite_url"`
	Height    float64 `json:"height"`
	SizePx    float64 `json:"size_px"`
	Radar     Radar   `json:"radar"`
}

// StatBar is one grouped bar pair
type StatBar struct {
	Label string `json:"label"`
	A     int    `json:"a"`
	B     int    `json:"b"`
}

// ComparisonView lays two creatures side by side. Both radars share
// RadarRange so they overlay.
type ComparisonView struct {
	A          Side      `json:"a"`
	B          Side      `json:"b"`
	SizeRatio  string    `json:"size_ratio"`
	RadarRange int       `json:"radar_range"`
	Bars       []StatBar `json:"bars"`
	AxisMax    float64   `json:"axis_max"`
}

// Comparison renders a against b. The taller creature is drawn at the base
// size and the other is scaled by height.
func Comparison(a, b *entities.Creature) ComparisonView {
	view := ComparisonView{
		A: side(a),
		B: side(b),
	}

	ha, hb := a.Height, b.Height
	switch {
	case ha <= 0 && hb <= 0:
		view.A.SizePx, view.B.SizePx = comparisonBaseSize, comparisonBaseSize
		view.SizeRatio = "Size ratio: 1 : 1.00"
	case ha >= hb:
		r := hb / ha
		view.A.SizePx, view.B.SizePx = comparisonBaseSize, comparisonBaseSize*r
		view.SizeRatio = fmt.Sprintf("Size ratio: 1 : %.2f", r)
	default:
		r := ha / hb
		view.A.SizePx, view.B.SizePx = comparisonBaseSize*r, comparisonBaseSize
		view.SizeRatio = fmt.Sprintf("Size ratio: %.2f : 1", r)
	}

	top := max(a.Stats.Max(), b.Stats.Max())
	view.RadarRange = top + radarPadding
	view.A.Radar.Range = view.RadarRange
	view.B.Radar.Range = view.RadarRange
	view.AxisMax = float64(top) * statAxisHeadroom

	av, bv := a.Stats.Values(), b.Stats.Values()
	view.Bars = make([]StatBar, len(entities.StatLabels))
	for i, label := range entities.StatLabels {
		view.Bars[i] = StatBar{Label: label, A: av[i], B: bv[i]}
	}

	return view
}

func side(c *entities.Creature) Side {
	return Side{
		ID:        c.ID,
		Name:      c.DisplayName(),
		SpriteURL: c.SpriteURL,
		Height:    c.Height,
		Radar:     StatRadar(c),
	}
}
