package render

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
)

// Radar is the six stat polygon of one creature. Range is the radial axis
// maximum.
type Radar struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Range  int      `json:"range"`
}

// radarPadding is added to the highest stat to size the radial axis
const radarPadding = 20

// StatRadar builds the radar for c
func StatRadar(c *entities.Creature) Radar {
	return Radar{
		Name:   c.DisplayName(),
		Labels: slices.Clone(entities.StatLabels),
		Values: c.Stats.Values(),
		Range:  c.Stats.Max() + radarPadding,
	}
}

// Slice is one wedge of a pie chart
type Slice struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// GenderView is the gender label with its pie
type GenderView struct {
	Label  string  `json:"label"`
	Slices []Slice `json:"slices"`
}

// Gender labels
const (
	GenderLabelGenderless = "Genderless"
	GenderLabelAllMale    = "100% Male"
	GenderLabelAllFemale  = "100% Female"
	GenderLabelUnknown    = "Unknown"
)

// femaleEighth is the female share, in percent, of one gender rate step
const femaleEighth = 12.5

// GenderLabel turns a gender rate code into its label. Rate -1 is
// genderless; otherwise the female share is rate eighths and both shares
// are truncated to whole percents, e.g. 1 -> "87% Male / 12% Female".
func GenderLabel(rate int) string {
	switch {
	case rate == entities.GenderRateGenderless:
		return GenderLabelGenderless
	case rate == entities.GenderRateAllMale:
		return GenderLabelAllMale
	case rate == entities.GenderRateAllFemale:
		return GenderLabelAllFemale
	case rate < entities.GenderRateGenderless || rate > entities.GenderRateAllFemale:
		return GenderLabelUnknown
	}

	female := float64(rate) * femaleEighth
	male := 100 - female
	return fmt.Sprintf("%d%% Male / %d%% Female", int(male), int(female))
}

// GenderBreakdown returns the label and pie for rate
func GenderBreakdown(rate int) GenderView {
	view := GenderView{Label: GenderLabel(rate)}

	switch view.Label {
	case GenderLabelGenderless:
		view.Slices = []Slice{{Label: "Genderless", Percent: 100}}
	case GenderLabelAllMale:
		view.Slices = []Slice{{Label: "Male", Percent: 100}}
	case GenderLabelAllFemale:
		view.Slices = []Slice{{Label: "Female", Percent: 100}}
	case GenderLabelUnknown:
	default:
		female := float64(rate) * femaleEighth
		view.Slices = []Slice{
			{Label: "Male", Percent: 100 - female},
			{Label: "Female", Percent: female},
		}
	}
	return view
}

// CreatureGender prefers the stored label and falls back to the rate
func CreatureGender(c *entities.Creature) GenderView {
	if c.IsMissing(entities.FieldGenderRate) {
		return GenderView{Label: GenderLabelUnknown}
	}
	view := GenderBreakdown(c.GenderRate)
	if c.GenderDistribution != "" {
		view.Label = c.GenderDistribution
	}
	return view
}

// Band is a capture difficulty bucket
type Band string

// Capture difficulty bands, hardest first
const (
	BandHard   Band = "hard"
	BandMedium Band = "medium"
	BandEasy   Band = "easy"
)

// Color is the gauge colour for the band
func (b Band) Color() string {
	switch b {
	case BandHard:
		return "red"
	case BandMedium:
		return "yellow"
	case BandEasy:
		return "green"
	default:
		return ""
	}
}

// Capture band boundaries
const (
	mediumCaptureFrom = 85
	easyCaptureFrom   = 170
)

// CaptureBand places rate on the 0..255 gauge: below 85 is hard, below 170
// medium, the rest easy.
func CaptureBand(rate int) Band {
	switch {
	case rate < mediumCaptureFrom:
		return BandHard
	case rate < easyCaptureFrom:
		return BandMedium
	default:
		return BandEasy
	}
}

// CaptureView is the capture difficulty gauge
type CaptureView struct {
	Available bool   `json:"available"`
	Rate      int    `json:"rate"`
	Max       int    `json:"max"`
	Band      Band   `json:"band"`
	Color     string `json:"color"`
	Message   string `json:"message,omitempty"`
}

// Capture builds the gauge for c, or the not-available message
func Capture(c *entities.Creature) CaptureView {
	if c.IsMissing(entities.FieldCaptureRate) {
		return CaptureView{Message: MessageNoCapture, Max: entities.MaxCaptureRate}
	}

	band := CaptureBand(c.CaptureRate)
	return CaptureView{
		Available: true,
		Rate:      c.CaptureRate,
		Max:       entities.MaxCaptureRate,
		Band:      band,
		Color:     band.Color(),
	}
}

// Bin is one histogram bucket covering [Lower, Upper)
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// HistogramView is the distribution of one stat across the dataset
type HistogramView struct {
	Stat  string `json:"stat"`
	Title string `json:"title"`
	Bins  []Bin  `json:"bins"`
}

// StatTitle turns a stat name into a heading, e.g. "special-attack" -> "Special attack"
func StatTitle(stat string) string {
	return entities.Capitalize(strings.ReplaceAll(stat, "-", " "))
}

// StatHistogram buckets stat over records into bins equal-width bins
// spanning the observed range. Creatures whose value is missing are left
// out. The last bin is closed on the right.
func StatHistogram(records iter.Seq[*entities.Creature], stat string, bins int) (HistogramView, error) {
	if !slices.Contains(entities.StatNames, stat) {
		return HistogramView{}, errors.InvalidArgumentf("unknown stat %q", stat).
			WithMeta("stat", stat)
	}
	if bins <= 0 {
		return HistogramView{}, errors.InvalidArgument("bins must be positive")
	}

	var values []float64
	for c := range records {
		if c.IsMissing(stat) {
			continue
		}
		v, _ := c.Stats.Get(stat)
		values = append(values, float64(v))
	}

	view := HistogramView{Stat: stat, Title: "Distribution of " + StatTitle(stat)}
	if len(values) == 0 {
		return view, nil
	}

	lo, hi := slices.Min(values), slices.Max(values)
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}

	view.Bins = make([]Bin, bins)
	for i := range view.Bins {
		view.Bins[i].Lower = lo + float64(i)*width
		view.Bins[i].Upper = lo + float64(i+1)*width
	}
	for _, v := range values {
		i := int(math.Floor((v - lo) / width))
		view.Bins[min(max(i, 0), bins-1)].Count++
	}

	return view, nil
}

// TypeCount is the number of creatures with one primary type
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TypeDistribution counts primary types, most common first, ties by name
func TypeDistribution(records iter.Seq[*entities.Creature]) []TypeCount {
	counts := map[string]int{}
	for c := range records {
		if c.PrimaryType != "" {
			counts[c.PrimaryType]++
		}
	}

	out := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TypeCount{Type: t, Count: n})
	}
	slices.SortFunc(out, func(a, b TypeCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Type, b.Type)
	})
	return out
}

// Point is one creature on the happiness scatter
type Point struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	HatchCounter int    `json:"hatch_counter"`
	Happiness    int    `json:"happiness"`
	Current      bool   `json:"current"`
}

// HappinessScatter plots base happiness against hatch counter. Creatures
// missing either value are skipped.
func HappinessScatter(records iter.Seq[*entities.Creature], currentID int) []Point {
	var out []Point
	for c := range records {
		if c.IsMissing(entities.FieldBaseHappiness) || c.IsMissing(entities.FieldHatchCounter) {
			continue
		}
		out = append(out, Point{
			ID:           c.ID,
			Name:         c.DisplayName(),
			HatchCounter: c.HatchCounter,
			Happiness:    c.BaseHappiness,
			Current:      c.ID == currentID,
		})
	}
	return out
}
