// Package render builds the view models the dashboard displays.
//
// Every function here is pure: it reads creatures and selection state and
// returns plain structs, leaving drawing to the transport (gRPC clients or
// the terminal UI).
package render

import (
	"iter"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/selection"
)

// User facing messages
const (
	MessageUnavailable = "Creature data could not be loaded. Please check your data files."
	MessageNoEvolution = "No evolution data available"
	MessageNoCapture   = "Capture rate data not available."
	MessageNoSelection = "No creature selected for comparison"
	MessageSelectedOne = "Selected for comparison: %s"
	MessageComparing   = "Comparing: %s vs %s"
)

const (
	// DefaultBins is the histogram resolution
	DefaultBins = 20
	// DefaultStat is charted when no attribute was chosen
	DefaultStat = entities.StatAttack
)

// Records is the read side of the creature table
type Records interface {
	ByID(id int) (*entities.Creature, bool)
	All() iter.Seq[*entities.Creature]
	Err() error
}

// Kind says which view a Page carries
type Kind string

// Page kinds
const (
	KindUnavailable Kind = "unavailable"
	KindGallery     Kind = "gallery"
	KindDetail      Kind = "detail"
	KindComparison  Kind = "comparison"
)

// Page is the complete screen after an event. Exactly one of Gallery,
// Detail or Comparison is set unless Kind is KindUnavailable.
type Page struct {
	Kind       Kind            `json:"kind"`
	Message    string          `json:"message,omitempty"`
	Indicator  string          `json:"indicator"`
	State      selection.State `json:"state"`
	Gallery    *GalleryView    `json:"gallery,omitempty"`
	Detail     *DetailView     `json:"detail,omitempty"`
	Comparison *ComparisonView `json:"comparison,omitempty"`
}

// PageInput defines what Render draws from. Stat picks the histogram
// attribute on the detail page; empty means DefaultStat.
type PageInput struct {
	Records Records
	State   selection.State
	Stat    string
}

// Render chooses the view for the current state. An unreadable dataset
// wins over everything, then a full comparison, then the viewed creature.
// A viewed id that is not in the table falls back to the gallery.
func Render(in PageInput) Page {
	if in.Records == nil || in.Records.Err() != nil {
		return Unavailable(in.State)
	}

	page := Page{
		State:     in.State,
		Indicator: Indicator(in.State, in.Records),
	}

	if a, b, ok := in.State.Comparing(); ok {
		ca, okA := in.Records.ByID(a)
		cb, okB := in.Records.ByID(b)
		if okA && okB {
			view := Comparison(ca, cb)
			page.Kind = KindComparison
			page.Comparison = &view
			return page
		}
	}

	if id, ok := in.State.Viewed.Get(); ok {
		if c, found := in.Records.ByID(id); found {
			view := Detail(DetailInput{
				Creature: c,
				Records:  in.Records,
				State:    in.State,
				Stat:     in.Stat,
			})
			page.Kind = KindDetail
			page.Detail = &view
			return page
		}
	}

	view := Gallery(in.Records.All())
	page.Kind = KindGallery
	page.Gallery = &view
	return page
}

// Unavailable is the page shown when the dataset could not be read
func Unavailable(state selection.State) Page {
	return Page{
		Kind:    KindUnavailable,
		Message: MessageUnavailable,
		State:   state,
	}
}
