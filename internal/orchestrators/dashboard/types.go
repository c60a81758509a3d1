package dashboard

import (
	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/render"
	"github.com/KirkDiggler/dexboard/internal/selection"
)

// GetPageInput requests the page for the current selection.
// Stat picks the histogram attribute; empty means render.DefaultStat.
type GetPageInput struct {
	Stat string
}

// GetPageOutput is the page for the current selection
type GetPageOutput struct {
	Page render.Page
}

// ViewInput opens a creature's detail page
type ViewInput struct {
	ID   int
	Stat string
}

// ViewOutput is the page after the view
type ViewOutput struct {
	Page render.Page
}

// PickInput adds a creature to the comparison
type PickInput struct {
	ID   int
	Stat string
}

// PickOutput is the page after the pick
type PickOutput struct {
	Page render.Page
}

// ResetInput clears a complete comparison
type ResetInput struct {
	Stat string
}

// ResetOutput is the page after the reset. Cleared is false when there was
// no complete comparison to clear.
type ResetOutput struct {
	Page    render.Page
	Cleared bool
}

// ClickInput carries a whole list of controls with their click counters.
// Action is selection.ActionView or selection.ActionPick.
type ClickInput struct {
	Action string
	Clicks []selection.Click
	Stat   string
}

// ClickOutput is the page after the click. Fired is false when no control
// reported a click, in which case nothing changed.
type ClickOutput struct {
	Page  render.Page
	Fired bool
	ID    int
}

// SearchInput looks a creature up by name
type SearchInput struct {
	Name  string
	Limit int
}

// SearchOutput holds the exact match, if any, and close names otherwise
type SearchOutput struct {
	Creature    *entities.Creature
	Suggestions []*entities.Creature
}
