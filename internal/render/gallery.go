package render

import (
	"fmt"
	"iter"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/selection"
)

// Card is one clickable gallery tile
type Card struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SpriteURL string `json:"sprite_url"`
	Type      string `json:"type"`
}

// GalleryView is the grid shown when nothing is being viewed
type GalleryView struct {
	Cards []Card `json:"cards"`
}

// Gallery lists every creature that has a primary type, in record order
func Gallery(records iter.Seq[*entities.Creature]) GalleryView {
	var view GalleryView
	for c := range records {
		if c.PrimaryType == "" {
			continue
		}
		view.Cards = append(view.Cards, Card{
			ID:        c.ID,
			Name:      c.DisplayName(),
			SpriteURL: c.SpriteURL,
			Type:      c.PrimaryType,
		})
	}
	return view
}

// Indicator describes the comparison slots in one line
func Indicator(state selection.State, records Records) string {
	switch state.Progress() {
	case selection.OneSlot:
		return fmt.Sprintf(MessageSelectedOne, nameOf(state.SlotA.ID, records))
	case selection.TwoSlots:
		return fmt.Sprintf(MessageComparing, nameOf(state.SlotA.ID, records), nameOf(state.SlotB.ID, records))
	default:
		return MessageNoSelection
	}
}

func nameOf(id int, records Records) string {
	if records != nil {
		if c, ok := records.ByID(id); ok {
			return c.DisplayName()
		}
	}
	return fmt.Sprintf("#%d", id)
}
