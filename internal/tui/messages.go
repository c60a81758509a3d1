package tui

import (
	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/render"
)

// PageMsg carries the page returned by a dashboard event
type PageMsg struct {
	Page render.Page
}

// ErrMsg reports a rejected event. The previous page stays on screen.
type ErrMsg struct {
	Err error
}

// SearchMsg carries the result of a name search
type SearchMsg struct {
	Creature    *entities.Creature
	Suggestions []*entities.Creature
}
