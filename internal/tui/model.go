// Package tui is the terminal dashboard.
//
// The model runs inside the bubbletea event loop; every user action becomes
// a dashboard event executed as a tea.Cmd, and the returned page replaces the
// one on screen.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/orchestrators/dashboard"
	"github.com/KirkDiggler/dexboard/internal/render"
)

const (
	listWidth    = 24
	headerHeight = 2
	footerHeight = 2
)

// Model is the bubbletea model for the dashboard
type Model struct {
	ctx     context.Context
	service dashboard.Service

	page   render.Page
	cards  []render.Card
	cursor int
	stat   int

	searching bool
	search    textinput.Model

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	status   string
	quitting bool
}

// New creates a model driven by service
func New(ctx context.Context, service dashboard.Service) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name"
	ti.CharLimit = 32

	return Model{
		ctx:     ctx,
		service: service,
		search:  ti,
		stat:    statIndex(render.DefaultStat),
	}
}

func statIndex(stat string) int {
	for i, name := range entities.StatNames {
		if name == stat {
			return i
		}
	}
	return 0
}

// Init loads the first page
func (m Model) Init() tea.Cmd {
	return m.getPage()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := max(msg.Width-listWidth-2, 10), max(msg.Height-headerHeight-footerHeight, 3)
		if !m.ready {
			m.viewport = viewport.New(w, h)
			m.ready = true
		} else {
			m.viewport.Width, m.viewport.Height = w, h
		}
		m.refresh()
		return m, nil

	case PageMsg:
		m.page = msg.Page
		if msg.Page.Gallery != nil {
			m.cards = msg.Page.Gallery.Cards
			m.cursor = min(m.cursor, max(len(m.cards)-1, 0))
		}
		m.refresh()
		m.viewport.GotoTop()
		return m, nil

	case ErrMsg:
		m.status = describeError(msg.Err)
		return m, nil

	case SearchMsg:
		if msg.Creature != nil {
			m.status = ""
			m.moveTo(msg.Creature.ID)
			return m, m.view(msg.Creature.ID)
		}
		names := make([]string, 0, len(msg.Suggestions))
		for _, c := range msg.Suggestions {
			names = append(names, c.DisplayName())
		}
		m.status = "Did you mean: " + strings.Join(names, ", ")
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}

	case "enter":
		if id, ok := m.selected(); ok {
			m.status = ""
			return m, m.view(id)
		}

	case "p", " ":
		if id, ok := m.selected(); ok {
			m.status = ""
			return m, m.pick(id)
		}

	case "r":
		m.status = ""
		return m, m.reset()

	case "s":
		m.stat = (m.stat + 1) % len(entities.StatNames)
		return m, m.getPage()

	case "/":
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()

	case "pgdown", "ctrl+d":
		m.viewport.HalfViewDown()

	case "pgup", "ctrl+u":
		m.viewport.HalfViewUp()
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil

	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		name := strings.TrimSpace(m.search.Value())
		if name == "" {
			return m, nil
		}
		return m, m.find(name)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) selected() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cards) {
		return 0, false
	}
	return m.cards[m.cursor].ID, true
}

func (m *Model) moveTo(id int) {
	for i, c := range m.cards {
		if c.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) currentStat() string {
	return entities.StatNames[m.stat]
}

func (m *Model) refresh() {
	if m.ready {
		m.viewport.SetContent(renderPage(m.page, m.viewport.Width))
	}
}

func (m Model) getPage() tea.Cmd {
	ctx, svc, stat := m.ctx, m.service, m.currentStat()
	return func() tea.Msg {
		out, err := svc.GetPage(ctx, &dashboard.GetPageInput{Stat: stat})
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PageMsg{Page: out.Page}
	}
}

func (m Model) view(id int) tea.Cmd {
	ctx, svc, stat := m.ctx, m.service, m.currentStat()
	return func() tea.Msg {
		out, err := svc.View(ctx, &dashboard.ViewInput{ID: id, Stat: stat})
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PageMsg{Page: out.Page}
	}
}

func (m Model) pick(id int) tea.Cmd {
	ctx, svc, stat := m.ctx, m.service, m.currentStat()
	return func() tea.Msg {
		out, err := svc.Pick(ctx, &dashboard.PickInput{ID: id, Stat: stat})
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PageMsg{Page: out.Page}
	}
}

func (m Model) reset() tea.Cmd {
	ctx, svc, stat := m.ctx, m.service, m.currentStat()
	return func() tea.Msg {
		out, err := svc.Reset(ctx, &dashboard.ResetInput{Stat: stat})
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PageMsg{Page: out.Page}
	}
}

func (m Model) find(name string) tea.Cmd {
	ctx, svc := m.ctx, m.service
	return func() tea.Msg {
		out, err := svc.Search(ctx, &dashboard.SearchInput{Name: name})
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SearchMsg{Creature: out.Creature, Suggestions: out.Suggestions}
	}
}

func describeError(err error) string {
	switch {
	case errors.IsNotFound(err):
		return errors.GetMessage(err)
	case errors.IsInvalidArgument(err):
		return fmt.Sprintf("Invalid input: %s", errors.GetMessage(err))
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
