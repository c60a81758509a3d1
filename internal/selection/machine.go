package selection

import (
	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
)

// Catalog resolves identifiers against the record store
type Catalog interface {
	ByID(id int) (*entities.Creature, bool)
}

// Action names, used for logging and metrics
const (
	ActionView  = "view"
	ActionPick  = "pick"
	ActionReset = "reset"
)

// Machine applies user actions to a State
type Machine struct {
	catalog Catalog
	state   State
}

// NewMachine creates an idle machine backed by catalog
func NewMachine(catalog Catalog) *Machine {
	return &Machine{catalog: catalog}
}

// State returns the current snapshot
func (m *Machine) State() State {
	return m.state
}

// View makes id the viewed creature. An id missing from the catalog
// returns NotFound and leaves the state untouched.
func (m *Machine) View(id int) (State, error) {
	if err := m.resolve(id); err != nil {
		return m.state, err
	}

	m.state.Viewed = Some(id)
	return m.state, nil
}

// Pick adds id to the comparison.
//
//	NoSlots          -> OneSlot(id)
//	OneSlot(a), id!=a -> TwoSlots(a, id)
//	OneSlot(a), id==a -> OneSlot(id)
//	TwoSlots(a, b)    -> OneSlot(id)
//
// Any conflict restarts the comparison with id alone in slot A.
func (m *Machine) Pick(id int) (State, error) {
	if err := m.resolve(id); err != nil {
		return m.state, err
	}

	switch m.state.Progress() {
	case NoSlots:
		m.state.SlotA = Some(id)
	case OneSlot:
		if m.state.SlotA.Is(id) {
			m.state.SlotA, m.state.SlotB = Some(id), None
		} else {
			m.state.SlotB = Some(id)
		}
	case TwoSlots:
		m.state.SlotA, m.state.SlotB = Some(id), None
	}

	return m.state, nil
}

// Reset clears a complete comparison. From any other progress it does
// nothing and reports false.
func (m *Machine) Reset() (State, bool) {
	if m.state.Progress() != TwoSlots {
		return m.state, false
	}

	m.state.SlotA, m.state.SlotB = None, None
	return m.state, true
}

func (m *Machine) resolve(id int) error {
	if m.catalog == nil {
		return errors.Unavailable("no records loaded")
	}
	if _, ok := m.catalog.ByID(id); !ok {
		return errors.NotFoundf("creature %d not found", id).WithMeta("creature_id", id)
	}
	return nil
}
