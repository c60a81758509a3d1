// Package selection holds the dashboard's viewing and comparison state.
//
// The state changes only through three actions: View, Pick and Reset.
// A Machine is not safe for concurrent use; callers serialize events the
// way a UI event loop would.
package selection

import (
	"fmt"
	"strconv"
)

// Ref is an optional creature identifier
type Ref struct {
	ID    int
	Valid bool
}

// Some returns a set Ref
func Some(id int) Ref {
	return Ref{ID: id, Valid: true}
}

// None is the empty Ref
var None = Ref{}

// Get returns the identifier and whether it is set
func (r Ref) Get() (int, bool) {
	return r.ID, r.Valid
}

// Is reports whether r is set to id
func (r Ref) Is(id int) bool {
	return r.Valid && r.ID == id
}

func (r Ref) String() string {
	if !r.Valid {
		return "-"
	}
	return fmt.Sprintf("%d", r.ID)
}

// MarshalJSON encodes a set Ref as its id and an empty one as null
func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(r.ID)), nil
}

// Progress is how far a comparison has been filled in
type Progress int

const (
	// NoSlots means nothing is picked for comparison
	NoSlots Progress = iota
	// OneSlot means slot A is filled
	OneSlot
	// TwoSlots means both slots are filled and the comparison view is shown
	TwoSlots
)

func (p Progress) String() string {
	switch p {
	case NoSlots:
		return "no_slots"
	case OneSlot:
		return "one_slot"
	case TwoSlots:
		return "two_slots"
	default:
		return fmt.Sprintf("progress(%d)", int(p))
	}
}

// State is a value snapshot of the selection. The zero value is idle with
// no comparison slots.
type State struct {
	Viewed Ref `json:"viewed"`
	SlotA  Ref `json:"slot_a"`
	SlotB  Ref `json:"slot_b"`
}

// Progress derives the comparison progress from the slots
func (s State) Progress() Progress {
	switch {
	case s.SlotA.Valid && s.SlotB.Valid:
		return TwoSlots
	case s.SlotA.Valid:
		return OneSlot
	default:
		return NoSlots
	}
}

// Comparing returns both slot ids when a comparison is complete
func (s State) Comparing() (a, b int, ok bool) {
	if s.Progress() != TwoSlots {
		return 0, 0, false
	}
	return s.SlotA.ID, s.SlotB.ID, true
}

// InSlot reports whether id occupies either comparison slot
func (s State) InSlot(id int) bool {
	return s.SlotA.Is(id) || s.SlotB.Is(id)
}

func (s State) String() string {
	return fmt.Sprintf("viewed=%s slotA=%s slotB=%s (%s)", s.Viewed, s.SlotA, s.SlotB, s.Progress())
}
