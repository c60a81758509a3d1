package selection_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/selection"
)

type fakeCatalog map[int]*entities.Creature

func (f fakeCatalog) ByID(id int) (*entities.Creature, bool) {
	c, ok := f[id]
	return c, ok
}

func newCatalog(ids ...int) fakeCatalog {
	f := fakeCatalog{}
	for _, id := range ids {
		f[id] = &entities.Creature{ID: id}
	}
	return f
}

type MachineTestSuite struct {
	suite.Suite
	machine *selection.Machine
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineTestSuite))
}

func (s *MachineTestSuite) SetupTest() {
	s.machine = selection.NewMachine(newCatalog(1, 5, 9, 12))
}

func (s *MachineTestSuite) TestStartsIdle() {
	st := s.machine.State()
	s.Assert().False(st.Viewed.Valid)
	s.Assert().Equal(selection.NoSlots, st.Progress())
}

func (s *MachineTestSuite) TestView() {
	st, err := s.machine.View(5)
	s.Require().NoError(err)
	s.Assert().Equal(selection.Some(5), st.Viewed)

	st, err = s.machine.View(9)
	s.Require().NoError(err)
	s.Assert().Equal(selection.Some(9), st.Viewed)
}

func (s *MachineTestSuite) TestViewUnknownLeavesStateAlone() {
	_, err := s.machine.View(5)
	s.Require().NoError(err)
	_, err = s.machine.Pick(9)
	s.Require().NoError(err)
	before := s.machine.State()

	st, err := s.machine.View(42)

	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal(before, st)
	s.Assert().Equal(before, s.machine.State())
}

func (s *MachineTestSuite) TestPickSequence() {
	st, err := s.machine.Pick(5)
	s.Require().NoError(err)
	s.Assert().Equal(selection.OneSlot, st.Progress())
	s.Assert().Equal(selection.Some(5), st.SlotA)

	st, err = s.machine.Pick(9)
	s.Require().NoError(err)
	s.Assert().Equal(selection.TwoSlots, st.Progress())
	a, b, ok := st.Comparing()
	s.Assert().True(ok)
	s.Assert().Equal(5, a)
	s.Assert().Equal(9, b)

	st, err = s.machine.Pick(5)
	s.Require().NoError(err)
	s.Assert().Equal(selection.OneSlot, st.Progress())
	s.Assert().Equal(selection.Some(5), st.SlotA)
	s.Assert().False(st.SlotB.Valid)
}

func (s *MachineTestSuite) TestRepickSlotAStaysSingle() {
	_, err := s.machine.Pick(5)
	s.Require().NoError(err)

	st, err := s.machine.Pick(5)
	s.Require().NoError(err)

	s.Assert().Equal(selection.OneSlot, st.Progress())
	s.Assert().Equal(selection.Some(5), st.SlotA)
}

func (s *MachineTestSuite) TestThirdPickDiscardsPair() {
	for _, id := range []int{5, 9} {
		_, err := s.machine.Pick(id)
		s.Require().NoError(err)
	}

	st, err := s.machine.Pick(12)
	s.Require().NoError(err)

	s.Assert().Equal(selection.State{SlotA: selection.Some(12)}, st)
}

func (s *MachineTestSuite) TestPickUnknown() {
	_, err := s.machine.Pick(5)
	s.Require().NoError(err)

	st, err := s.machine.Pick(42)

	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal(selection.Some(5), st.SlotA)
	s.Assert().Equal(selection.OneSlot, st.Progress())
}

func (s *MachineTestSuite) TestReset() {
	s.Run("from two slots", func() {
		s.SetupTest()
		_, _ = s.machine.Pick(5)
		_, _ = s.machine.Pick(9)

		st, changed := s.machine.Reset()

		s.Assert().True(changed)
		s.Assert().Equal(selection.NoSlots, st.Progress())
	})

	s.Run("from one slot is a no-op", func() {
		s.SetupTest()
		_, _ = s.machine.Pick(5)
		before := s.machine.State()

		st, changed := s.machine.Reset()

		s.Assert().False(changed)
		s.Assert().Equal(before, st)
	})

	s.Run("from no slots is a no-op", func() {
		s.SetupTest()
		st, changed := s.machine.Reset()

		s.Assert().False(changed)
		s.Assert().Equal(selection.State{}, st)
	})

	s.Run("keeps the viewed creature", func() {
		s.SetupTest()
		_, _ = s.machine.View(1)
		_, _ = s.machine.Pick(5)
		_, _ = s.machine.Pick(9)

		st, _ := s.machine.Reset()

		s.Assert().Equal(selection.Some(1), st.Viewed)
	})
}

func (s *MachineTestSuite) TestSlotsNeverHoldTheSameCreature() {
	for _, id := range []int{5, 5, 9, 9, 5, 12, 12, 1} {
		st, err := s.machine.Pick(id)
		s.Require().NoError(err)
		if st.Progress() == selection.TwoSlots {
			s.Assert().NotEqual(st.SlotA.ID, st.SlotB.ID)
		}
	}
}

func (s *MachineTestSuite) TestNilCatalog() {
	m := selection.NewMachine(nil)

	_, err := m.View(1)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *MachineTestSuite) TestStateHelpers() {
	st := selection.State{SlotA: selection.Some(5), SlotB: selection.Some(9)}
	s.Assert().True(st.InSlot(9))
	s.Assert().False(st.InSlot(1))
	s.Assert().Equal("viewed=- slotA=5 slotB=9 (two_slots)", st.String())

	id, ok := selection.None.Get()
	s.Assert().False(ok)
	s.Assert().Zero(id)
}
