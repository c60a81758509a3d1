package store_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/repositories/records"
	recordsmock "github.com/KirkDiggler/dexboard/internal/repositories/records/mock"
	"github.com/KirkDiggler/dexboard/internal/store"
)

type StoreTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *recordsmock.MockRepository
	ctx      context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = recordsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func creatures() []*entities.Creature {
	return []*entities.Creature{
		{ID: 4, Name: "charmander", ChainID: 2, Stage: 1},
		{ID: 1, Name: "bulbasaur", ChainID: 1, Stage: 1},
		{ID: 2, Name: "ivysaur", ChainID: 1, Stage: 2},
		{ID: 3, Name: "venusaur", ChainID: 1, Stage: 3},
	}
}

func (s *StoreTestSuite) TestLoad() {
	failures := []records.CoercionFailure{{Row: 3, Field: entities.StatHP, Value: "n/a"}}
	s.mockRepo.EXPECT().Load(s.ctx).Return(&records.LoadOutput{
		Creatures: creatures(),
		Failures:  failures,
	}, nil)

	st := store.Load(s.ctx, s.mockRepo)

	s.Require().NoError(st.Err())
	s.Assert().True(st.Available())
	s.Assert().Equal(4, st.Len())
	s.Assert().Equal(failures, st.Failures())

	var ids []int
	for c := range st.All() {
		ids = append(ids, c.ID)
	}
	s.Assert().Equal([]int{1, 2, 3, 4}, ids)
}

func (s *StoreTestSuite) TestLoadUnavailable() {
	s.mockRepo.EXPECT().Load(s.ctx).Return(nil, errors.Unavailable("data file missing"))

	st := store.Load(s.ctx, s.mockRepo)

	s.Assert().False(st.Available())
	s.Assert().True(errors.IsUnavailable(st.Err()))
	s.Assert().Zero(st.Len())
	_, ok := st.ByID(1)
	s.Assert().False(ok)
}

func (s *StoreTestSuite) TestLoadStorageFailureIsUnavailable() {
	s.mockRepo.EXPECT().Load(s.ctx).Return(nil, errors.Internal("disk on fire"))

	st := store.Load(s.ctx, s.mockRepo)

	s.Assert().True(errors.IsUnavailable(st.Err()))
}

func (s *StoreTestSuite) TestLoadNilRepository() {
	st := store.Load(s.ctx, nil)
	s.Assert().True(errors.IsUnavailable(st.Err()))
}

func (s *StoreTestSuite) TestLookups() {
	st := store.New(creatures())

	c, ok := st.ByID(2)
	s.Require().True(ok)
	s.Assert().Equal("ivysaur", c.Name)

	_, ok = st.ByID(42)
	s.Assert().False(ok)

	c, ok = st.ByName("  VenuSaur ")
	s.Require().True(ok)
	s.Assert().Equal(3, c.ID)

	_, ok = st.ByName("venu")
	s.Assert().False(ok)
}

func (s *StoreTestSuite) TestDuplicateIDKeepsEveryRow() {
	st := store.New([]*entities.Creature{
		{ID: 1, Name: "bulbasaur"},
		{ID: 1, Name: "impostor"},
	})

	s.Assert().Equal(2, st.Len())
	c, _ := st.ByID(1)
	s.Assert().Equal("bulbasaur", c.Name)

	all := slices.Collect(st.All())
	s.Require().Len(all, 2)
	s.Assert().Equal("bulbasaur", all[0].Name)
	s.Assert().Equal("impostor", all[1].Name)
}

func (s *StoreTestSuite) TestAllIsRestartable() {
	st := store.New(creatures())

	first := slices.Collect(st.All())
	second := slices.Collect(st.All())

	s.Assert().Equal(first, second)
	s.Assert().Len(first, 4)
}

func (s *StoreTestSuite) TestSuggest() {
	st := store.New(creatures())

	got := st.Suggest("ivysaw", 3)
	s.Require().NotEmpty(got)
	s.Assert().Equal("ivysaur", got[0].Name)

	s.Assert().Empty(st.Suggest("mewtwo", 3))
	s.Assert().Empty(st.Suggest("", 3))
	s.Assert().Empty(st.Suggest("ivysaur", 0))
}
