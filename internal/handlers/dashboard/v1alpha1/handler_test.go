package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/handlers/dashboard/v1alpha1"
	"github.com/KirkDiggler/dexboard/internal/orchestrators/dashboard"
	dashboardmock "github.com/KirkDiggler/dexboard/internal/orchestrators/dashboard/mock"
	"github.com/KirkDiggler/dexboard/internal/render"
	"github.com/KirkDiggler/dexboard/internal/selection"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockDashboard *dashboardmock.MockService
	handler       *v1alpha1.Handler
	ctx           context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDashboard = dashboardmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Dashboard: s.mockDashboard,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestView_Success() {
	page := render.Page{
		Kind:      render.KindDetail,
		Indicator: render.MessageNoSelection,
		State:     selection.State{Viewed: selection.Some(25)},
		Detail:    &render.DetailView{ID: 25, Name: "Pikachu"},
	}

	s.mockDashboard.EXPECT().
		View(s.ctx, &dashboard.ViewInput{ID: 25, Stat: entities.StatSpeed}).
		Return(&dashboard.ViewOutput{Page: page}, nil)

	resp, err := s.handler.View(s.ctx, s.request(map[string]any{
		"id":   25,
		"stat": entities.StatSpeed,
	}))
	s.Require().NoError(err)

	got := resp.GetFields()["page"].GetStructValue().AsMap()
	s.Assert().Equal("detail", got["kind"])
	s.Assert().Equal(float64(25), got["state"].(map[string]any)["viewed"])
	s.Assert().Nil(got["state"].(map[string]any)["slot_a"])
	s.Assert().Equal("Pikachu", got["detail"].(map[string]any)["name"])
	s.Assert().NotContains(got, "gallery")
}

func (s *HandlerTestSuite) TestView_NotFound() {
	s.mockDashboard.EXPECT().
		View(s.ctx, &dashboard.ViewInput{ID: 42}).
		Return(nil, errors.NotFound("creature 42 not found"))

	_, err := s.handler.View(s.ctx, s.request(map[string]any{"id": 42}))

	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
}

func (s *HandlerTestSuite) TestView_InvalidID() {
	testCases := []struct {
		name   string
		fields map[string]any
	}{
		{name: "missing", fields: map[string]any{}},
		{name: "fraction", fields: map[string]any{"id": 1.5}},
		{name: "zero", fields: map[string]any{"id": 0}},
		{name: "text", fields: map[string]any{"id": "one"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.View(s.ctx, s.request(tc.fields))
			s.Assert().Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestPick_Success() {
	s.mockDashboard.EXPECT().
		Pick(s.ctx, &dashboard.PickInput{ID: 1}).
		Return(&dashboard.PickOutput{Page: render.Page{
			Kind:      render.KindGallery,
			Indicator: "Selected for comparison: Bulbasaur",
			State:     selection.State{SlotA: selection.Some(1)},
		}}, nil)

	resp, err := s.handler.Pick(s.ctx, s.request(map[string]any{"id": 1}))
	s.Require().NoError(err)

	page := resp.GetFields()["page"].GetStructValue()
	s.Assert().Equal("Selected for comparison: Bulbasaur", page.GetFields()["indicator"].GetStringValue())
}

func (s *HandlerTestSuite) TestReset() {
	s.mockDashboard.EXPECT().
		Reset(s.ctx, &dashboard.ResetInput{}).
		Return(&dashboard.ResetOutput{Page: render.Page{Kind: render.KindGallery}, Cleared: true}, nil)

	resp, err := s.handler.Reset(s.ctx, s.request(map[string]any{}))
	s.Require().NoError(err)

	s.Assert().True(resp.GetFields()["cleared"].GetBoolValue())
}

func (s *HandlerTestSuite) TestClick() {
	s.mockDashboard.EXPECT().
		Click(s.ctx, &dashboard.ClickInput{
			Action: selection.ActionPick,
			Clicks: []selection.Click{
				{ID: 1, Count: 0},
				{ID: 4, Count: 3},
			},
		}).
		Return(&dashboard.ClickOutput{Page: render.Page{Kind: render.KindGallery}, Fired: true, ID: 4}, nil)

	resp, err := s.handler.Click(s.ctx, s.request(map[string]any{
		"action": selection.ActionPick,
		"clicks": []any{
			map[string]any{"id": 1, "count": 0},
			map[string]any{"id": 4, "count": 3},
		},
	}))
	s.Require().NoError(err)

	s.Assert().True(resp.GetFields()["fired"].GetBoolValue())
	s.Assert().Equal(float64(4), resp.GetFields()["id"].GetNumberValue())
}

func (s *HandlerTestSuite) TestClick_RequiresAction() {
	_, err := s.handler.Click(s.ctx, s.request(map[string]any{}))
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSearch_Suggestions() {
	s.mockDashboard.EXPECT().
		Search(s.ctx, &dashboard.SearchInput{Name: "pikachoo", Limit: 2}).
		Return(&dashboard.SearchOutput{Suggestions: []*entities.Creature{{ID: 25, Name: "pikachu"}}}, nil)

	resp, err := s.handler.Search(s.ctx, s.request(map[string]any{
		"name":  "pikachoo",
		"limit": 2,
	}))
	s.Require().NoError(err)

	s.Assert().NotContains(resp.GetFields(), "creature")
	suggestions := resp.GetFields()["suggestions"].GetListValue().GetValues()
	s.Require().Len(suggestions, 1)
	s.Assert().Equal("pikachu", suggestions[0].GetStructValue().GetFields()["name"].GetStringValue())
}

func (s *HandlerTestSuite) TestSearch_RequiresName() {
	_, err := s.handler.Search(s.ctx, s.request(map[string]any{}))
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestNewHandler_RequiresDashboard() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
