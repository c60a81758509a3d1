// Package v1alpha1 serves the dashboard over gRPC
package v1alpha1

import (
	"context"
	"encoding/json"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/orchestrators/dashboard"
	"github.com/KirkDiggler/dexboard/internal/selection"
)

// Request and response field names
const (
	FieldID          = "id"
	FieldStat        = "stat"
	FieldAction      = "action"
	FieldClicks      = "clicks"
	FieldCount       = "count"
	FieldName        = "name"
	FieldLimit       = "limit"
	FieldPage        = "page"
	FieldCleared     = "cleared"
	FieldFired       = "fired"
	FieldCreature    = "creature"
	FieldSuggestions = "suggestions"
)

// HandlerConfig holds dependencies for the dashboard handler
type HandlerConfig struct {
	Dashboard dashboard.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.Dashboard == nil {
		return errors.InvalidArgument("dashboard service is required")
	}
	return nil
}

// Handler implements DashboardServiceServer
type Handler struct {
	dashboard dashboard.Service
}

var _ DashboardServiceServer = (*Handler)(nil)

// NewHandler creates a new dashboard handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		dashboard: cfg.Dashboard,
	}, nil
}

// GetPage returns the page for the current selection
func (h *Handler) GetPage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.dashboard.GetPage(ctx, &dashboard.GetPageInput{
		Stat: stringField(req, FieldStat),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{FieldPage: out.Page})
}

// View opens a creature's detail page
func (h *Handler) View(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(req, FieldID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dashboard.View(ctx, &dashboard.ViewInput{
		ID:   id,
		Stat: stringField(req, FieldStat),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{FieldPage: out.Page})
}

// Pick adds a creature to the comparison
func (h *Handler) Pick(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(req, FieldID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dashboard.Pick(ctx, &dashboard.PickInput{
		ID:   id,
		Stat: stringField(req, FieldStat),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{FieldPage: out.Page})
}

// Reset clears a complete comparison
func (h *Handler) Reset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.dashboard.Reset(ctx, &dashboard.ResetInput{
		Stat: stringField(req, FieldStat),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{
		FieldPage:    out.Page,
		FieldCleared: out.Cleared,
	})
}

// Click resolves a list of click counters into a view or pick
func (h *Handler) Click(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	action := stringField(req, FieldAction)
	if action == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("action is required"))
	}

	clicks, err := clicksField(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dashboard.Click(ctx, &dashboard.ClickInput{
		Action: action,
		Clicks: clicks,
		Stat:   stringField(req, FieldStat),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	body := map[string]any{
		FieldPage:  out.Page,
		FieldFired: out.Fired,
	}
	if out.Fired {
		body[FieldID] = out.ID
	}
	return response(body)
}

// Search looks a creature up by name
func (h *Handler) Search(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name := stringField(req, FieldName)
	if name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	limit := 0
	if _, ok := req.GetFields()[FieldLimit]; ok {
		n, err := idField(req, FieldLimit)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		limit = n
	}

	out, err := h.dashboard.Search(ctx, &dashboard.SearchInput{
		Name:  name,
		Limit: limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	body := map[string]any{}
	if out.Creature != nil {
		body[FieldCreature] = out.Creature
	}
	if len(out.Suggestions) > 0 {
		body[FieldSuggestions] = out.Suggestions
	}
	return response(body)
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// idField reads a positive whole number
func idField(req *structpb.Struct, name string) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, errors.InvalidArgumentf("%s is required", name)
	}
	return positiveInt(v, name)
}

func positiveInt(v *structpb.Value, name string) (int, error) {
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || n.NumberValue < 1 || n.NumberValue > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be a positive integer", name)
	}
	return int(n.NumberValue), nil
}

func clicksField(req *structpb.Struct) ([]selection.Click, error) {
	values := req.GetFields()[FieldClicks].GetListValue().GetValues()
	clicks := make([]selection.Click, 0, len(values))
	for _, v := range values {
		fields := v.GetStructValue().GetFields()
		id, err := positiveInt(fields[FieldID], "clicks.id")
		if err != nil {
			return nil, err
		}
		clicks = append(clicks, selection.Click{
			ID:    id,
			Count: int(fields[FieldCount].GetNumberValue()),
		})
	}
	return clicks, nil
}

// response converts body to a Struct through its JSON form
func response(body map[string]any) (*structpb.Struct, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to decode response"))
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to build response"))
	}
	return out, nil
}
