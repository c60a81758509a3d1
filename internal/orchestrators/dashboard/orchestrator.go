// Package dashboard owns the selection state of a running dashboard and
// turns each user event into a freshly rendered page.
package dashboard

//go:generate mockgen -destination=mock/mock_service.go -package=dashboardmock github.com/KirkDiggler/dexboard/internal/orchestrators/dashboard Service

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/metrics"
	"github.com/KirkDiggler/dexboard/internal/render"
	"github.com/KirkDiggler/dexboard/internal/selection"
)

// DefaultSearchLimit is how many suggestions Search returns when no limit is given
const DefaultSearchLimit = 5

// Service defines the interface for dashboard events
type Service interface {
	// GetPage renders the current selection without changing it
	GetPage(ctx context.Context, input *GetPageInput) (*GetPageOutput, error)

	// View opens the detail page for a creature
	// Returns errors.NotFound if the id is not in the dataset
	View(ctx context.Context, input *ViewInput) (*ViewOutput, error)

	// Pick adds a creature to the comparison
	// Returns errors.NotFound if the id is not in the dataset
	Pick(ctx context.Context, input *PickInput) (*PickOutput, error)

	// Reset clears a complete comparison and is a no-op otherwise
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// Click resolves a list of click counters into a View or Pick
	// Returns errors.InvalidArgument for an unknown action
	// Returns errors.NotFound if the resolved id is not in the dataset
	Click(ctx context.Context, input *ClickInput) (*ClickOutput, error)

	// Search finds a creature by name, with suggestions when there is no exact match
	// Returns errors.InvalidArgument if the name is empty
	// Returns errors.NotFound if nothing matches or is close
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
}

// Records is the read side of the record store the dashboard needs
type Records interface {
	ByID(id int) (*entities.Creature, bool)
	ByName(name string) (*entities.Creature, bool)
	Suggest(name string, n int) []*entities.Creature
	All() iter.Seq[*entities.Creature]
	Err() error
}

// Config holds the dependencies for the dashboard orchestrator
type Config struct {
	Records Records
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Records == nil {
		vb.RequiredField("Records")
	}

	return vb.Build()
}

// orchestrator serializes every event through mu so concurrent callers see
// the same ordering a single event loop would give them.
type orchestrator struct {
	mu      sync.Mutex
	records Records
	machine *selection.Machine
}

// NewOrchestrator creates a dashboard with an empty selection
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		records: cfg.Records,
		machine: selection.NewMachine(cfg.Records),
	}, nil
}

func (o *orchestrator) GetPage(_ context.Context, input *GetPageInput) (*GetPageOutput, error) {
	if input == nil {
		input = &GetPageInput{}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetPageOutput{Page: o.page(input.Stat)}, nil
}

func (o *orchestrator) View(ctx context.Context, input *ViewInput) (*ViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.records.Err(); err != nil {
		metrics.RecordEvent(selection.ActionView, metrics.OutcomeNoop)
		return &ViewOutput{Page: o.page(input.Stat)}, nil
	}

	if err := o.apply(ctx, selection.ActionView, input.ID); err != nil {
		return nil, err
	}

	return &ViewOutput{Page: o.page(input.Stat)}, nil
}

func (o *orchestrator) Pick(ctx context.Context, input *PickInput) (*PickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.records.Err(); err != nil {
		metrics.RecordEvent(selection.ActionPick, metrics.OutcomeNoop)
		return &PickOutput{Page: o.page(input.Stat)}, nil
	}

	if err := o.apply(ctx, selection.ActionPick, input.ID); err != nil {
		return nil, err
	}

	return &PickOutput{Page: o.page(input.Stat)}, nil
}

func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		input = &ResetInput{}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, cleared := o.machine.Reset()
	outcome := metrics.OutcomeNoop
	if cleared {
		outcome = metrics.OutcomeApplied
	}
	metrics.RecordEvent(selection.ActionReset, outcome)
	slog.DebugContext(ctx, "selection reset", "cleared", cleared, "state", state.String())

	return &ResetOutput{Page: o.page(input.Stat), Cleared: cleared}, nil
}

func (o *orchestrator) Click(ctx context.Context, input *ClickInput) (*ClickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Action != selection.ActionView && input.Action != selection.ActionPick {
		return nil, errors.InvalidArgumentf("unknown click action %q", input.Action)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	id, fired := selection.ResolveClick(input.Clicks)
	if !fired || o.records.Err() != nil {
		metrics.RecordEvent(input.Action, metrics.OutcomeNoop)
		return &ClickOutput{Page: o.page(input.Stat)}, nil
	}

	if err := o.apply(ctx, input.Action, id); err != nil {
		return nil, err
	}

	return &ClickOutput{Page: o.page(input.Stat), Fired: true, ID: id}, nil
}

func (o *orchestrator) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	if c, ok := o.records.ByName(input.Name); ok {
		return &SearchOutput{Creature: c}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	suggestions := o.records.Suggest(input.Name, limit)
	if len(suggestions) == 0 {
		return nil, errors.NotFoundf("no creature named %q", input.Name).WithMeta("name", input.Name)
	}

	slog.DebugContext(ctx, "name not found, suggesting",
		"name", input.Name,
		"suggestions", len(suggestions))

	return &SearchOutput{Suggestions: suggestions}, nil
}

// apply runs one View or Pick against the machine. The caller holds mu.
func (o *orchestrator) apply(ctx context.Context, action string, id int) error {
	var (
		state selection.State
		err   error
	)
	switch action {
	case selection.ActionView:
		state, err = o.machine.View(id)
	case selection.ActionPick:
		state, err = o.machine.Pick(id)
	}

	if err != nil {
		outcome := metrics.OutcomeError
		if errors.IsNotFound(err) {
			outcome = metrics.OutcomeMiss
		}
		metrics.RecordEvent(action, outcome)
		slog.InfoContext(ctx, "selection event rejected",
			"action", action,
			"creature_id", id,
			"error", err)
		return err
	}

	metrics.RecordEvent(action, metrics.OutcomeApplied)
	attrs := []any{"action", action, "state", state.String()}
	if c, ok := o.records.ByID(id); ok {
		attrs = append(attrs, entityAttrs(c)...)
	}
	slog.DebugContext(ctx, "selection event applied", attrs...)
	return nil
}

// entityAttrs describes the entity an event touched
func entityAttrs(e core.Entity) []any {
	return []any{
		"entity_type", e.GetType(),
		"entity_id", e.GetID(),
	}
}

// page renders the current state. The caller holds mu.
func (o *orchestrator) page(stat string) render.Page {
	return render.Render(render.PageInput{
		Records: o.records,
		State:   o.machine.State(),
		Stat:    stat,
	})
}
