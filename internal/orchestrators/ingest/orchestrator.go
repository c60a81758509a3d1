// Package ingest crawls the creature API, cleans each record and replaces
// the stored snapshot.
package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dexboard/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/evolution"
	"github.com/KirkDiggler/dexboard/internal/pkg/idgen"
	"github.com/KirkDiggler/dexboard/internal/repositories/records"
)

const (
	// DefaultLastID is the size of the dataset
	DefaultLastID = 250

	// DefaultConcurrency bounds in-flight creatures; the client's limiter
	// still paces the actual requests.
	DefaultConcurrency = 4
)

// Service defines the interface for building a snapshot
type Service interface {
	// Run fetches every id in range and saves the cleaned snapshot
	// Returns errors.InvalidArgument for an empty or inverted range
	// Returns errors.Unavailable when the API fails for a reason other than a missing id
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the ingest orchestrator
type Config struct {
	Client      pokeapi.Client
	Records     records.Repository
	IDGenerator idgen.Generator
	Concurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Records == nil {
		vb.RequiredField("Records")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Concurrency < 0 {
		vb.Field("Concurrency", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	client      pokeapi.Client
	records     records.Repository
	idGen       idgen.Generator
	concurrency int
}

// NewOrchestrator creates a new ingest orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}

	return &orchestrator{
		client:      cfg.Client,
		records:     cfg.Records,
		idGen:       cfg.IDGenerator,
		concurrency: concurrency,
	}, nil
}

// Run crawls input's range with bounded parallelism. Ids the API does not
// know are skipped; any other failure aborts the run before anything is
// written, so the previous snapshot stays in place.
func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		input = &RunInput{}
	}
	first, last := input.FirstID, input.LastID
	if first == 0 {
		first = 1
	}
	if last == 0 {
		last = DefaultLastID
	}
	if first < 1 || last < first {
		return nil, errors.InvalidArgumentf("invalid id range %d..%d", first, last)
	}

	runID := o.idGen.Generate()
	started := time.Now()
	slog.InfoContext(ctx, "crawl started",
		"run_id", runID,
		"first_id", first,
		"last_id", last,
		"concurrency", o.concurrency)

	chains := newChainCache(o.client)
	creatures := make([]*entities.Creature, last-first+1)
	skips := make([]*Skip, last-first+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for id := first; id <= last; id++ {
		slot := id - first
		g.Go(func() error {
			c, err := o.fetchOne(gctx, chains, id)
			if err != nil {
				if errors.IsNotFound(err) {
					slog.WarnContext(gctx, "skipping unknown creature", "run_id", runID, "id", id)
					skips[slot] = &Skip{ID: id, Reason: err.Error()}
					return nil
				}
				return errors.Wrapf(err, "failed to fetch creature %d", id)
			}
			creatures[slot] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "crawl aborted", "run_id", runID, "error", err)
		return nil, err
	}

	out := &RunOutput{RunID: runID}
	var snapshot []*entities.Creature
	for i := range creatures {
		if creatures[i] != nil {
			snapshot = append(snapshot, creatures[i])
		}
		if skips[i] != nil {
			out.Skipped = append(out.Skipped, *skips[i])
		}
	}

	if len(snapshot) == 0 {
		return nil, errors.Unavailablef("crawl %d..%d produced no creatures", first, last)
	}

	saved, err := o.records.Save(ctx, records.SaveInput{Creatures: snapshot})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save snapshot")
	}
	out.Written = saved.Written

	slog.InfoContext(ctx, "crawl finished",
		"run_id", runID,
		"written", out.Written,
		"skipped", len(out.Skipped),
		"elapsed", time.Since(started))

	return out, nil
}

func (o *orchestrator) fetchOne(ctx context.Context, chains *chainCache, id int) (*entities.Creature, error) {
	p, err := o.client.GetPokemon(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := o.client.GetSpecies(ctx, id)
	if err != nil {
		return nil, err
	}

	chainID, stage := id, evolution.BaseStage
	if url := s.ChainURL(); url != "" {
		parsed, err := evolution.ChainIDFromURL(url)
		if err != nil {
			slog.WarnContext(ctx, "unreadable evolution chain url", "id", id, "url", url)
		} else {
			chainID = parsed
			root, err := chains.get(ctx, parsed)
			if err != nil {
				if ctx.Err() != nil {
					return nil, errors.Wrap(ctx.Err(), "crawl canceled")
				}
				slog.WarnContext(ctx, "evolution chain unavailable, using base stage",
					"id", id,
					"chain_id", parsed,
					"error", err)
			} else {
				stage = evolution.StageOf(root, p.Name)
			}
		}
	}

	return Clean(p, s, chainID, stage), nil
}

// chainCache fetches each evolution chain once per run
type chainCache struct {
	client pokeapi.Client
	mu     sync.Mutex
	calls  map[int]*chainCall
}

type chainCall struct {
	done chan struct{}
	root evolution.Link
	err  error
}

func newChainCache(client pokeapi.Client) *chainCache {
	return &chainCache{client: client, calls: map[int]*chainCall{}}
}

func (c *chainCache) get(ctx context.Context, id int) (evolution.Link, error) {
	c.mu.Lock()
	call, ok := c.calls[id]
	if !ok {
		call = &chainCall{done: make(chan struct{})}
		c.calls[id] = call
		c.mu.Unlock()

		chain, err := c.client.GetEvolutionChain(ctx, id)
		if err != nil {
			call.err = err
		} else {
			call.root = chain.Chain.Link()
		}
		close(call.done)
		return call.root, call.err
	}
	c.mu.Unlock()

	select {
	case <-call.done:
		return call.root, call.err
	case <-ctx.Done():
		return evolution.Link{}, ctx.Err()
	}
}
