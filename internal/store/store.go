// Package store is the in-memory creature table every view reads from.
// A Store is built once and never modified afterwards, so it is safe for
// concurrent readers.
package store

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/repositories/records"
)

// maxSuggestDistance bounds how far a name may be from the query to be offered
const maxSuggestDistance = 3

// Store holds the loaded creatures sorted by id
type Store struct {
	creatures []*entities.Creature
	byID      map[int]*entities.Creature
	byName    map[string]*entities.Creature
	failures  []records.CoercionFailure
	err       error
}

// Load reads the snapshot from repo. It never fails: when the source cannot
// be read the returned store is empty and Err reports why.
func Load(ctx context.Context, repo records.Repository) *Store {
	if repo == nil {
		return Unavailable(errors.Unavailable("no records repository configured"))
	}

	out, err := repo.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "creature data unavailable", "error", err)
		return Unavailable(errors.WrapWithCode(err, errors.CodeUnavailable, "creature data could not be loaded"))
	}

	for _, f := range out.Failures {
		slog.WarnContext(ctx, "value could not be read as a number",
			"row", f.Row,
			"field", f.Field,
			"value", f.Value)
	}

	s := New(out.Creatures)
	s.failures = out.Failures

	slog.InfoContext(ctx, "creature data loaded",
		"records", s.Len(),
		"coercion_failures", len(s.failures))

	return s
}

// New builds a store from creatures, sorting them by id. Every row is kept
// for All; when two rows share an id the first one wins for ByID.
func New(creatures []*entities.Creature) *Store {
	s := &Store{
		byID:   make(map[int]*entities.Creature, len(creatures)),
		byName: make(map[string]*entities.Creature, len(creatures)),
	}

	for _, c := range creatures {
		if c == nil {
			continue
		}
		if _, dup := s.byID[c.ID]; !dup {
			s.byID[c.ID] = c
		}
		s.creatures = append(s.creatures, c)
	}

	sort.SliceStable(s.creatures, func(i, j int) bool {
		return s.creatures[i].ID < s.creatures[j].ID
	})

	for _, c := range s.creatures {
		key := normalize(c.Name)
		if _, taken := s.byName[key]; !taken && key != "" {
			s.byName[key] = c
		}
	}

	return s
}

// Unavailable returns an empty store that reports err
func Unavailable(err error) *Store {
	return &Store{
		byID:   map[int]*entities.Creature{},
		byName: map[string]*entities.Creature{},
		err:    err,
	}
}

// Err returns the load error, an errors.Unavailable, or nil
func (s *Store) Err() error {
	return s.err
}

// Available reports whether the data loaded
func (s *Store) Available() bool {
	return s.err == nil
}

// Len returns the number of loaded rows
func (s *Store) Len() int {
	return len(s.creatures)
}

// Failures returns the coercion failures seen while loading
func (s *Store) Failures() []records.CoercionFailure {
	return s.failures
}

// ByID looks up a creature by identifier
func (s *Store) ByID(id int) (*entities.Creature, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// ByName looks up a creature by exact name, ignoring case and surrounding space
func (s *Store) ByName(name string) (*entities.Creature, bool) {
	c, ok := s.byName[normalize(name)]
	return c, ok
}

// All yields every creature in id order. The sequence can be ranged over
// any number of times.
func (s *Store) All() iter.Seq[*entities.Creature] {
	return slices.Values(s.creatures)
}

// Suggest returns up to n creatures whose names are closest to name,
// nearest first, ties in id order. Names further than a few edits away
// are never suggested.
func (s *Store) Suggest(name string, n int) []*entities.Creature {
	query := normalize(name)
	if query == "" || n <= 0 {
		return nil
	}

	type candidate struct {
		creature *entities.Creature
		distance int
	}

	var candidates []candidate
	for _, c := range s.creatures {
		dist := levenshtein.ComputeDistance(query, normalize(c.Name))
		if dist > maxSuggestDistance {
			continue
		}
		candidates = append(candidates, candidate{creature: c, distance: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	out := make([]*entities.Creature, 0, min(n, len(candidates)))
	for _, c := range candidates[:min(n, len(candidates))] {
		out = append(out, c.creature)
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
