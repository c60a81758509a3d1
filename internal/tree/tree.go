// Package tree groups the members of an evolution chain by stage
package tree

import (
	"iter"
	"slices"

	"github.com/KirkDiggler/dexboard/internal/entities"
)

// StageGroup is every chain member sharing one literal stage value, in
// record order.
type StageGroup struct {
	Stage     int
	Creatures []*entities.Creature
}

// StageSequence is a chain partitioned into stage groups, sorted by
// ascending stage.
type StageSequence struct {
	ChainID int
	Groups  []StageGroup
}

// Len returns the number of creatures across all groups
func (s StageSequence) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Creatures)
	}
	return n
}

// Build collects every record with chainID and groups them by stage.
// Stages are taken as stored: gaps and duplicates are kept, nothing is
// renumbered.
func Build(chainID int, records iter.Seq[*entities.Creature]) StageSequence {
	byStage := make(map[int][]*entities.Creature)
	var stages []int

	for c := range records {
		if !c.HasChain() || c.ChainID != chainID {
			continue
		}
		if _, seen := byStage[c.Stage]; !seen {
			stages = append(stages, c.Stage)
		}
		byStage[c.Stage] = append(byStage[c.Stage], c)
	}

	slices.Sort(stages)

	seq := StageSequence{ChainID: chainID, Groups: make([]StageGroup, 0, len(stages))}
	for _, stage := range stages {
		seq.Groups = append(seq.Groups, StageGroup{Stage: stage, Creatures: byStage[stage]})
	}
	return seq
}

// BuildFor builds the sequence for target's chain. It returns false when
// target has no chain identifier.
func BuildFor(target *entities.Creature, records iter.Seq[*entities.Creature]) (StageSequence, bool) {
	if target == nil || !target.HasChain() {
		return StageSequence{}, false
	}
	return Build(target.ChainID, records), true
}
