// Package evolution turns a species evolution graph into stage numbers
package evolution

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/dexboard/internal/errors"
)

// BaseStage is the stage of a chain root and of any species without relatives
const BaseStage = 1

// Link is one node of an evolution graph: a species and the species it
// evolves into. The graph is a tree rooted at the base form.
type Link struct {
	Species   string
	EvolvesTo []Link
}

// Stages walks the graph depth first and returns the stage of every species
// in it. The root gets BaseStage and each child one more than its parent.
func Stages(root Link) map[string]int {
	stages := make(map[string]int)
	walk(root, BaseStage, stages)
	return stages
}

func walk(link Link, stage int, stages map[string]int) {
	stages[link.Species] = stage
	for _, next := range link.EvolvesTo {
		walk(next, stage+1, stages)
	}
}

// StageOf returns the stage of species within root, or BaseStage when the
// species does not appear in the graph.
func StageOf(root Link, species string) int {
	if stage, ok := Stages(root)[species]; ok {
		return stage
	}
	return BaseStage
}

// ChainIDFromURL extracts the numeric chain id from an evolution chain URL
// such as "https://pokeapi.co/api/v2/evolution-chain/1/".
func ChainIDFromURL(url string) (int, error) {
	trimmed := strings.Trim(url, "/")
	if trimmed == "" {
		return 0, errors.InvalidArgument("evolution chain url is empty")
	}

	tail := trimmed[strings.LastIndex(trimmed, "/")+1:]
	id, err := strconv.Atoi(tail)
	if err != nil {
		return 0, errors.InvalidArgumentf("evolution chain url %q has no numeric id", url)
	}
	return id, nil
}
