package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dexboard/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("fetch")

	a, b := gen.Generate(), gen.Generate()

	assert.True(t, strings.HasPrefix(a, "fetch_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.TrimPrefix(a, "fetch_"), 36)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("run")

	assert.Equal(t, "run_1", gen.Generate())
	assert.Equal(t, "run_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
