package render_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dexboard/internal/render"
	"github.com/KirkDiggler/dexboard/internal/repositories/records"
	"github.com/KirkDiggler/dexboard/internal/selection"
	"github.com/KirkDiggler/dexboard/internal/store"
)

const csvHeader = "id,name,evolution_chain_id,evolution_stage,sprite_url,type_1,type_2,abilities,height,weight,hp,attack,defense,special-attack,special-defense,speed"

// loadCSV writes lines to a data file and loads it the way the dashboard does
func loadCSV(t *testing.T, lines ...string) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "creatures.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))

	repo, err := records.NewCSVRepository(&records.Config{Path: path})
	require.NoError(t, err)

	return store.Load(context.Background(), repo)
}

func TestRenderLoadedDuplicateStages(t *testing.T) {
	loaded := loadCSV(t,
		csvHeader,
		"1,a,5,1,,grass,,,5,10,40,40,40,40,40,40",
		"2,b,5,2,,grass,,,8,20,50,50,50,50,50,50",
		"2,c,5,2,,grass,,,9,30,60,60,60,60,60,60",
	)
	require.NoError(t, loaded.Err())

	page := render.Render(render.PageInput{
		Records: loaded,
		State:   selection.State{Viewed: selection.Some(1)},
	})

	require.Equal(t, render.KindDetail, page.Kind)
	rows := page.Detail.Tree.Rows
	require.Len(t, rows, 2)

	var first, second []string
	for _, n := range rows[0].Nodes {
		first = append(first, n.Name)
	}
	for _, n := range rows[1].Nodes {
		second = append(second, n.Name)
	}
	assert.Equal(t, []string{"A"}, first)
	assert.Equal(t, []string{"B", "C"}, second)
	assert.True(t, rows[0].Nodes[0].Current)
}

func TestRenderLoadedHeaderOnlyIsUnavailable(t *testing.T) {
	loaded := loadCSV(t, csvHeader)

	assert.False(t, loaded.Available())

	page := render.Render(render.PageInput{Records: loaded})

	assert.Equal(t, render.KindUnavailable, page.Kind)
	assert.Equal(t, render.MessageUnavailable, page.Message)
	assert.Nil(t, page.Gallery)
}
