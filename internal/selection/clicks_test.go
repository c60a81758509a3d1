package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dexboard/internal/selection"
)

func TestResolveClick(t *testing.T) {
	testCases := []struct {
		name   string
		clicks []selection.Click
		wantID int
		wantOK bool
	}{
		{
			name:   "no controls",
			clicks: nil,
		},
		{
			name:   "nothing clicked",
			clicks: []selection.Click{{ID: 1}, {ID: 2}},
		},
		{
			name:   "single click",
			clicks: []selection.Click{{ID: 1}, {ID: 2, Count: 1}, {ID: 3}},
			wantID: 2,
			wantOK: true,
		},
		{
			name:   "highest counter wins",
			clicks: []selection.Click{{ID: 1, Count: 2}, {ID: 2, Count: 5}, {ID: 3, Count: 1}},
			wantID: 2,
			wantOK: true,
		},
		{
			name:   "tie goes to first registered",
			clicks: []selection.Click{{ID: 7}, {ID: 4, Count: 3}, {ID: 9, Count: 3}},
			wantID: 4,
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := selection.ResolveClick(tc.clicks)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, id)
		})
	}
}
