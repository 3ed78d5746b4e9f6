package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remwaste/skip-catalog/internal/domain"
	"github.com/remwaste/skip-catalog/internal/selection"
)

func TestCheckPlacement(t *testing.T) {
	roadOK := domain.Skip{ID: 1, Size: 4, AllowedOnRoad: true}
	roadNo := domain.Skip{ID: 2, Size: 8, AllowedOnRoad: false}

	cases := []struct {
		name        string
		skip        domain.Skip
		placement   selection.Placement
		wantWarning bool
	}{
		{"private placement never warns", roadNo, selection.PlacementPrivate, false},
		{"public with road-allowed skip", roadOK, selection.PlacementPublic, false},
		{"public with road-forbidden skip warns", roadNo, selection.PlacementPublic, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := selection.CheckPlacement(tc.skip, tc.placement)

			assert.Equal(t, tc.placement, got.Placement)
			assert.Equal(t, tc.wantWarning, got.RoadWarning)
		})
	}
}
