package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemIdentifier(t *testing.T) {
	tests := []struct {
		row, column int
		want        string
	}{
		{row: 0, column: 0, want: "A1"},
		{row: 7, column: 11, want: "H12"},
		{row: 15, column: 23, want: "P24"},
		{row: 25, column: 0, want: "Z1"},
		{row: 26, column: 0, want: "AA1"},
		{row: 31, column: 47, want: "AF48"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ItemIdentifier(tt.row, tt.column))
	}
}

func TestGridSpecLocations(t *testing.T) {
	grid := GridSpec{NumItemsX: 2, NumItemsY: 3, DX: 1, DY: 2, DZ: 0.5, ItemDX: 10, ItemDY: 5}
	ids, locations := grid.Locations()
	if diff := cmp.Diff([]string{"A1", "B1", "C1", "A2", "B2", "C2"}, ids); diff != "" {
		t.Fatalf("unexpected identifiers (-want +got):\n%s", diff)
	}
	want := []Coordinate{
		{X: 1, Y: 12, Z: 0.5},
		{X: 1, Y: 7, Z: 0.5},
		{X: 1, Y: 2, Z: 0.5},
		{X: 11, Y: 12, Z: 0.5},
		{X: 11, Y: 7, Z: 0.5},
		{X: 11, Y: 2, Z: 0.5},
	}
	if diff := cmp.Diff(want, locations); diff != "" {
		t.Fatalf("unexpected locations (-want +got):\n%s", diff)
	}
}

func TestGridSpecLocationsNegativeSize(t *testing.T) {
	for _, grid := range []GridSpec{
		{NumItemsX: -1, NumItemsY: 8},
		{NumItemsX: -2, NumItemsY: -3},
	} {
		ids, locations := grid.Locations()
		assert.Empty(t, ids)
		assert.Empty(t, locations)
	}
}

func TestNewTipSpotGridCreatesFreshTips(t *testing.T) {
	calls := 0
	spots := NewTipSpotGrid(GridSpec{NumItemsX: 2, NumItemsY: 2, SizeX: 9, SizeY: 9, SizeZ: 20}, func() Tip {
		calls++
		return Tip{TipType: "t"}
	})
	require.Len(t, spots, 4)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 9.0, spots[3].SizeX)
}

func TestNewCarrierSitesNumbersInOrder(t *testing.T) {
	sites := NewCarrierSites([]SiteRecord{
		{Index: 3, Location: Coordinate{Y: 1}, Width: 127, Height: 86},
		{Index: 1, Location: Coordinate{Y: 2}, Width: 120, Height: 80},
	})
	require.Len(t, sites, 2)
	assert.Equal(t, 0, sites[0].SpotIndex)
	assert.Equal(t, 1, sites[1].SpotIndex)
	assert.Equal(t, 120.0, sites[1].SizeX)
	assert.Equal(t, 80.0, sites[1].SizeY)
}

func TestResourceRename(t *testing.T) {
	resources := []Resource{
		&Plate{Name: "a"},
		&TipRack{Name: "a"},
		&PlateCarrier{Carrier: Carrier{Name: "a"}},
		&TipCarrier{Carrier: Carrier{Name: "a"}},
		&MFXCarrier{Carrier: Carrier{Name: "a"}},
	}
	for _, resource := range resources {
		resource.Rename("b")
		assert.Equal(t, "b", resource.ResourceName(), string(resource.ResourceKind()))
	}
	assert.True(t, ResourceKindMFXCarrier.IsCarrier())
	assert.False(t, ResourceKindPlate.IsCarrier())
}
