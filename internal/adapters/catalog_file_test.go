package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labware-import/internal/types"
)

func TestCatalogFileAdapterWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.yaml")
	carrier := &types.PlateCarrier{Carrier: types.Carrier{
		Name:  "PLT_CAR_L5AC_A00",
		Model: "PLT_CAR_L5AC_A00",
		SizeX: 135,
		SizeY: 497,
		SizeZ: 130,
		Sites: []types.CarrierSite{{SpotIndex: 0, Location: types.Coordinate{X: 4, Y: 8.5, Z: 111.75}, SizeX: 127, SizeY: 86}},
	}}
	catalog := types.Catalog{
		Entries: []types.CatalogEntry{{
			Source:       "PLT_CAR_L5AC_A00.rck",
			Kind:         types.ResourceKindPlateCarrier,
			Name:         "PLT_CAR_L5AC_A00",
			Description:  "Carrier for 5 plates",
			PlateCarrier: carrier,
		}},
		Skipped: []types.CatalogSkip{{Source: "SMP_CAR_24.rck", Reason: "tube_carrier is not supported"}},
	}

	adapter := NewCatalogFileAdapter()
	require.NoError(t, adapter.WriteCatalog(path, catalog))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api_version: labware-import/v1")
	assert.Contains(t, string(data), "plate_carrier:")

	got, err := adapter.ReadCatalog(path)
	require.NoError(t, err)
	catalog.APIVersion = CatalogAPIVersion
	if diff := cmp.Diff(catalog, got); diff != "" {
		t.Fatalf("unexpected catalog (-want +got):\n%s", diff)
	}
}

func TestCatalogFileAdapterErrors(t *testing.T) {
	dir := t.TempDir()
	adapter := NewCatalogFileAdapter()

	err := adapter.WriteCatalog(" ", types.Catalog{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = adapter.ReadCatalog(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	wrongVersion := filepath.Join(dir, "old.yaml")
	require.NoError(t, os.WriteFile(wrongVersion, []byte("api_version: labware-import/v0\nentries: []\n"), 0644))
	_, err = adapter.ReadCatalog(wrongVersion)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("entries: [\n"), 0644))
	_, err = adapter.ReadCatalog(broken)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
