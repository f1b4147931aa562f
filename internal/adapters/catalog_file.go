package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"labware-import/internal/ports"
	"labware-import/internal/types"
)

const CatalogAPIVersion = "labware-import/v1"

// CatalogFileAdapter stores catalogs as YAML documents.
type CatalogFileAdapter struct{}

func NewCatalogFileAdapter() CatalogFileAdapter {
	return CatalogFileAdapter{}
}

func (a CatalogFileAdapter) WriteCatalog(path string, catalog types.Catalog) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is empty")
	}
	if catalog.APIVersion == "" {
		catalog.APIVersion = CatalogAPIVersion
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create catalog directory").
				WithCause(err)
		}
	}
	data, err := yaml.Marshal(catalog)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode catalog").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write catalog").
			WithCause(err)
	}
	return nil
}

func (a CatalogFileAdapter) ReadCatalog(path string) (types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	var catalog types.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog yaml").
			WithCause(err)
	}
	if catalog.APIVersion != CatalogAPIVersion {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported catalog api_version: " + catalog.APIVersion)
	}
	return catalog, nil
}

var (
	_ ports.CatalogWriterPort = CatalogFileAdapter{}
	_ ports.CatalogReaderPort = CatalogFileAdapter{}
)
