package ports

import "labware-import/internal/types"

type CatalogWriterPort interface {
	WriteCatalog(path string, catalog types.Catalog) error
}

type CatalogReaderPort interface {
	ReadCatalog(path string) (types.Catalog, error)
}
