package ports

import "labware-import/internal/types"

// DefinitionSourcePort reads vendor definition files from storage.
type DefinitionSourcePort interface {
	// Exists reports whether a definition file is present at path.
	Exists(path string) bool

	// ReadRecord decodes the whole file at path into a RawRecord.
	ReadRecord(path string) (types.RawRecord, error)
}

// FieldLookup resolves typed values by key inside one record. Lookups fail
// with a not-found error when the key is absent and an invalid-argument
// error when the value does not convert.
type FieldLookup interface {
	Int(key string) (int, error)
	Float(key string) (float64, error)
	String(key string) (string, error)
}
