package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"labware-import/internal/ports"
	"labware-import/internal/types"
)

// DefinitionFileAdapter reads vendor definition files from the local disk.
// Files are ISO-8859-1, so every byte is one character and the bytes are
// kept as they are.
type DefinitionFileAdapter struct{}

func NewDefinitionFileAdapter() DefinitionFileAdapter {
	return DefinitionFileAdapter{}
}

func (a DefinitionFileAdapter) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (a DefinitionFileAdapter) ReadRecord(path string) (types.RawRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.RawRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("definition file not found: " + path).
			WithCause(err)
	}
	return types.RawRecord{Path: path, Text: string(content)}, nil
}

var _ ports.DefinitionSourcePort = DefinitionFileAdapter{}
