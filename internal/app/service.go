package app

import (
	"labware-import/internal/adapters"
	"labware-import/internal/core"
	"labware-import/internal/policies"
	"labware-import/internal/ports"
)

type Service struct {
	Definitions   ports.DefinitionSourcePort
	Scanner       ports.DefinitionScanPort
	CatalogWriter ports.CatalogWriterPort
	CatalogReader ports.CatalogReaderPort
	Corrections   ports.CorrectionPort
	Assembler     core.Assembler
}

func NewService() Service {
	return NewServiceWithCorrections(policies.NewDefaultCorrectionPolicy())
}

// NewServiceWithCorrections wires the file adapters with a caller supplied
// correction table.
func NewServiceWithCorrections(corrections ports.CorrectionPort) Service {
	definitions := adapters.NewDefinitionFileAdapter()
	catalog := adapters.NewCatalogFileAdapter()
	return Service{
		Definitions:   definitions,
		Scanner:       adapters.NewWorkspaceAdapter(),
		CatalogWriter: catalog,
		CatalogReader: catalog,
		Corrections:   corrections,
		Assembler:     core.NewAssembler(definitions, corrections),
	}
}
