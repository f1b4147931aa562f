package app

import "labware-import/internal/types"

type ClassifyRequest struct {
	Paths []string
}

type ClassifyOutcome struct {
	Path string
	Kind types.ResourceKind
}

type ClassifyResult struct {
	Outcomes []ClassifyOutcome
}

type ImportRequest struct {
	Path    string
	Name    string
	CtrPath string
	Output  string
}

type ImportResult struct {
	Entry      types.CatalogEntry
	OutputPath string
}

type CatalogRequest struct {
	Root    string
	Output  string
	Workers int
}

type CatalogResult struct {
	OutputPath string
	Imported   int
	Skipped    []types.CatalogSkip
}

type VolumeRequest struct {
	Path    string
	CtrPath string
	Heights []float64
}

type VolumeSample struct {
	Height float64
	Volume float64
}

type VolumeResult struct {
	Resource    string
	Equation    string
	TotalHeight float64
	Boundaries  []float64
	Samples     []VolumeSample
}

type InspectRequest struct {
	CatalogPath string
}

type InspectKindSummary struct {
	Kind    types.ResourceKind
	Carrier bool
	Count   int
	Names   []string
}

type InspectResult struct {
	APIVersion string
	Kinds      []InspectKindSummary
	Skipped    []types.CatalogSkip
}
