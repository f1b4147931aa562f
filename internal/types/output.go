package types

// CatalogEntry is one imported definition as written to a catalog file.
// Exactly one of the descriptor fields is set, matching Kind.
type CatalogEntry struct {
	Source         string        `yaml:"source"`
	Kind           ResourceKind  `yaml:"kind"`
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description,omitempty"`
	VolumeEquation string        `yaml:"volume_equation,omitempty"`
	Plate          *Plate        `yaml:"plate,omitempty"`
	TipRack        *TipRack      `yaml:"tip_rack,omitempty"`
	PlateCarrier   *PlateCarrier `yaml:"plate_carrier,omitempty"`
	TipCarrier     *TipCarrier   `yaml:"tip_carrier,omitempty"`
	MFXCarrier     *MFXCarrier   `yaml:"mfx_carrier,omitempty"`
}

// Resource returns the descriptor held by the entry, or nil.
func (e CatalogEntry) Resource() Resource {
	switch {
	case e.Plate != nil:
		return e.Plate
	case e.TipRack != nil:
		return e.TipRack
	case e.PlateCarrier != nil:
		return e.PlateCarrier
	case e.TipCarrier != nil:
		return e.TipCarrier
	case e.MFXCarrier != nil:
		return e.MFXCarrier
	default:
		return nil
	}
}

// CatalogSkip records a definition file that could not be imported.
type CatalogSkip struct {
	Source string `yaml:"source"`
	Reason string `yaml:"reason"`
}

type Catalog struct {
	APIVersion string         `yaml:"api_version"`
	Entries    []CatalogEntry `yaml:"entries"`
	Skipped    []CatalogSkip  `yaml:"skipped,omitempty"`
}
