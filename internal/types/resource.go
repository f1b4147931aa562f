package types

import "fmt"

type Coordinate struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Resource is implemented by every assembled descriptor.
type Resource interface {
	ResourceName() string
	ResourceKind() ResourceKind
	Rename(name string)
}

type Well struct {
	Identifier       string           `yaml:"identifier"`
	Location         Coordinate       `yaml:"location"`
	SizeX            float64          `yaml:"size_x"`
	SizeY            float64          `yaml:"size_y"`
	SizeZ            float64          `yaml:"size_z"`
	BottomType       WellBottomType   `yaml:"bottom_type"`
	CrossSectionType CrossSectionType `yaml:"cross_section_type"`
}

type Tip struct {
	TipType        string  `yaml:"tip_type"`
	HasFilter      bool    `yaml:"has_filter"`
	TotalTipLength float64 `yaml:"total_tip_length"`
	MaximalVolume  float64 `yaml:"maximal_volume"`
	FittingDepth   float64 `yaml:"fitting_depth"`
}

type TipSpot struct {
	Identifier string     `yaml:"identifier"`
	Location   Coordinate `yaml:"location"`
	SizeX      float64    `yaml:"size_x"`
	SizeY      float64    `yaml:"size_y"`
	SizeZ      float64    `yaml:"size_z"`
	Tip        Tip        `yaml:"tip"`
}

type CarrierSite struct {
	SpotIndex int        `yaml:"spot"`
	Location  Coordinate `yaml:"location"`
	SizeX     float64    `yaml:"size_x"`
	SizeY     float64    `yaml:"size_y"`
}

type Plate struct {
	Name      string  `yaml:"name"`
	Model     string  `yaml:"model"`
	SizeX     float64 `yaml:"size_x"`
	SizeY     float64 `yaml:"size_y"`
	SizeZ     float64 `yaml:"size_z"`
	NumItemsX int     `yaml:"num_items_x"`
	NumItemsY int     `yaml:"num_items_y"`
	LidHeight float64 `yaml:"lid_height"`
	Wells     []Well  `yaml:"wells"`
}

func (p *Plate) ResourceName() string       { return p.Name }
func (p *Plate) ResourceKind() ResourceKind { return ResourceKindPlate }
func (p *Plate) Rename(name string)         { p.Name = name }

type TipRack struct {
	Name      string    `yaml:"name"`
	Model     string    `yaml:"model"`
	SizeX     float64   `yaml:"size_x"`
	SizeY     float64   `yaml:"size_y"`
	SizeZ     float64   `yaml:"size_z"`
	NumItemsX int       `yaml:"num_items_x"`
	NumItemsY int       `yaml:"num_items_y"`
	Spots     []TipSpot `yaml:"spots"`
}

func (r *TipRack) ResourceName() string       { return r.Name }
func (r *TipRack) ResourceKind() ResourceKind { return ResourceKindTipRack }
func (r *TipRack) Rename(name string)         { r.Name = name }

// Carrier holds the fields shared by every carrier variant.
type Carrier struct {
	Name  string        `yaml:"name"`
	Model string        `yaml:"model"`
	SizeX float64       `yaml:"size_x"`
	SizeY float64       `yaml:"size_y"`
	SizeZ float64       `yaml:"size_z"`
	Sites []CarrierSite `yaml:"sites"`
}

func (c *Carrier) ResourceName() string { return c.Name }
func (c *Carrier) Rename(name string)   { c.Name = name }

type PlateCarrier struct {
	Carrier `yaml:",inline"`
}

func (c *PlateCarrier) ResourceKind() ResourceKind { return ResourceKindPlateCarrier }

type TipCarrier struct {
	Carrier `yaml:",inline"`
}

func (c *TipCarrier) ResourceKind() ResourceKind { return ResourceKindTipCarrier }

type MFXCarrier struct {
	Carrier `yaml:",inline"`
}

func (c *MFXCarrier) ResourceKind() ResourceKind { return ResourceKindMFXCarrier }

// GridSpec describes an equally spaced two-dimensional item layout. DX and DY
// locate the lower left corner of the first item; ItemDX and ItemDY are the
// pitch between neighbouring items.
type GridSpec struct {
	NumItemsX int
	NumItemsY int
	DX        float64
	DY        float64
	DZ        float64
	ItemDX    float64
	ItemDY    float64
	SizeX     float64
	SizeY     float64
	SizeZ     float64
}

// Locations returns item identifiers and positions column by column. Row A is
// the row with the highest y coordinate.
func (g GridSpec) Locations() ([]string, []Coordinate) {
	n := max(g.NumItemsX, 0) * max(g.NumItemsY, 0)
	ids := make([]string, 0, n)
	locations := make([]Coordinate, 0, n)
	for i := 0; i < g.NumItemsX; i++ {
		for j := 0; j < g.NumItemsY; j++ {
			ids = append(ids, ItemIdentifier(j, i))
			locations = append(locations, Coordinate{
				X: g.DX + float64(i)*g.ItemDX,
				Y: g.DY + float64(g.NumItemsY-j-1)*g.ItemDY,
				Z: g.DZ,
			})
		}
	}
	return ids, locations
}

// ItemIdentifier formats a zero based row and column as "A1" style text.
func ItemIdentifier(row int, column int) string {
	prefix := ""
	for n := row; ; n = n/26 - 1 {
		prefix = string(rune('A'+n%26)) + prefix
		if n < 26 {
			break
		}
	}
	return fmt.Sprintf("%s%d", prefix, column+1)
}

func NewWellGrid(grid GridSpec, bottom WellBottomType, crossSection CrossSectionType) []Well {
	ids, locations := grid.Locations()
	wells := make([]Well, 0, len(ids))
	for i, id := range ids {
		wells = append(wells, Well{
			Identifier:       id,
			Location:         locations[i],
			SizeX:            grid.SizeX,
			SizeY:            grid.SizeY,
			SizeZ:            grid.SizeZ,
			BottomType:       bottom,
			CrossSectionType: crossSection,
		})
	}
	return wells
}

func NewTipSpotGrid(grid GridSpec, makeTip func() Tip) []TipSpot {
	ids, locations := grid.Locations()
	spots := make([]TipSpot, 0, len(ids))
	for i, id := range ids {
		spots = append(spots, TipSpot{
			Identifier: id,
			Location:   locations[i],
			SizeX:      grid.SizeX,
			SizeY:      grid.SizeY,
			SizeZ:      grid.SizeZ,
			Tip:        makeTip(),
		})
	}
	return spots
}

// NewCarrierSites numbers the records in the order given. Spot 0 is the
// first record, not the record with source index 1.
func NewCarrierSites(records []SiteRecord) []CarrierSite {
	sites := make([]CarrierSite, 0, len(records))
	for i, record := range records {
		sites = append(sites, CarrierSite{
			SpotIndex: i,
			Location:  record.Location,
			SizeX:     record.Width,
			SizeY:     record.Height,
		})
	}
	return sites
}
