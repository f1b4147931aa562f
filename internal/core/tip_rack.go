package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"labware-import/internal/shared"
	"labware-import/internal/types"
)

// Newer rack definitions store the tip type in PropertyValue.6; older ones
// use PropertyValue.4.
var tipTypeKeys = []string{"PropertyValue.6", "PropertyValue.4"}

// TipRackForWriting assembles the tip rack described by the file at path and
// returns it with its vendor description.
func (a Assembler) TipRackForWriting(ctx context.Context, path string) (*types.TipRack, string, error) {
	rec, err := a.readRecord(path)
	if err != nil {
		return nil, "", err
	}
	dims, err := readDimensions(rec)
	if err != nil {
		return nil, "", err
	}
	tipType, err := FirstString(rec, tipTypeKeys...)
	if err != nil {
		return nil, "", err
	}
	makeTip, err := TipCreator(tipType)
	if err != nil {
		return nil, "", err
	}
	// Tip spots have no border; the spot footprint is the pitch itself.
	axes, err := ReconcileGrid(rec, shared.ModelName(path), nil)
	if err != nil {
		return nil, "", err
	}
	base, err := rec.Float("Cntr.1.base")
	if err != nil {
		return nil, "", err
	}
	columns, rows, err := readGridSize(rec)
	if err != nil {
		return nil, "", err
	}
	description, err := rec.String("Description")
	if err != nil {
		return nil, "", err
	}

	name := shared.IdentifierModelName(shared.ModelName(path))
	rack := &types.TipRack{
		Name:      name,
		Model:     name,
		SizeX:     dims.X,
		SizeY:     dims.Y,
		SizeZ:     dims.Z,
		NumItemsX: columns,
		NumItemsY: rows,
		Spots: types.NewTipSpotGrid(types.GridSpec{
			NumItemsX: columns,
			NumItemsY: rows,
			DX:        axes.DX,
			DY:        axes.DY,
			DZ:        base,
			ItemDX:    axes.PitchX,
			ItemDY:    axes.PitchY,
			SizeX:     axes.PitchX,
			SizeY:     axes.PitchY,
			SizeZ:     dims.Z,
		}, makeTip),
	}
	log.Ctx(ctx).Debug().
		Str("model", name).
		Str("tip_type", tipType).
		Int("spots", len(rack.Spots)).
		Msg("tip rack assembled")
	return rack, description, nil
}

// TipRack assembles the tip rack at path and names it name.
func (a Assembler) TipRack(ctx context.Context, path string, name string) (*types.TipRack, error) {
	rack, _, err := a.TipRackForWriting(ctx, path)
	if err != nil {
		return nil, err
	}
	rack.Rename(name)
	return rack, nil
}
