package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"labware-import/internal/ports"
	"labware-import/internal/shared"
	"labware-import/internal/types"
)

const defaultLidHeight = 10

// ReadSegments reads the well segments of a .ctr record, top segment first.
// Only the top and bottom segments must carry a shape code; others default
// to -1 when it is missing.
func ReadSegments(rec ports.FieldLookup) ([]types.GeometrySegment, error) {
	count, err := readCount(rec, "Segments")
	if err != nil {
		return nil, err
	}
	segments := make([]types.GeometrySegment, 0, count)
	for i := 1; i <= count; i++ {
		equation, err := rec.String(fmt.Sprintf("%d.EqnOfVol", i))
		if err != nil {
			return nil, err
		}
		maxHeight, err := rec.Float(fmt.Sprintf("%d.Max", i))
		if err != nil {
			return nil, err
		}
		shape, err := rec.Int(fmt.Sprintf("%d.Shape", i))
		if err != nil {
			if !IsKeyNotFound(err) || i == 1 || i == count {
				return nil, err
			}
			shape = -1
		}
		segments = append(segments, types.GeometrySegment{
			Index:     i,
			Shape:     shape,
			MaxHeight: maxHeight,
			Equation:  equation,
		})
	}
	return segments, nil
}

// PlateForWriting assembles the plate described by the .rck file at path and
// its .ctr well definition. When ctrPath is empty the companion path is
// derived from path. It returns the plate, its description and the well
// volume function.
func (a Assembler) PlateForWriting(ctx context.Context, path string, ctrPath string) (*types.Plate, string, VolumeFunction, error) {
	rec, err := a.readRecord(path)
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}
	dims, err := readDimensions(rec)
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}
	columns, rows, err := readGridSize(rec)
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}
	model := shared.ModelName(path)
	axes, err := ReconcileGrid(rec, model, a.corrections)
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}

	if ctrPath == "" {
		ctrPath = a.corrections.CompanionPath(path)
	}
	ctr, err := a.readRecord(ctrPath)
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}
	segments, err := ReadSegments(ctr)
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}
	volume, err := SynthesizeVolume(model, segments)
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}

	wellX, wellY, err := readFootprint(ctr)
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}
	depth, err := ctr.Float("Depth")
	if err != nil {
		return nil, "", VolumeFunction{}, err
	}
	base, err := ctr.Float("BaseMM")
	if err != nil {
		if !IsKeyNotFound(err) {
			return nil, "", VolumeFunction{}, err
		}
		base = 0
	}

	bottom := BottomTypeForShape(segments[len(segments)-1].Shape)
	crossSection := CrossSectionForShape(segments[0].Shape)
	corner := axes.WithBorder(wellX, wellY)

	plate := &types.Plate{
		Name:      model,
		Model:     model,
		SizeX:     dims.X,
		SizeY:     dims.Y,
		SizeZ:     dims.Z,
		NumItemsX: columns,
		NumItemsY: rows,
		LidHeight: defaultLidHeight,
		Wells: types.NewWellGrid(types.GridSpec{
			NumItemsX: columns,
			NumItemsY: rows,
			DX:        corner.DX,
			DY:        corner.DY,
			DZ:        base,
			ItemDX:    axes.PitchX,
			ItemDY:    axes.PitchY,
			SizeX:     wellX,
			SizeY:     wellY,
			SizeZ:     depth,
		}, bottom, crossSection),
	}
	log.Ctx(ctx).Debug().
		Str("model", model).
		Str("ctr", ctrPath).
		Int("segments", len(segments)).
		Str("bottom", string(bottom)).
		Msg("plate assembled")
	return plate, model, volume, nil
}

// Plate assembles the plate at path and names it name.
func (a Assembler) Plate(ctx context.Context, path string, name string, ctrPath string) (*types.Plate, error) {
	plate, _, _, err := a.PlateForWriting(ctx, path, ctrPath)
	if err != nil {
		return nil, err
	}
	plate.Rename(name)
	return plate, nil
}
