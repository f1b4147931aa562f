package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"labware-import/internal/ports"
	"labware-import/internal/types"
)

// Assembler turns definition files into labware descriptors.
//
// Every resource kind has two entry points. The ForWriting form keeps the
// vendor description (and for plates the volume function) for catalog
// tooling. The plain form takes the resource name from the caller and drops
// the rest.
type Assembler struct {
	source      ports.DefinitionSourcePort
	corrections ports.CorrectionPort
	classifier  Classifier
}

func NewAssembler(source ports.DefinitionSourcePort, corrections ports.CorrectionPort) Assembler {
	return Assembler{
		source:      source,
		corrections: corrections,
		classifier:  NewClassifier(source),
	}
}

func (a Assembler) Classifier() Classifier {
	return a.classifier
}

func (a Assembler) readRecord(path string) (Record, error) {
	raw, err := a.source.ReadRecord(path)
	if err != nil {
		return Record{}, err
	}
	return NewRecord(raw), nil
}

// Dimensions are the outer bounding box of a resource.
type Dimensions struct {
	X float64
	Y float64
	Z float64
}

func readDimensions(rec ports.FieldLookup) (Dimensions, error) {
	var dims Dimensions
	var err error
	if dims.X, err = rec.Float("Dim.Dx"); err != nil {
		return Dimensions{}, err
	}
	if dims.Y, err = rec.Float("Dim.Dy"); err != nil {
		return Dimensions{}, err
	}
	if dims.Z, err = rec.Float("Dim.Dz"); err != nil {
		return Dimensions{}, err
	}
	return dims, nil
}

// readFootprint reads the x/y extent of an item whose height is stored
// elsewhere, such as a well in a .ctr record.
func readFootprint(rec ports.FieldLookup) (float64, float64, error) {
	x, err := rec.Float("Dim.Dx")
	if err != nil {
		return 0, 0, err
	}
	y, err := rec.Float("Dim.Dy")
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func readGridSize(rec ports.FieldLookup) (int, int, error) {
	columns, err := readCount(rec, "Columns")
	if err != nil {
		return 0, 0, err
	}
	rows, err := readCount(rec, "Rows")
	if err != nil {
		return 0, 0, err
	}
	return columns, rows, nil
}

func readCount(rec ports.FieldLookup, key string) (int, error) {
	count, err := rec.Int(key)
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("negative %s %d", key, count))
	}
	return count, nil
}

// AssembleForWriting classifies the file at path and assembles it into a
// catalog entry that keeps the vendor description.
func (a Assembler) AssembleForWriting(ctx context.Context, path string) (types.CatalogEntry, error) {
	assert.NotEmpty(ctx, path, "definition path must be set")
	kind, err := a.classifier.Classify(ctx, path)
	if err != nil {
		return types.CatalogEntry{}, err
	}
	entry := types.CatalogEntry{Source: path, Kind: kind}
	switch kind {
	case types.ResourceKindPlate:
		plate, description, volume, err := a.PlateForWriting(ctx, path, "")
		if err != nil {
			return types.CatalogEntry{}, err
		}
		entry.Plate = plate
		entry.Description = description
		entry.VolumeEquation = volume.String()
	case types.ResourceKindTipRack:
		rack, description, err := a.TipRackForWriting(ctx, path)
		if err != nil {
			return types.CatalogEntry{}, err
		}
		entry.TipRack = rack
		entry.Description = description
	case types.ResourceKindPlateCarrier:
		carrier, description, err := a.PlateCarrierForWriting(ctx, path)
		if err != nil {
			return types.CatalogEntry{}, err
		}
		entry.PlateCarrier = carrier
		entry.Description = description
	case types.ResourceKindTipCarrier:
		carrier, description, err := a.TipCarrierForWriting(ctx, path)
		if err != nil {
			return types.CatalogEntry{}, err
		}
		entry.TipCarrier = carrier
		entry.Description = description
	case types.ResourceKindMFXCarrier:
		carrier, description, err := a.FlexCarrierForWriting(ctx, path)
		if err != nil {
			return types.CatalogEntry{}, err
		}
		entry.MFXCarrier = carrier
		entry.Description = description
	default:
		return types.CatalogEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeUnimplemented).
			WithMsg(fmt.Sprintf("%s is not supported: %s", kind, path))
	}
	entry.Name = entry.Resource().ResourceName()
	log.Ctx(ctx).Debug().
		Str("path", path).
		Str("kind", string(kind)).
		Str("name", entry.Name).
		Msg("definition assembled")
	return entry, nil
}

// Assemble classifies and assembles the file at path and names the result.
func (a Assembler) Assemble(ctx context.Context, path string, name string) (types.Resource, error) {
	entry, err := a.AssembleForWriting(ctx, path)
	if err != nil {
		return nil, err
	}
	resource := entry.Resource()
	if name != "" {
		resource.Rename(name)
	}
	return resource, nil
}
