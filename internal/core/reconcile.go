package core

import (
	"gonum.org/v1/gonum/floats/scalar"

	"labware-import/internal/ports"
	"labware-import/internal/types"
)

const cornerPrecision = 4

// CornerFromBoundary converts a vendor boundary coordinate, which sits half an
// item pitch inside the first item, into the lower left corner of that item.
// The result is rounded half-to-even to four decimals.
func CornerFromBoundary(boundary float64, itemPitch float64) float64 {
	return scalar.RoundEven(boundary-itemPitch/2, cornerPrecision)
}

// BorderOffset is the padding between an item's cell pitch and its actual
// footprint on one side.
func BorderOffset(pitch float64, itemSize float64) float64 {
	return (pitch - itemSize) / 2
}

// GridAxes holds the reconciled corner and pitch of a grid along x and y.
type GridAxes struct {
	DX     float64
	DY     float64
	PitchX float64
	PitchY float64
}

// ReconcileGrid reads BndryX/BndryY together with the item pitch Dx/Dy and
// returns corner based coordinates. Corrections for model run after the
// corners are computed, so they change the pitch only.
func ReconcileGrid(rec ports.FieldLookup, model string, corrections ports.CorrectionPort) (GridAxes, error) {
	pitchX, err := rec.Float("Dx")
	if err != nil {
		return GridAxes{}, err
	}
	pitchY, err := rec.Float("Dy")
	if err != nil {
		return GridAxes{}, err
	}
	boundaryX, err := rec.Float("BndryX")
	if err != nil {
		return GridAxes{}, err
	}
	boundaryY, err := rec.Float("BndryY")
	if err != nil {
		return GridAxes{}, err
	}
	axes := GridAxes{
		DX:     CornerFromBoundary(boundaryX, pitchX),
		DY:     CornerFromBoundary(boundaryY, pitchY),
		PitchX: pitchX,
		PitchY: pitchY,
	}
	if corrections != nil {
		axes.PitchX, _ = corrections.Apply(model, types.CorrectionFieldPitchX, axes.PitchX)
		axes.PitchY, _ = corrections.Apply(model, types.CorrectionFieldPitchY, axes.PitchY)
	}
	return axes, nil
}

// WithBorder shifts the corners inward by the padding between the pitch and
// an item footprint of sizeX by sizeY.
func (a GridAxes) WithBorder(sizeX float64, sizeY float64) GridAxes {
	a.DX += BorderOffset(a.PitchX, sizeX)
	a.DY += BorderOffset(a.PitchY, sizeY)
	return a
}
