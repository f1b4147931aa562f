package core

import "labware-import/internal/types"

// Segment shape codes used in .ctr files. Codes 4 and 5 only occur on the
// bottom segment. Code 2 (inverted cone) has no bottom mapping yet.
const (
	ShapeCylinder     = 0
	ShapeRectangle    = 1
	ShapeInvertedCone = 2
	ShapeVCone        = 3
	ShapeRoundedBase  = 4
	ShapeVConeBase    = 5
)

var bottomTypeByShape = map[int]types.WellBottomType{
	ShapeCylinder:    types.WellBottomFlat,
	ShapeRectangle:   types.WellBottomFlat,
	ShapeVCone:       types.WellBottomV,
	ShapeRoundedBase: types.WellBottomU,
	ShapeVConeBase:   types.WellBottomV,
}

var crossSectionByShape = map[int]types.CrossSectionType{
	ShapeCylinder:  types.CrossSectionCircle,
	ShapeRectangle: types.CrossSectionRectangle,
}

// BottomTypeForShape maps the bottom segment's shape code. Unknown codes give
// WellBottomUnknown.
func BottomTypeForShape(code int) types.WellBottomType {
	if bottom, ok := bottomTypeByShape[code]; ok {
		return bottom
	}
	return types.WellBottomUnknown
}

// CrossSectionForShape maps the top segment's shape code, defaulting to a
// circle.
func CrossSectionForShape(code int) types.CrossSectionType {
	if section, ok := crossSectionByShape[code]; ok {
		return section
	}
	return types.CrossSectionCircle
}
