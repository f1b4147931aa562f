package core

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"labware-import/internal/types"
)

var heightVariable = regexp.MustCompile(`\bh\b`)

// heightTolerance absorbs float noise when comparing against the total height.
const heightTolerance = 1e-9

// VolumePiece is the contribution of one segment to the volume function.
// Lower is the summed height of all segments below it and Upper is Lower plus
// the segment's own height.
type VolumePiece struct {
	Index    int
	Lower    float64
	Upper    float64
	Equation string
	// Term is Equation rewritten in the global height h.
	Term string
	Base bool
	Top  bool

	compiled volumeExpr
}

// VolumeFunction is a piecewise height to volume function, valid for
// 0 <= h <= TotalHeight. Pieces are ordered from the bottom of the well up.
type VolumeFunction struct {
	Resource    string
	Pieces      []VolumePiece
	TotalHeight float64
}

// SynthesizeVolume builds the volume function of a well from its segments.
// Segment 1 is the top of the well; synthesis starts at the bottom segment.
// Every segment equation is compiled here, so a malformed equation fails
// synthesis with an invalid-argument error.
func SynthesizeVolume(resource string, segments []types.GeometrySegment) (VolumeFunction, error) {
	if len(segments) == 0 {
		return VolumeFunction{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no geometry segments for %s", resource))
	}
	ordered := append([]types.GeometrySegment(nil), segments...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index > ordered[j].Index
	})
	for i, segment := range ordered {
		want := len(ordered) - i
		if segment.Index != want {
			return VolumeFunction{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("segments for %s must be numbered 1..%d, found %d", resource, len(ordered), segment.Index))
		}
		if segment.MaxHeight < 0 || math.IsNaN(segment.MaxHeight) {
			return VolumeFunction{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("segment %d of %s has invalid height %v", segment.Index, resource, segment.MaxHeight))
		}
	}

	fn := VolumeFunction{Resource: resource}
	heightSoFar := 0.0
	for i, segment := range ordered {
		compiled, err := compileVolumeExpr(segment.Equation)
		if err != nil {
			return VolumeFunction{}, err
		}
		piece := VolumePiece{
			Index:    segment.Index,
			Lower:    heightSoFar,
			Upper:    heightSoFar + segment.MaxHeight,
			Equation: segment.Equation,
			Base:     i == 0,
			Top:      i == len(ordered)-1,
			compiled: compiled,
		}
		switch {
		case piece.Base:
			piece.Term = substituteHeight(segment.Equation, fmt.Sprintf("min(h, %s)", formatHeight(segment.MaxHeight)))
		case piece.Top:
			piece.Term = substituteHeight(segment.Equation, fmt.Sprintf("(h-%s)", formatHeight(heightSoFar)))
		default:
			piece.Term = substituteHeight(segment.Equation,
				fmt.Sprintf("(min(h, %s)-%s)", formatHeight(piece.Upper), formatHeight(heightSoFar)))
		}
		fn.Pieces = append(fn.Pieces, piece)
		heightSoFar += segment.MaxHeight
	}
	fn.TotalHeight = heightSoFar
	return fn, nil
}

func substituteHeight(equation string, replacement string) string {
	return heightVariable.ReplaceAllLiteralString(equation, replacement)
}

func formatHeight(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Boundaries returns the cumulative segment heights from the bottom up,
// starting at 0 and ending at TotalHeight.
func (f VolumeFunction) Boundaries() []float64 {
	bounds := make([]float64, 0, len(f.Pieces)+1)
	bounds = append(bounds, 0)
	for _, piece := range f.Pieces {
		bounds = append(bounds, piece.Upper)
	}
	return bounds
}

// String renders the function as text, one statement per line:
//
//	volume = <base term>
//	if h > <lower>: volume += <term>
//	if h > <total>: error "..."
//
// Guards are written against the lower bound of each piece rather than its
// own maximum, so h=0 yields only the base term.
func (f VolumeFunction) String() string {
	var b strings.Builder
	for _, piece := range f.Pieces {
		if piece.Base {
			fmt.Fprintf(&b, "volume = %s\n", piece.Term)
			continue
		}
		fmt.Fprintf(&b, "if h > %s: volume += %s\n", formatHeight(piece.Lower), piece.Term)
	}
	fmt.Fprintf(&b, "if h > %s: error \"height h is too large for %s\"\n", formatHeight(f.TotalHeight), f.Resource)
	b.WriteString("return volume")
	return b.String()
}

// Evaluate computes the volume at height h. Heights outside 0..TotalHeight
// fail with an out-of-range error naming the resource.
func (f VolumeFunction) Evaluate(h float64) (float64, error) {
	if math.IsNaN(h) || h < 0 || h > f.TotalHeight+heightTolerance {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeOutOfRange).
			WithMsg(fmt.Sprintf("height %s is out of range for %s (max %s)", formatHeight(h), f.Resource, formatHeight(f.TotalHeight)))
	}
	volume := 0.0
	for _, piece := range f.Pieces {
		if !piece.Base && h <= piece.Lower {
			continue
		}
		if piece.compiled.program == nil {
			return 0, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("segment %d of %s was not synthesized", piece.Index, f.Resource))
		}
		local := math.Min(h, piece.Upper) - piece.Lower
		contribution, err := piece.compiled.eval(local)
		if err != nil {
			return 0, err
		}
		volume += contribution
	}
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("volume equation for %s is undefined at height %s", f.Resource, formatHeight(h)))
	}
	return volume, nil
}
