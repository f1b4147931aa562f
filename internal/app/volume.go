package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"labware-import/internal/types"
)

// Volume synthesizes the well volume function of a plate and evaluates it at
// the requested heights. An out-of-range height fails the whole request.
func (s Service) Volume(ctx context.Context, req VolumeRequest) (VolumeResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return VolumeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("definition path is required")
	}
	kind, err := s.Assembler.Classifier().Classify(ctx, path)
	if err != nil {
		return VolumeResult{}, err
	}
	if kind != types.ResourceKindPlate {
		return VolumeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("volume functions are only defined for plates, %s is a %s", path, kind))
	}
	_, _, fn, err := s.Assembler.PlateForWriting(ctx, path, strings.TrimSpace(req.CtrPath))
	if err != nil {
		return VolumeResult{}, err
	}
	result := VolumeResult{
		Resource:    fn.Resource,
		Equation:    fn.String(),
		TotalHeight: fn.TotalHeight,
		Boundaries:  fn.Boundaries(),
	}
	for _, h := range req.Heights {
		volume, err := fn.Evaluate(h)
		if err != nil {
			return VolumeResult{}, err
		}
		result.Samples = append(result.Samples, VolumeSample{Height: h, Volume: volume})
	}
	return result, nil
}
