package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Classify reports the resource kind of each path. The first failure aborts.
func (s Service) Classify(ctx context.Context, req ClassifyRequest) (ClassifyResult, error) {
	if len(req.Paths) == 0 {
		return ClassifyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one definition path is required")
	}
	classifier := s.Assembler.Classifier()
	outcomes := make([]ClassifyOutcome, 0, len(req.Paths))
	for _, path := range req.Paths {
		path = strings.TrimSpace(path)
		if path == "" {
			return ClassifyResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("definition path is empty")
		}
		kind, err := classifier.Classify(ctx, path)
		if err != nil {
			return ClassifyResult{}, err
		}
		outcomes = append(outcomes, ClassifyOutcome{Path: path, Kind: kind})
	}
	return ClassifyResult{Outcomes: outcomes}, nil
}
