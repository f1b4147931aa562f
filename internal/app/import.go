package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"labware-import/internal/types"
)

// Import assembles one definition file. A CtrPath overrides the companion
// well definition and is only valid for plates. With Output set, the entry is
// also written as a single entry catalog.
func (s Service) Import(ctx context.Context, req ImportRequest) (ImportResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return ImportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("definition path is required")
	}
	entry, err := s.importEntry(ctx, path, strings.TrimSpace(req.CtrPath))
	if err != nil {
		return ImportResult{}, err
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		entry.Resource().Rename(name)
		entry.Name = name
	}

	result := ImportResult{Entry: entry}
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return result, nil
	}
	if err := s.CatalogWriter.WriteCatalog(output, types.Catalog{Entries: []types.CatalogEntry{entry}}); err != nil {
		return ImportResult{}, err
	}
	log.Ctx(ctx).Info().Str("output", output).Str("name", entry.Name).Msg("definition written")
	result.OutputPath = output
	return result, nil
}

func (s Service) importEntry(ctx context.Context, path string, ctrPath string) (types.CatalogEntry, error) {
	if ctrPath == "" {
		return s.Assembler.AssembleForWriting(ctx, path)
	}
	kind, err := s.Assembler.Classifier().Classify(ctx, path)
	if err != nil {
		return types.CatalogEntry{}, err
	}
	if kind != types.ResourceKindPlate {
		return types.CatalogEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("a well definition override only applies to plates, %s is a %s", path, kind))
	}
	plate, description, volume, err := s.Assembler.PlateForWriting(ctx, path, ctrPath)
	if err != nil {
		return types.CatalogEntry{}, err
	}
	return types.CatalogEntry{
		Source:         path,
		Kind:           kind,
		Name:           plate.Name,
		Description:    description,
		VolumeEquation: volume.String(),
		Plate:          plate,
	}, nil
}
