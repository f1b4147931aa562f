package app

import (
	"context"
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"labware-import/internal/shared"
	"labware-import/internal/types"
)

const defaultCatalogWorkers = 4

// catalogOutcome is the result for one file; exactly one field is set.
type catalogOutcome struct {
	entry *types.CatalogEntry
	skip  *types.CatalogSkip
}

// Catalog imports every definition under req.Root and writes them to one
// catalog file. Files that cannot be imported are recorded as skipped.
// Entries keep the sorted path order whatever the worker count.
func (s Service) Catalog(ctx context.Context, req CatalogRequest) (CatalogResult, error) {
	root := strings.TrimSpace(req.Root)
	if root == "" {
		return CatalogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("definition root is required")
	}
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return CatalogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog output path is required")
	}
	paths, err := s.Scanner.FindDefinitions(root)
	if err != nil {
		return CatalogResult{}, err
	}
	paths = primaryDefinitions(paths)

	workers := req.Workers
	if workers <= 0 {
		workers = defaultCatalogWorkers
	}
	outcomes := make([]catalogOutcome, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			entry, err := s.Assembler.AssembleForWriting(groupCtx, path)
			if err != nil {
				log.Ctx(groupCtx).Debug().Err(err).Str("path", path).Msg("definition skipped")
				outcomes[i] = catalogOutcome{skip: &types.CatalogSkip{Source: path, Reason: errorReason(err)}}
				return nil
			}
			outcomes[i] = catalogOutcome{entry: &entry}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return CatalogResult{}, err
	}

	catalog := types.Catalog{}
	for _, outcome := range outcomes {
		if outcome.entry != nil {
			catalog.Entries = append(catalog.Entries, *outcome.entry)
			continue
		}
		catalog.Skipped = append(catalog.Skipped, *outcome.skip)
	}
	if err := s.CatalogWriter.WriteCatalog(output, catalog); err != nil {
		return CatalogResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("output", output).
		Int("imported", len(catalog.Entries)).
		Int("skipped", len(catalog.Skipped)).
		Msg("catalog written")
	return CatalogResult{
		OutputPath: output,
		Imported:   len(catalog.Entries),
		Skipped:    catalog.Skipped,
	}, nil
}

// primaryDefinitions drops orientation variants whose canonical .rck is also
// present, since they describe the same geometry.
func primaryDefinitions(paths []string) []string {
	present := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		present[path] = struct{}{}
	}
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if canonical := shared.CanonicalPath(path); canonical != path {
			if _, ok := present[canonical]; ok {
				continue
			}
		}
		kept = append(kept, path)
	}
	return kept
}

func errorReason(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && builder.Msg != "" {
		return builder.Msg
	}
	return err.Error()
}
