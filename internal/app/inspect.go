package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"labware-import/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	catalogPath := strings.TrimSpace(req.CatalogPath)
	if catalogPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is required")
	}
	catalog, err := s.CatalogReader.ReadCatalog(catalogPath)
	if err != nil {
		return InspectResult{}, err
	}

	names := summarizeKinds(catalog.Entries)
	var summaries []InspectKindSummary
	for _, kind := range sortedKeys(names) {
		kindNames := names[kind]
		sort.Strings(kindNames)
		summaries = append(summaries, InspectKindSummary{
			Kind:    kind,
			Carrier: kind.IsCarrier(),
			Count:   len(kindNames),
			Names:   kindNames,
		})
	}
	return InspectResult{
		APIVersion: catalog.APIVersion,
		Kinds:      summaries,
		Skipped:    catalog.Skipped,
	}, nil
}

func summarizeKinds(entries []types.CatalogEntry) map[types.ResourceKind][]string {
	names := map[types.ResourceKind][]string{}
	for _, entry := range entries {
		names[entry.Kind] = append(names[entry.Kind], entry.Name)
	}
	return names
}

func sortedKeys[K comparable, V any](input map[K]V) []K {
	keys := make([]K, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}
