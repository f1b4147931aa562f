package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"labware-import/internal/ports"
	"labware-import/internal/shared"
	"labware-import/internal/types"
)

// prefixRule maps a filename prefix to a carrier kind. Carrier files are
// classified from their name alone.
type prefixRule struct {
	prefix      string
	kind        types.ResourceKind
	unsupported bool
}

var carrierPrefixRules = []prefixRule{
	{prefix: "PLT_CAR_", kind: types.ResourceKindPlateCarrier},
	{prefix: "TIP_CAR_", kind: types.ResourceKindTipCarrier},
	{prefix: "MFX_CAR_", kind: types.ResourceKindMFXCarrier},
	{prefix: "SMP_CAR_", kind: types.ResourceKindTubeCarrier, unsupported: true},
}

// ContentRule inspects a definition record and reports a kind when it
// recognises the content.
type ContentRule struct {
	Name  string
	Match func(rec Record) (types.ResourceKind, bool)
}

// DefaultContentRules are evaluated in order; the first match wins.
//
// The category id ranges come from inspecting a set of vendor files. They are
// a heuristic, not a documented contract.
func DefaultContentRules() []ContentRule {
	return []ContentRule{
		{Name: "category-id", Match: matchCategoryID},
		{Name: "well-definition-reference", Match: matchWellDefinitionReference},
	}
}

func matchCategoryID(rec Record) (types.ResourceKind, bool) {
	id, err := rec.Int("Category.0.Id")
	if err != nil {
		return "", false
	}
	switch {
	case id >= 170 && id < 180:
		return types.ResourceKindTipRack, true
	case id >= 1000 && id < 1100:
		return types.ResourceKindPlate, true
	default:
		return "", false
	}
}

// Only plates reference a .ctr well definition.
func matchWellDefinitionReference(rec Record) (types.ResourceKind, bool) {
	if _, err := rec.String("Cntr.1.file"); err != nil {
		return "", false
	}
	return types.ResourceKindPlate, true
}

type Classifier struct {
	source ports.DefinitionSourcePort
	rules  []ContentRule
}

func NewClassifier(source ports.DefinitionSourcePort) Classifier {
	return NewClassifierWithRules(source, DefaultContentRules())
}

func NewClassifierWithRules(source ports.DefinitionSourcePort, rules []ContentRule) Classifier {
	return Classifier{source: source, rules: rules}
}

// Classify determines which resource kind the definition file at path
// describes.
func (c Classifier) Classify(ctx context.Context, path string) (types.ResourceKind, error) {
	assert.NotEmpty(ctx, path, "definition path must be set")
	filename := filepath.Base(path)

	for _, rule := range carrierPrefixRules {
		if !strings.HasPrefix(filename, rule.prefix) {
			continue
		}
		if rule.unsupported {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeUnimplemented).
				WithMsg(fmt.Sprintf("%s is not supported: %s", rule.kind, filename))
		}
		log.Ctx(ctx).Debug().Str("file", filename).Str("kind", string(rule.kind)).Msg("classified by prefix")
		return rule.kind, nil
	}

	canonical := shared.CanonicalPath(path)
	if !c.source.Exists(canonical) {
		log.Ctx(ctx).Debug().Str("file", filename).Msg("no definition metadata, classified as tip rack")
		return types.ResourceKindTipRack, nil
	}

	raw, err := c.source.ReadRecord(canonical)
	if err != nil {
		return "", err
	}
	rec := NewRecord(raw)
	for _, rule := range c.rules {
		if kind, ok := rule.Match(rec); ok {
			log.Ctx(ctx).Debug().
				Str("file", filename).
				Str("rule", rule.Name).
				Str("kind", string(kind)).
				Msg("classified by content")
			return kind, nil
		}
	}

	return "", errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("unknown resource type for file %s", filename))
}
