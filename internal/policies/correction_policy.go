package policies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats/scalar"

	"labware-import/internal/ports"
	"labware-import/internal/types"
)

const correctionTolerance = 1e-9

// DefaultCorrections lists the definition files known to ship wrong geometry.
func DefaultCorrections() []types.Correction {
	return []types.Correction{
		{
			Model:  "Cos_96_ProtCryst",
			Field:  types.CorrectionFieldPitchY,
			When:   4.5,
			Value:  9.0,
			Reason: "row pitch of 4.5mm is impossible for a 96 well layout",
		},
	}
}

// DefaultFileAliases lists filename rewrites applied when deriving a .ctr
// path from a .rck path.
func DefaultFileAliases() []types.FileAlias {
	return []types.FileAlias{
		{Match: "ProtCryst", Replace: "Post"},
	}
}

type CorrectionPolicy struct {
	corrections []types.Correction
	aliases     []types.FileAlias
	byModel     map[string][]int
}

func NewCorrectionPolicy(corrections []types.Correction, aliases []types.FileAlias) CorrectionPolicy {
	policy := CorrectionPolicy{
		corrections: append([]types.Correction(nil), corrections...),
		aliases:     append([]types.FileAlias(nil), aliases...),
	}
	policy.compile()
	return policy
}

func NewDefaultCorrectionPolicy() CorrectionPolicy {
	return NewCorrectionPolicy(DefaultCorrections(), DefaultFileAliases())
}

func (p *CorrectionPolicy) compile() {
	p.byModel = map[string][]int{}
	for idx, correction := range p.corrections {
		p.byModel[correction.Model] = append(p.byModel[correction.Model], idx)
	}
}

// ValidateCorrections rejects entries that could never apply.
func ValidateCorrections(corrections []types.Correction) error {
	seen := map[string]struct{}{}
	for _, correction := range corrections {
		if strings.TrimSpace(correction.Model) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("correction model must not be empty")
		}
		switch correction.Field {
		case types.CorrectionFieldPitchX, types.CorrectionFieldPitchY:
		default:
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("correction for %s has invalid field %q", correction.Model, correction.Field))
		}
		key := fmt.Sprintf("%s/%s/%g", correction.Model, correction.Field, correction.When)
		if _, ok := seen[key]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate correction for %s %s", correction.Model, correction.Field))
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Apply returns the corrected value for model and field, and whether a
// correction fired.
func (p CorrectionPolicy) Apply(model string, field types.CorrectionField, value float64) (float64, bool) {
	for _, idx := range p.byModel[model] {
		correction := p.corrections[idx]
		if correction.Field != field {
			continue
		}
		if !scalar.EqualWithinAbs(value, correction.When, correctionTolerance) {
			continue
		}
		log.Debug().
			Str("model", model).
			Str("field", string(field)).
			Float64("from", value).
			Float64("to", correction.Value).
			Str("reason", correction.Reason).
			Msg("geometry correction applied")
		return correction.Value, true
	}
	return value, false
}

// CompanionPath derives the .ctr path for a plate .rck path. Orientation
// variants share the companion file of their canonical geometry.
func (p CorrectionPolicy) CompanionPath(rckPath string) string {
	replacer := strings.NewReplacer("_P.rck", ".ctr", "_L.rck", ".ctr", ".rck", ".ctr")
	path := replacer.Replace(rckPath)
	for _, alias := range p.aliases {
		if alias.Match == "" {
			continue
		}
		path = strings.ReplaceAll(path, alias.Match, alias.Replace)
	}
	return path
}

// Corrections returns the table ordered by model then field.
func (p CorrectionPolicy) Corrections() []types.Correction {
	ordered := append([]types.Correction(nil), p.corrections...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Model != ordered[j].Model {
			return ordered[i].Model < ordered[j].Model
		}
		return ordered[i].Field < ordered[j].Field
	})
	return ordered
}

func (p CorrectionPolicy) FileAliases() []types.FileAlias {
	return append([]types.FileAlias(nil), p.aliases...)
}

var _ ports.CorrectionPort = CorrectionPolicy{}
