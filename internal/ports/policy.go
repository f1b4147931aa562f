package ports

import "labware-import/internal/types"

// CorrectionPort supplies per-model geometry corrections and companion file
// naming rules.
type CorrectionPort interface {
	Apply(model string, field types.CorrectionField, value float64) (float64, bool)
	CompanionPath(rckPath string) string
}
