package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"labware-import/internal/types"
)

func newTip(tipType string, hasFilter bool, length float64, volume float64) func() types.Tip {
	return func() types.Tip {
		return types.Tip{
			TipType:        tipType,
			HasFilter:      hasFilter,
			TotalTipLength: length,
			MaximalVolume:  volume,
			FittingDepth:   8,
		}
	}
}

// tipTable maps the tip type named in a rack definition to its tip.
var tipTable = map[string]func() types.Tip{
	"MlStar10ulLowVolumeTip":                 newTip("MlStar10ulLowVolumeTip", false, 29.9, 15),
	"MlStar10ulLowVolumeTipWithFilter":       newTip("MlStar10ulLowVolumeTipWithFilter", true, 29.9, 10),
	"MlStar300ulStandardVolumeTip":           newTip("MlStar300ulStandardVolumeTip", false, 59.9, 400),
	"MlStar300ulStandardVolumeTipWithFilter": newTip("MlStar300ulStandardVolumeTipWithFilter", true, 59.9, 360),
	"MlStar1000ulHighVolumeTip":              newTip("MlStar1000ulHighVolumeTip", false, 95.1, 1250),
	"MlStar1000ulHighVolumeTipWithFilter":    newTip("MlStar1000ulHighVolumeTipWithFilter", true, 95.1, 1065),
	"MlStar4mlTipWithFilter":                 newTip("MlStar4mlTipWithFilter", true, 116, 4367),
	"MlStar5mlTip":                           newTip("MlStar5mlTip", false, 116, 5420),
	"MlStar5mlTipWithFilter":                 newTip("MlStar5mlTipWithFilter", true, 116, 5420),
}

// TipCreator returns the constructor for a tip type identifier.
func TipCreator(tipType string) (func() types.Tip, error) {
	creator, ok := tipTable[tipType]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown tip type %q", tipType))
	}
	return creator, nil
}

// TipTypes lists the known tip type identifiers in sorted order.
func TipTypes() []string {
	names := make([]string, 0, len(tipTable))
	for name := range tipTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
