package types

type ResourceKind string

const (
	ResourceKindPlate        ResourceKind = "Plate"
	ResourceKindTipRack      ResourceKind = "TipRack"
	ResourceKindPlateCarrier ResourceKind = "PlateCarrier"
	ResourceKindTipCarrier   ResourceKind = "TipCarrier"
	ResourceKindMFXCarrier   ResourceKind = "MFXCarrier"
	ResourceKindTubeCarrier  ResourceKind = "TubeCarrier"
)

// IsCarrier reports whether the kind describes a carrier with mounting sites.
func (k ResourceKind) IsCarrier() bool {
	switch k {
	case ResourceKindPlateCarrier, ResourceKindTipCarrier, ResourceKindMFXCarrier, ResourceKindTubeCarrier:
		return true
	default:
		return false
	}
}

type WellBottomType string

const (
	WellBottomFlat    WellBottomType = "flat"
	WellBottomU       WellBottomType = "U"
	WellBottomV       WellBottomType = "V"
	WellBottomUnknown WellBottomType = "unknown"
)

type CrossSectionType string

const (
	CrossSectionCircle    CrossSectionType = "circle"
	CrossSectionRectangle CrossSectionType = "rectangle"
)
