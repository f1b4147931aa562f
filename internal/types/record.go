package types

// RawRecord is the decoded text of one definition file. The text is a flat
// run of length-prefixed key and value tokens with no nesting.
type RawRecord struct {
	Path string
	Text string
}

// GeometrySegment is one height-bounded slice of a well interior as listed in
// a .ctr file. Index 1 is the top slice, the highest index the bottom one.
type GeometrySegment struct {
	Index     int
	Shape     int
	MaxHeight float64
	// Equation is the vendor volume expression in the local height h.
	Equation string
}

// SiteRecord is one carrier mounting position as read from the file, before
// it becomes a CarrierSite.
type SiteRecord struct {
	Index    int
	Location Coordinate
	Width    float64
	Height   float64
	Visible  bool
}
