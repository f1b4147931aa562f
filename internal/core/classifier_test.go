package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labware-import/internal/testutil"
	"labware-import/internal/types"
)

// memorySource serves definition files from a map and counts reads.
type memorySource struct {
	files map[string]string
	reads map[string]int
}

func newMemorySource(files map[string]string) *memorySource {
	return &memorySource{files: files, reads: map[string]int{}}
}

func (s *memorySource) Exists(path string) bool {
	_, ok := s.files[path]
	return ok
}

func (s *memorySource) ReadRecord(path string) (types.RawRecord, error) {
	s.reads[path]++
	text, ok := s.files[path]
	if !ok {
		return types.RawRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("definition file not found: " + path)
	}
	return types.RawRecord{Path: path, Text: text}, nil
}

func TestClassifyCarrierPrefixes(t *testing.T) {
	tests := []struct {
		path string
		want types.ResourceKind
	}{
		{path: "labware/PLT_CAR_L5AC_A00.rck", want: types.ResourceKindPlateCarrier},
		{path: "labware/TIP_CAR_480_A00.rck", want: types.ResourceKindTipCarrier},
		{path: "MFX_CAR_L5_base.rck", want: types.ResourceKindMFXCarrier},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			source := newMemorySource(map[string]string{})
			kind, err := NewClassifier(source).Classify(t.Context(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
			assert.Empty(t, source.reads, "carrier files are classified without reading")
		})
	}
}

func TestClassifyTubeCarrierUnsupported(t *testing.T) {
	source := newMemorySource(map[string]string{})
	_, err := NewClassifier(source).Classify(t.Context(), "SMP_CAR_24_A00.rck")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeUnimplemented, errbuilder.CodeOf(err))
}

func TestClassifyMissingMetadataIsTipRack(t *testing.T) {
	source := newMemorySource(map[string]string{})
	for _, path := range []string{"MyTips_L.rck", "MyTips_P.rck", "MyTips.rck"} {
		kind, err := NewClassifier(source).Classify(t.Context(), path)
		require.NoError(t, err)
		assert.Equal(t, types.ResourceKindTipRack, kind, path)
	}
}

func TestClassifyByContent(t *testing.T) {
	tests := []struct {
		name   string
		fields []testutil.Field
		want   types.ResourceKind
	}{
		{
			name:   "tip rack category",
			fields: []testutil.Field{testutil.F("Category.0.Id", 174)},
			want:   types.ResourceKindTipRack,
		},
		{
			name:   "plate category",
			fields: []testutil.Field{testutil.F("Category.0.Id", 1012)},
			want:   types.ResourceKindPlate,
		},
		{
			name:   "well definition reference",
			fields: []testutil.Field{testutil.F("Category.0.Id", 42), testutil.F("Cntr.1.file", "Cos_96_Rd.ctr")},
			want:   types.ResourceKindPlate,
		},
		{
			name:   "well definition without category",
			fields: []testutil.Field{testutil.F("Cntr.1.file", "Cos_96_Rd.ctr")},
			want:   types.ResourceKindPlate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newMemorySource(map[string]string{"Cos_96_Rd.rck": testutil.Encode(tt.fields...)})
			classifier := NewClassifier(source)

			kind, err := classifier.Classify(t.Context(), "Cos_96_Rd.rck")
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)

			// Orientation variants resolve to the same canonical file.
			for _, variant := range []string{"Cos_96_Rd_L.rck", "Cos_96_Rd_P.rck"} {
				variantKind, err := classifier.Classify(t.Context(), variant)
				require.NoError(t, err)
				assert.Equal(t, kind, variantKind, variant)
			}
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	source := newMemorySource(map[string]string{
		"Mystery.rck": testutil.Encode(testutil.F("Category.0.Id", 500), testutil.F("Description", "?")),
	})
	_, err := NewClassifier(source).Classify(t.Context(), "Mystery.rck")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "unknown resource type for file Mystery.rck")
}

func TestClassifyCustomRules(t *testing.T) {
	source := newMemorySource(map[string]string{"Lid.rck": testutil.Encode(testutil.F("Lid", 1))})
	rules := append([]ContentRule{{
		Name: "lid",
		Match: func(rec Record) (types.ResourceKind, bool) {
			return types.ResourceKindPlate, rec.Has("Lid")
		},
	}}, DefaultContentRules()...)
	kind, err := NewClassifierWithRules(source, rules).Classify(t.Context(), "Lid.rck")
	require.NoError(t, err)
	assert.Equal(t, types.ResourceKindPlate, kind)
}
