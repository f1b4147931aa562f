package policies

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labware-import/internal/types"
)

func TestCorrectionPolicyApply(t *testing.T) {
	policy := NewDefaultCorrectionPolicy()

	value, applied := policy.Apply("Cos_96_ProtCryst", types.CorrectionFieldPitchY, 4.5)
	assert.True(t, applied)
	assert.Equal(t, 9.0, value)

	value, applied = policy.Apply("Cos_96_ProtCryst", types.CorrectionFieldPitchY, 9.0)
	assert.False(t, applied, "plausible values are left alone")
	assert.Equal(t, 9.0, value)

	value, applied = policy.Apply("Cos_96_ProtCryst", types.CorrectionFieldPitchX, 4.5)
	assert.False(t, applied)
	assert.Equal(t, 4.5, value)

	value, applied = policy.Apply("Cos_96_Rd", types.CorrectionFieldPitchY, 4.5)
	assert.False(t, applied)
	assert.Equal(t, 4.5, value)
}

func TestCorrectionPolicyCustomTable(t *testing.T) {
	policy := NewCorrectionPolicy([]types.Correction{
		{Model: "Nun_384", Field: types.CorrectionFieldPitchX, When: 2.25, Value: 4.5},
		{Model: "Abgene_96", Field: types.CorrectionFieldPitchY, When: 0, Value: 9},
	}, nil)

	value, applied := policy.Apply("Nun_384", types.CorrectionFieldPitchX, 2.25)
	assert.True(t, applied)
	assert.Equal(t, 4.5, value)

	want := []types.Correction{
		{Model: "Abgene_96", Field: types.CorrectionFieldPitchY, When: 0, Value: 9},
		{Model: "Nun_384", Field: types.CorrectionFieldPitchX, When: 2.25, Value: 4.5},
	}
	if diff := cmp.Diff(want, policy.Corrections()); diff != "" {
		t.Fatalf("unexpected corrections (-want +got):\n%s", diff)
	}
	assert.Empty(t, policy.FileAliases())
}

func TestCorrectionPolicyCompanionPath(t *testing.T) {
	policy := NewDefaultCorrectionPolicy()
	tests := map[string]string{
		"labware/Cos_96_Rd.rck":        "labware/Cos_96_Rd.ctr",
		"labware/Cos_96_Rd_L.rck":      "labware/Cos_96_Rd.ctr",
		"labware/Cos_96_Rd_P.rck":      "labware/Cos_96_Rd.ctr",
		"labware/Cos_96_ProtCryst.rck": "labware/Cos_96_Post.ctr",
	}
	for input, want := range tests {
		assert.Equal(t, want, policy.CompanionPath(input), input)
	}
}

func TestValidateCorrections(t *testing.T) {
	require.NoError(t, ValidateCorrections(DefaultCorrections()))

	tests := []struct {
		name        string
		corrections []types.Correction
		code        errbuilder.ErrCode
	}{
		{
			name:        "empty model",
			corrections: []types.Correction{{Field: types.CorrectionFieldPitchX, When: 1, Value: 2}},
			code:        errbuilder.CodeInvalidArgument,
		},
		{
			name:        "unknown field",
			corrections: []types.Correction{{Model: "m", Field: "depth", When: 1, Value: 2}},
			code:        errbuilder.CodeInvalidArgument,
		},
		{
			name: "duplicate",
			corrections: []types.Correction{
				{Model: "m", Field: types.CorrectionFieldPitchX, When: 1, Value: 2},
				{Model: "m", Field: types.CorrectionFieldPitchX, When: 1, Value: 3},
			},
			code: errbuilder.CodeAlreadyExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCorrections(tt.corrections)
			require.Error(t, err)
			assert.Equal(t, tt.code, errbuilder.CodeOf(err))
		})
	}
}
