package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipCreator(t *testing.T) {
	creator, err := TipCreator("MlStar300ulStandardVolumeTip")
	require.NoError(t, err)
	tip := creator()
	assert.Equal(t, "MlStar300ulStandardVolumeTip", tip.TipType)
	assert.False(t, tip.HasFilter)
	assert.Equal(t, 59.9, tip.TotalTipLength)
	assert.Equal(t, 400.0, tip.MaximalVolume)
	assert.Equal(t, 8.0, tip.FittingDepth)
}

func TestTipCreatorUnknown(t *testing.T) {
	_, err := TipCreator("MlStar50ulTip")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestTipTypes(t *testing.T) {
	names := TipTypes()
	require.Len(t, names, 9)
	assert.IsIncreasing(t, names)
	for _, name := range names {
		creator, err := TipCreator(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, creator().TipType)
	}
}
