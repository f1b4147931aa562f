package core

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labware-import/internal/testutil"
	"labware-import/internal/types"
)

func TestFindValues(t *testing.T) {
	text := testutil.Encode(
		testutil.F("Dim.Dx", 127.76),
		testutil.F("Dx", 9),
		testutil.F("Columns", 12),
		testutil.F("Description", "96 well plate"),
	)

	dimX, err := FindFloat("Dim.Dx", text)
	require.NoError(t, err)
	assert.Equal(t, 127.76, dimX)

	// "Dx" also occurs inside "Dim.Dx"; only the standalone key matches.
	pitch, err := FindFloat("Dx", text)
	require.NoError(t, err)
	assert.Equal(t, 9.0, pitch)

	columns, err := FindInt("Columns", text)
	require.NoError(t, err)
	assert.Equal(t, 12, columns)

	description, err := FindString("Description", text)
	require.NoError(t, err)
	assert.Equal(t, "96 well plate", description)
}

func TestFindStringLongValue(t *testing.T) {
	long := strings.Repeat("x", 40)
	text := testutil.Encode(
		testutil.F("1.EqnOfVol", long),
		testutil.F("1.Max", 10),
	)
	value, err := FindString("1.EqnOfVol", text)
	require.NoError(t, err)
	assert.Equal(t, long, value)

	maxHeight, err := FindFloat("1.Max", text)
	require.NoError(t, err)
	assert.Equal(t, 10.0, maxHeight)
}

func TestFindStringDecodesLatin1(t *testing.T) {
	text := testutil.Encode(testutil.F("Description", "200 \xb5l tips"))
	value, err := FindString("Description", text)
	require.NoError(t, err)
	assert.Equal(t, "200 µl tips", value)
}

func TestFindIndexedKeyDoesNotMatchLongerIndex(t *testing.T) {
	text := testutil.Encode(
		testutil.F("11.Max", 3),
		testutil.F("1.Max", 7),
	)
	value, err := FindFloat("1.Max", text)
	require.NoError(t, err)
	assert.Equal(t, 7.0, value)
}

func TestFindFirstOccurrenceWins(t *testing.T) {
	text := testutil.Encode(
		testutil.F("Rows", 8),
		testutil.F("Rows", 16),
	)
	rows, err := FindInt("Rows", text)
	require.NoError(t, err)
	assert.Equal(t, 8, rows)
}

func TestFindErrors(t *testing.T) {
	text := testutil.Encode(testutil.F("Columns", "twelve"))

	_, err := FindInt("Rows", text)
	require.Error(t, err)
	assert.True(t, IsKeyNotFound(err))

	_, err = FindInt("Columns", text)
	require.Error(t, err)
	assert.False(t, IsKeyNotFound(err))
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = FindFloat("Columns", text)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestRecordHas(t *testing.T) {
	rec := NewRecord(types.RawRecord{Path: "a.rck", Text: testutil.Encode(testutil.F("Cntr.1.file", "a.ctr"))})
	assert.True(t, rec.Has("Cntr.1.file"))
	assert.False(t, rec.Has("Cntr.2.file"))
}

func TestFirstString(t *testing.T) {
	tests := []struct {
		name    string
		fields  []testutil.Field
		want    string
		wantErr bool
	}{
		{
			name:   "first key present",
			fields: []testutil.Field{testutil.F("PropertyValue.6", "MlStar5mlTip"), testutil.F("PropertyValue.4", "other")},
			want:   "MlStar5mlTip",
		},
		{
			name:   "falls back on missing key",
			fields: []testutil.Field{testutil.F("PropertyValue.4", "MlStar300ulStandardVolumeTip")},
			want:   "MlStar300ulStandardVolumeTip",
		},
		{
			name:    "all keys missing",
			fields:  []testutil.Field{testutil.F("Description", "rack")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord(types.RawRecord{Text: testutil.Encode(tt.fields...)})
			got, err := FirstString(rec, "PropertyValue.6", "PropertyValue.4")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsKeyNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
