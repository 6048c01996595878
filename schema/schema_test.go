package schema

import (
	"testing"

	"github.com/arclake/datablock/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Validate(t *testing.T) {
	t.Run("valid schema", func(t *testing.T) {
		s := Schema{
			{Name: "a", Type: Int},
			{Name: "b", Type: String},
		}
		require.NoError(t, s.Validate())
	})

	t.Run("empty schema", func(t *testing.T) {
		err := Schema{}.Validate()
		require.ErrorIs(t, err, errs.ErrEmptySchema)
	})

	t.Run("unsupported type", func(t *testing.T) {
		s := Schema{{Name: "a", Type: Type(99)}}
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrUnsupportedType)
	})

	t.Run("duplicate column name", func(t *testing.T) {
		s := Schema{
			{Name: "a", Type: Int},
			{Name: "a", Type: Long},
		}
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrDuplicateColumnName)
	})
}

func TestSchema_IndexOf(t *testing.T) {
	s := Schema{{Name: "a", Type: Int}, {Name: "b", Type: Long}}
	assert.Equal(t, 0, s.IndexOf("a"))
	assert.Equal(t, 1, s.IndexOf("b"))
	assert.Equal(t, -1, s.IndexOf("c"))
}

func TestWidthOf(t *testing.T) {
	tests := []struct {
		typ   Type
		width int
	}{
		{Int, 4},
		{Long, 8},
		{Float, 4},
		{Double, 8},
		{BigDecimal, 8},
		{String, 4},
		{Bytes, 8},
		{Object, 8},
		{BooleanArray, 8},
		{IntArray, 8},
		{LongArray, 8},
		{TimestampArray, 8},
		{FloatArray, 8},
		{DoubleArray, 8},
		{StringArray, 8},
		{BytesArray, 8},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.width, WidthOf(tt.typ))
		})
	}
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "INT", Int.String())
	assert.Equal(t, "STRING_ARRAY", StringArray.String())
	assert.Equal(t, "UNKNOWN", Type(250).String())
}

func TestType_IsString(t *testing.T) {
	assert.True(t, String.IsString())
	assert.True(t, StringArray.IsString())
	assert.True(t, BytesArray.IsString())
	assert.False(t, Bytes.IsString())
	assert.False(t, Int.IsString())
}
