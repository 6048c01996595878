package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_RowMode(t *testing.T) {
	s := Schema{
		{Name: "a", Type: Int},    // 4
		{Name: "b", Type: Long},   // 8
		{Name: "c", Type: String}, // 4
	}
	layout := Analyze(s, RowMode, 3)

	assert.Equal(t, []int{0, 4, 12}, layout.ColumnOffsets)
	assert.Equal(t, 16, layout.RowStride)
	assert.Equal(t, 48, layout.TotalFixedSize())
}

func TestAnalyze_ColumnarMode(t *testing.T) {
	s := Schema{
		{Name: "a", Type: Int},  // 4 * numRows
		{Name: "b", Type: Long}, // 8 * numRows
	}
	layout := Analyze(s, ColumnarMode, 5)

	assert.Equal(t, []int{20, 40}, layout.ColumnSizes)
	assert.Equal(t, []int{0, 20}, layout.CumulativeOffsets)
	assert.Equal(t, 60, layout.TotalFixedSize())
}

func TestAnalyze_ColumnarMode_ZeroRows(t *testing.T) {
	s := Schema{{Name: "a", Type: Int}}
	layout := Analyze(s, ColumnarMode, 0)

	assert.Equal(t, []int{0}, layout.ColumnSizes)
	assert.Equal(t, 0, layout.TotalFixedSize())
}
