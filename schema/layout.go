package schema

// Mode selects which fixed-region layout a Layout describes.
type Mode uint8

const (
	// RowMode lays out the fixed region as numRows rows of rowStride bytes
	// each, cells for all columns interleaved per row.
	RowMode Mode = iota
	// ColumnarMode lays out the fixed region as numColumns columns back to
	// back, column i occupying numRows*WidthOf(columnᵢ) bytes.
	ColumnarMode
)

// Layout is the precomputed byte-offset geometry for a schema under a
// given mode and (for columnar mode) row count.
//
// Row mode: ColumnOffsets[i] is the byte offset of column i within one row;
// RowStride is the total row size. Columnar mode: ColumnSizes[i] is the
// total byte size of column i's region; CumulativeOffsets[i] is where that
// region starts within the fixed region.
type Layout struct {
	Mode    Mode
	NumRows int

	ColumnOffsets []int // row mode
	RowStride     int   // row mode

	ColumnSizes       []int // columnar mode
	CumulativeOffsets []int // columnar mode
}

// Analyze precomputes a Layout for s under mode. For ColumnarMode, numRows
// must already be known: cumulative offsets are a function of numRows and
// are computed once here rather than mutated later, so a columnar builder
// always requires numRows up front instead of deferring it.
func Analyze(s Schema, mode Mode, numRows int) *Layout {
	n := len(s)
	layout := &Layout{Mode: mode, NumRows: numRows}

	switch mode {
	case RowMode:
		offsets := make([]int, n)
		stride := 0
		for i, col := range s {
			offsets[i] = stride
			stride += WidthOf(col.Type)
		}
		layout.ColumnOffsets = offsets
		layout.RowStride = stride

	case ColumnarMode:
		sizes := make([]int, n)
		cumulative := make([]int, n)
		offset := 0
		for i, col := range s {
			size := WidthOf(col.Type) * numRows
			sizes[i] = size
			cumulative[i] = offset
			offset += size
		}
		layout.ColumnSizes = sizes
		layout.CumulativeOffsets = cumulative
	}

	return layout
}

// TotalFixedSize returns the total size in bytes of the fixed region this
// layout describes.
func (l *Layout) TotalFixedSize() int {
	switch l.Mode {
	case RowMode:
		return l.RowStride * l.NumRows
	case ColumnarMode:
		total := 0
		for _, size := range l.ColumnSizes {
			total += size
		}

		return total
	default:
		return 0
	}
}
