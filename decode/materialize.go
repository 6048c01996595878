package decode

import (
	"fmt"

	"github.com/arclake/datablock/block"
	"github.com/arclake/datablock/errs"
	"github.com/arclake/datablock/schema"
)

// MaterializedBlock decodes a block.Block's addressing once and offers
// O(1) random access to any row or column, the same shape
// blob/numeric_blob_material.go's MaterializedNumericBlob gives callers
// over a decoded metric — adapted here from per-metric timeseries access
// to per-row/per-column tabular access.
type MaterializedBlock struct {
	schema    schema.Schema
	numRows   int
	layout    *schema.Layout
	blockType block.Type
	reader    *cellReader
}

// Materialize decodes b's addressing (but not its cell values — those
// are read lazily per RowAt/ColumnAt/CellAt call, since most callers
// only touch a fraction of a block's cells).
func Materialize(b block.Block) *MaterializedBlock {
	mode := schema.RowMode
	if b.Type == block.ColumnarBlock {
		mode = schema.ColumnarMode
	}

	return &MaterializedBlock{
		schema:    b.Schema,
		numRows:   b.NumRows,
		layout:    schema.Analyze(b.Schema, mode, b.NumRows),
		blockType: b.Type,
		reader:    newCellReader(b.FixedBytes, b.VariableBytes, b.ReverseDict),
	}
}

func (m *MaterializedBlock) cellOffset(rowIdx, colIdx int) int {
	if m.blockType == block.RowBlock {
		return rowIdx*m.layout.RowStride + m.layout.ColumnOffsets[colIdx]
	}

	width := schema.WidthOf(m.schema[colIdx].Type)

	return m.layout.CumulativeOffsets[colIdx] + rowIdx*width
}

// CellAt decodes the single cell at (rowIdx, colIdx).
func (m *MaterializedBlock) CellAt(rowIdx, colIdx int) (any, error) {
	if rowIdx < 0 || rowIdx >= m.numRows {
		return nil, fmt.Errorf("%w: row index %d out of range [0,%d)", errs.ErrColumnCountMismatch, rowIdx, m.numRows)
	}
	if colIdx < 0 || colIdx >= len(m.schema) {
		return nil, fmt.Errorf("%w: column index %d out of range", errs.ErrColumnCountMismatch, colIdx)
	}

	return m.reader.readCell(m.schema[colIdx], m.cellOffset(rowIdx, colIdx))
}

// RowAt decodes every cell of row rowIdx in schema column order.
func (m *MaterializedBlock) RowAt(rowIdx int) ([]any, error) {
	row := make([]any, len(m.schema))
	for colIdx := range m.schema {
		v, err := m.CellAt(rowIdx, colIdx)
		if err != nil {
			return nil, err
		}
		row[colIdx] = v
	}

	return row, nil
}

// ColumnAt decodes every cell of column colIdx in row order.
func (m *MaterializedBlock) ColumnAt(colIdx int) ([]any, error) {
	col := make([]any, m.numRows)
	for rowIdx := range col {
		v, err := m.CellAt(rowIdx, colIdx)
		if err != nil {
			return nil, err
		}
		col[rowIdx] = v
	}

	return col, nil
}

// NumRows returns the row count of the materialized block.
func (m *MaterializedBlock) NumRows() int {
	return m.numRows
}

// Schema returns the schema of the materialized block.
func (m *MaterializedBlock) Schema() schema.Schema {
	return m.schema
}
