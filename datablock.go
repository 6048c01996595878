// Package datablock provides a schema-driven binary serializer for
// tabular query results, modeled on Apache Pinot's DataBlockBuilder.
//
// # Core Features
//
//   - Fixed/variable region split wire format, big-endian throughout
//   - Row-mode and columnar-mode fixed-region layouts
//   - String and bytes-array interning through a per-column dictionary
//   - Numeric array widening (INT_ARRAY into a LONG_ARRAY/DOUBLE_ARRAY column)
//   - Optional outer-frame compression (zstd, s2, lz4)
//
// # Basic Usage
//
// Encoding a table of rows:
//
//	import "github.com/arclake/datablock"
//	import "github.com/arclake/datablock/schema"
//
//	s := schema.Schema{
//	    {Name: "id", Type: schema.Int},
//	    {Name: "name", Type: schema.String},
//	}
//	blk, err := datablock.BuildFromRows(s, [][]any{
//	    {int32(1), "alice"},
//	    {int32(2), "bob"},
//	})
//
// Decoding it back:
//
//	m := decode.Materialize(blk)
//	row, _ := m.RowAt(0)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around encode,
// block, and decode. For fine-grained control over builder options or
// compression, use those packages directly.
package datablock

import (
	"github.com/arclake/datablock/block"
	"github.com/arclake/datablock/encode"
	"github.com/arclake/datablock/schema"
)

// BuildFromRows encodes rows against s in row mode and returns the
// assembled Block. Each entry of rows must have exactly len(s) values,
// one per column in schema order.
//
// Example:
//
//	blk, err := datablock.BuildFromRows(s, [][]any{{int32(1), "alice"}})
func BuildFromRows(s schema.Schema, rows [][]any, opts ...encode.RowBuilderOption) (block.Block, error) {
	b, err := encode.NewRowBuilder(s, len(rows), opts...)
	if err != nil {
		return block.Block{}, err
	}

	for i, row := range rows {
		if err := b.AddRow(i, row); err != nil {
			return block.Block{}, err
		}
	}

	return block.AssembleRow(b)
}

// BuildFromColumns encodes columns against s in columnar mode and
// returns the assembled Block. Each entry of columns must have exactly
// numRows values, one per row, and columns must have exactly len(s)
// entries, one per column in schema order.
//
// Example:
//
//	blk, err := datablock.BuildFromColumns(s, 2, [][]any{
//	    {int32(1), int32(2)},
//	    {"alice", "bob"},
//	})
func BuildFromColumns(s schema.Schema, numRows int, columns [][]any, opts ...encode.ColumnarBuilderOption) (block.Block, error) {
	b, err := encode.NewColumnarBuilder(s, numRows, opts...)
	if err != nil {
		return block.Block{}, err
	}

	for i, col := range columns {
		if err := b.SetColumn(i, col); err != nil {
			return block.Block{}, err
		}
	}

	return block.AssembleColumnar(b)
}
