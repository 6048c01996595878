// Package block assembles the frozen output of an encode.RowBuilder or
// encode.ColumnarBuilder into a Block: the self-describing product this
// module hands to its collaborators.
package block

import "github.com/arclake/datablock/schema"

// Type distinguishes the two fixed-region layouts a Block can carry.
// Only the interleaving of FixedBytes differs between them; VariableBytes
// and ReverseDict are identical in shape either way.
type Type uint8

const (
	// RowBlock interleaves all columns' cells within each row.
	RowBlock Type = iota
	// ColumnarBlock concatenates each column's cells back to back.
	ColumnarBlock
)

func (t Type) String() string {
	switch t {
	case RowBlock:
		return "ROW"
	case ColumnarBlock:
		return "COLUMNAR"
	default:
		return "UNKNOWN"
	}
}

// Block is the frozen product of a builder: row count, schema, the
// reverse-dictionary map, and the two byte regions.
// It is a value object safe to hand to another goroutine once produced —
// nothing in it is mutated after assembly.
type Block struct {
	Type          Type
	NumRows       int
	NumColumns    int
	Schema        schema.Schema
	ReverseDict   map[string]map[int32]string
	FixedBytes    []byte
	VariableBytes []byte
}
