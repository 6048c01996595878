// Package decode is the literal inverse of encode: it reads a
// block.Block's FixedBytes/VariableBytes back into Go-native values.
// Downstream query engines read blocks over the wire and decode them
// independently, but a block nothing in this module can read back
// cannot be round-trip tested, so encoder and decoder ship as one
// package pair.
package decode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arclake/datablock/bigdecimal"
	"github.com/arclake/datablock/errs"
	"github.com/arclake/datablock/schema"
)

// cellReader reads cells out of a Block's two byte regions. Grounded on
// blob/numeric_decoder.go's forward-only field-at-a-time parsing, but a
// Block's fixed region supports direct addressed reads (no delta-offset
// index entries to walk), so cellReader exposes random access by
// (offset) rather than a cursor.
type cellReader struct {
	fixed    []byte
	variable []byte
	engine   binary.ByteOrder
	reverse  map[string]map[int32]string
}

func newCellReader(fixed, variable []byte, reverse map[string]map[int32]string) *cellReader {
	return &cellReader{fixed: fixed, variable: variable, engine: binary.BigEndian, reverse: reverse}
}

func (r *cellReader) int32At(offset int) (int32, error) {
	if offset < 0 || offset+4 > len(r.fixed) {
		return 0, errs.ErrTruncatedData
	}

	return int32(r.engine.Uint32(r.fixed[offset : offset+4])), nil //nolint:gosec
}

func (r *cellReader) int64At(offset int) (int64, error) {
	if offset < 0 || offset+8 > len(r.fixed) {
		return 0, errs.ErrTruncatedData
	}

	return int64(r.engine.Uint64(r.fixed[offset : offset+8])), nil //nolint:gosec
}

func (r *cellReader) float32At(offset int) (float32, error) {
	bits, err := r.int32At(offset)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(bits)), nil
}

func (r *cellReader) float64At(offset int) (float64, error) {
	bits, err := r.int64At(offset)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(uint64(bits)), nil
}

// indirectAt reads the (offset:int32, length:int32) pair at fixed-region
// position at.
func (r *cellReader) indirectAt(at int) (offset, length int, err error) {
	o, err := r.int32At(at)
	if err != nil {
		return 0, 0, err
	}
	l, err := r.int32At(at + 4)
	if err != nil {
		return 0, 0, err
	}

	return int(o), int(l), nil
}

func (r *cellReader) variableSlice(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(r.variable) {
		return nil, errs.ErrTruncatedData
	}

	return r.variable[offset : offset+length], nil
}

// readCell decodes the cell at fixed-region offset cellOffset, declared
// as col.Type. Scalar cells come back in the Go shapes encode.dispatchCell
// accepts (int32, int64, float32, float64, bigdecimal.Decimal, string,
// []byte); OBJECT cells come back as this package's Object, and array
// cells as plain element slices ([]int32, []int64, []float32, []float64,
// []string) rather than as a widen.ArrayInput.
func (r *cellReader) readCell(col schema.Column, cellOffset int) (any, error) {
	switch col.Type {
	case schema.Int:
		return r.int32At(cellOffset)

	case schema.Long:
		return r.int64At(cellOffset)

	case schema.Float:
		return r.float32At(cellOffset)

	case schema.Double:
		return r.float64At(cellOffset)

	case schema.BigDecimal:
		offset, length, err := r.indirectAt(cellOffset)
		if err != nil {
			return nil, err
		}
		payload, err := r.variableSlice(offset, length)
		if err != nil {
			return nil, err
		}
		d, ok := bigdecimal.Decode(payload)
		if !ok {
			return nil, errs.ErrTruncatedData
		}

		return d, nil

	case schema.String:
		id, err := r.int32At(cellOffset)
		if err != nil {
			return nil, err
		}

		return r.resolveString(col.Name, id)

	case schema.Bytes:
		offset, length, err := r.indirectAt(cellOffset)
		if err != nil {
			return nil, err
		}

		return r.variableSlice(offset, length)

	case schema.Object:
		return r.readObject(cellOffset)

	case schema.BooleanArray, schema.IntArray:
		return r.readInt32Array(cellOffset)

	case schema.LongArray, schema.TimestampArray:
		return r.readInt64Array(cellOffset)

	case schema.FloatArray:
		return r.readFloat32Array(cellOffset)

	case schema.DoubleArray:
		return r.readFloat64Array(cellOffset)

	case schema.StringArray, schema.BytesArray:
		return r.readStringArray(col.Name, cellOffset)

	default:
		return nil, fmt.Errorf("%w: column %q has type %s", errs.ErrUnsupportedType, col.Name, col.Type)
	}
}

func (r *cellReader) resolveString(colName string, id int32) (string, error) {
	dict, ok := r.reverse[colName]
	if !ok {
		return "", fmt.Errorf("%w: no dictionary for column %q", errs.ErrTruncatedData, colName)
	}
	s, ok := dict[id]
	if !ok {
		return "", fmt.Errorf("%w: no entry for id %d in column %q", errs.ErrTruncatedData, id, colName)
	}

	return s, nil
}
