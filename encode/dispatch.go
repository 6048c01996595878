package encode

import (
	"fmt"

	"github.com/arclake/datablock/bigdecimal"
	"github.com/arclake/datablock/dict"
	"github.com/arclake/datablock/errs"
	"github.com/arclake/datablock/schema"
	"github.com/arclake/datablock/widen"
)

// dispatchCell routes a single cell's value to its type-specific
// sub-encoder and writes the fixed-region cell at cellOffset, exactly
// mirroring Pinot DataBlockBuilder's switch on the column's declared
// type (ported to Go: explicit error returns in place of
// IllegalStateException). colIdx identifies the column for the
// dictionary manager; arrays route through widen before being written.
func dispatchCell(col schema.Column, colIdx int, cellOffset int, value any, fw *fixedWriter, vw *variableWriter, dm *dict.Manager) error {
	switch col.Type {
	case schema.Int:
		v, ok := value.(int32)
		if !ok {
			return mismatch(col)
		}
		fw.PutInt32(cellOffset, v)

	case schema.Long:
		v, ok := value.(int64)
		if !ok {
			return mismatch(col)
		}
		fw.PutInt64(cellOffset, v)

	case schema.Float:
		v, ok := value.(float32)
		if !ok {
			return mismatch(col)
		}
		fw.PutFloat32(cellOffset, v)

	case schema.Double:
		v, ok := value.(float64)
		if !ok {
			return mismatch(col)
		}
		fw.PutFloat64(cellOffset, v)

	case schema.BigDecimal:
		v, ok := value.(bigdecimal.Decimal)
		if !ok {
			return mismatch(col)
		}
		offset, length := vw.WriteBigDecimal(v)
		if err := checkOffsetRange(offset, length); err != nil {
			return err
		}
		fw.PutIndirect(cellOffset, int32(offset), int32(length)) //nolint:gosec

	case schema.String:
		v, ok := value.(string)
		if !ok {
			return mismatch(col)
		}
		id := dm.Intern(colIdx, v)
		fw.PutInt32(cellOffset, id)

	case schema.Bytes:
		v, ok := value.([]byte)
		if !ok {
			return mismatch(col)
		}
		offset, length := vw.WriteBytes(v)
		if err := checkOffsetRange(offset, length); err != nil {
			return err
		}
		fw.PutIndirect(cellOffset, int32(offset), int32(length)) //nolint:gosec

	case schema.Object:
		v, ok := value.(Object)
		if !ok {
			return mismatch(col)
		}
		offset, length := vw.WriteObject(v.Tag, v.Payload)
		if err := checkOffsetRange(offset, length); err != nil {
			return err
		}
		fw.PutIndirect(cellOffset, int32(offset), int32(length)) //nolint:gosec

	case schema.BooleanArray, schema.IntArray:
		in, ok := value.(widen.ArrayInput)
		if !ok {
			return mismatch(col)
		}
		elems, err := widen.ToInt32(in)
		if err != nil {
			return wrapTypeErr(col, err)
		}
		offset, length := vw.WriteInt32Array(elems)
		if err := checkOffsetRange(offset, length); err != nil {
			return err
		}
		fw.PutIndirect(cellOffset, int32(offset), int32(length)) //nolint:gosec

	case schema.LongArray, schema.TimestampArray:
		in, ok := value.(widen.ArrayInput)
		if !ok {
			return mismatch(col)
		}
		elems, err := widen.ToInt64(in)
		if err != nil {
			return wrapTypeErr(col, err)
		}
		offset, length := vw.WriteInt64Array(elems)
		if err := checkOffsetRange(offset, length); err != nil {
			return err
		}
		fw.PutIndirect(cellOffset, int32(offset), int32(length)) //nolint:gosec

	case schema.FloatArray:
		in, ok := value.(widen.ArrayInput)
		if !ok {
			return mismatch(col)
		}
		elems, err := widen.ToFloat32(in)
		if err != nil {
			return wrapTypeErr(col, err)
		}
		offset, length := vw.WriteFloat32Array(elems)
		if err := checkOffsetRange(offset, length); err != nil {
			return err
		}
		fw.PutIndirect(cellOffset, int32(offset), int32(length)) //nolint:gosec

	case schema.DoubleArray:
		in, ok := value.(widen.ArrayInput)
		if !ok {
			return mismatch(col)
		}
		elems, err := widen.ToFloat64(in)
		if err != nil {
			return wrapTypeErr(col, err)
		}
		offset, length := vw.WriteFloat64Array(elems)
		if err := checkOffsetRange(offset, length); err != nil {
			return err
		}
		fw.PutIndirect(cellOffset, int32(offset), int32(length)) //nolint:gosec

	case schema.StringArray, schema.BytesArray:
		// BYTES_ARRAY routes through the same dictionary path as
		// STRING_ARRAY: each element is interned as a string, not
		// stored as raw bytes.
		in, ok := value.(widen.ArrayInput)
		if !ok {
			return mismatch(col)
		}
		strs, err := widen.ToStrings(in)
		if err != nil {
			return wrapTypeErr(col, err)
		}
		ids := make([]int32, len(strs))
		for i, s := range strs {
			ids[i] = dm.Intern(colIdx, s)
		}
		offset, length := vw.WriteStringArrayIDs(ids)
		if err := checkOffsetRange(offset, length); err != nil {
			return err
		}
		fw.PutIndirect(cellOffset, int32(offset), int32(length)) //nolint:gosec

	default:
		return fmt.Errorf("%w: column %q has type %s", errs.ErrUnsupportedType, col.Name, col.Type)
	}

	return nil
}

func mismatch(col schema.Column) error {
	return fmt.Errorf("%w: column %q declared as %s", errs.ErrTypeMismatch, col.Name, col.Type)
}

func wrapTypeErr(col schema.Column, err error) error {
	return fmt.Errorf("%w: column %q declared as %s: %w", errs.ErrTypeMismatch, col.Name, col.Type, err)
}
