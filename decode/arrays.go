package decode

import (
	"math"

	"github.com/arclake/datablock/errs"
)

// readInt32Array decodes a numeric array variable payload (4-byte count
// then elements) for BOOLEAN_ARRAY/INT_ARRAY cells.
func (r *cellReader) readInt32Array(cellOffset int) ([]int32, error) {
	offset, length, err := r.indirectAt(cellOffset)
	if err != nil {
		return nil, err
	}
	payload, err := r.variableSlice(offset, length)
	if err != nil {
		return nil, err
	}

	count, body, err := splitCount(payload)
	if err != nil {
		return nil, err
	}
	if len(body) != count*4 {
		return nil, errs.ErrTruncatedData
	}

	out := make([]int32, count)
	for i := range out {
		out[i] = int32(r.engine.Uint32(body[i*4 : i*4+4])) //nolint:gosec
	}

	return out, nil
}

// readInt64Array decodes a numeric array payload for
// LONG_ARRAY/TIMESTAMP_ARRAY cells.
func (r *cellReader) readInt64Array(cellOffset int) ([]int64, error) {
	offset, length, err := r.indirectAt(cellOffset)
	if err != nil {
		return nil, err
	}
	payload, err := r.variableSlice(offset, length)
	if err != nil {
		return nil, err
	}

	count, body, err := splitCount(payload)
	if err != nil {
		return nil, err
	}
	if len(body) != count*8 {
		return nil, errs.ErrTruncatedData
	}

	out := make([]int64, count)
	for i := range out {
		out[i] = int64(r.engine.Uint64(body[i*8 : i*8+8])) //nolint:gosec
	}

	return out, nil
}

// readFloat32Array decodes a FLOAT_ARRAY variable payload.
func (r *cellReader) readFloat32Array(cellOffset int) ([]float32, error) {
	ints, err := r.readInt32AsFloatBits(cellOffset)
	if err != nil {
		return nil, err
	}

	out := make([]float32, len(ints))
	for i, bits := range ints {
		out[i] = math.Float32frombits(bits)
	}

	return out, nil
}

// readFloat64Array decodes a DOUBLE_ARRAY variable payload.
func (r *cellReader) readFloat64Array(cellOffset int) ([]float64, error) {
	offset, length, err := r.indirectAt(cellOffset)
	if err != nil {
		return nil, err
	}
	payload, err := r.variableSlice(offset, length)
	if err != nil {
		return nil, err
	}

	count, body, err := splitCount(payload)
	if err != nil {
		return nil, err
	}
	if len(body) != count*8 {
		return nil, errs.ErrTruncatedData
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(r.engine.Uint64(body[i*8 : i*8+8]))
	}

	return out, nil
}

// readStringArray decodes a STRING_ARRAY/BYTES_ARRAY variable payload
// (4-byte count then that many 4-byte dictionary ids), resolving each id
// through colName's reverse dictionary.
func (r *cellReader) readStringArray(colName string, cellOffset int) ([]string, error) {
	offset, length, err := r.indirectAt(cellOffset)
	if err != nil {
		return nil, err
	}
	payload, err := r.variableSlice(offset, length)
	if err != nil {
		return nil, err
	}

	count, body, err := splitCount(payload)
	if err != nil {
		return nil, err
	}
	if len(body) != count*4 {
		return nil, errs.ErrTruncatedData
	}

	out := make([]string, count)
	for i := range out {
		id := int32(r.engine.Uint32(body[i*4 : i*4+4])) //nolint:gosec
		s, err := r.resolveString(colName, id)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}

// readInt32AsFloatBits is readFloat32Array's shared fixed/variable
// reading step, kept separate so the bit reinterpretation reads clearly
// at the call site.
func (r *cellReader) readInt32AsFloatBits(cellOffset int) ([]uint32, error) {
	offset, length, err := r.indirectAt(cellOffset)
	if err != nil {
		return nil, err
	}
	payload, err := r.variableSlice(offset, length)
	if err != nil {
		return nil, err
	}

	count, body, err := splitCount(payload)
	if err != nil {
		return nil, err
	}
	if len(body) != count*4 {
		return nil, errs.ErrTruncatedData
	}

	out := make([]uint32, count)
	for i := range out {
		out[i] = r.engine.Uint32(body[i*4 : i*4+4])
	}

	return out, nil
}

// splitCount reads the 4-byte element count prefix shared by every
// variable-array payload and returns the remaining element bytes.
func splitCount(payload []byte) (count int, body []byte, err error) {
	if len(payload) < 4 {
		return 0, nil, errs.ErrTruncatedData
	}

	c := int32(payload[0])<<24 | int32(payload[1])<<16 | int32(payload[2])<<8 | int32(payload[3])

	return int(c), payload[4:], nil
}
