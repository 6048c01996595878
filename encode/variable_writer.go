package encode

import (
	"math"

	"github.com/arclake/datablock/bigdecimal"
	"github.com/arclake/datablock/endian"
	"github.com/arclake/datablock/errs"
	"github.com/arclake/datablock/internal/buffer"
)

// variableWriter is the append-only byte stream backing every
// variable-indirect cell. Offsets recorded into the fixed region are
// always Size() at the moment a value's payload write begins, which is
// why every Write* method below reads Size() first and returns it as
// the offset. Offset and length are returned as
// plain int; checkOffsetRange validates int32 fit once, at the point
// where a caller is about to write them into the fixed region, rather
// than truncating silently inside each Write* method.
//
// Grounded on encoding/varstring.go's Write/WriteSlice/Size shape,
// generalized from "one length-prefixed string" to the five variable
// payload kinds this module defines.
type variableWriter struct {
	buf    *buffer.ByteBuffer
	engine endian.EndianEngine
}

func newVariableWriter(initialSize int, engine endian.EndianEngine) *variableWriter {
	if initialSize <= 0 {
		initialSize = buffer.DefaultSize
	}

	return &variableWriter{
		buf:    buffer.New(initialSize),
		engine: engine,
	}
}

// Size returns the current length of the variable region, i.e. the
// offset the next write will be recorded at.
func (w *variableWriter) Size() int {
	return w.buf.Len()
}

// Bytes returns the accumulated variable region.
func (w *variableWriter) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *variableWriter) putUint32(v uint32) {
	var tmp [4]byte
	w.engine.PutUint32(tmp[:], v)
	w.buf.MustWrite(tmp[:])
}

func (w *variableWriter) putUint64(v uint64) {
	var tmp [8]byte
	w.engine.PutUint64(tmp[:], v)
	w.buf.MustWrite(tmp[:])
}

// WriteBigDecimal appends d's sign-magnitude encoding and returns
// the (offset, length) pair for the fixed-region indirect cell.
func (w *variableWriter) WriteBigDecimal(d bigdecimal.Decimal) (offset, length int) {
	offset = w.Size()
	payload := bigdecimal.Encode(d)
	w.buf.MustWrite(payload)

	return offset, len(payload)
}

// WriteBytes appends the raw bytes of b as-is.
func (w *variableWriter) WriteBytes(b []byte) (offset, length int) {
	offset = w.Size()
	w.buf.MustWrite(b)

	return offset, len(b)
}

// WriteObject appends tag (int32) followed by payload, but returns a
// length covering only payload — the fixed-region length for OBJECT
// cells deliberately excludes the 4-byte tag: decoders read the tag
// first, then length bytes.
func (w *variableWriter) WriteObject(tag int32, payload []byte) (offset, length int) {
	offset = w.Size()
	w.putUint32(uint32(tag))
	w.buf.MustWrite(payload)

	return offset, len(payload)
}

// WriteInt32Array appends a 4-byte element count followed by elements,
// each big-endian int32 (numeric array element payload).
func (w *variableWriter) WriteInt32Array(elems []int32) (offset, length int) {
	offset = w.Size()
	w.putUint32(uint32(len(elems))) //nolint:gosec
	for _, v := range elems {
		w.putUint32(uint32(v))
	}

	return offset, w.Size() - offset
}

// WriteInt64Array appends a 4-byte element count followed by elements,
// each big-endian int64.
func (w *variableWriter) WriteInt64Array(elems []int64) (offset, length int) {
	offset = w.Size()
	w.putUint32(uint32(len(elems))) //nolint:gosec
	for _, v := range elems {
		w.putUint64(uint64(v))
	}

	return offset, w.Size() - offset
}

// WriteFloat32Array appends a 4-byte element count followed by elements,
// each IEEE-754 binary32.
func (w *variableWriter) WriteFloat32Array(elems []float32) (offset, length int) {
	offset = w.Size()
	w.putUint32(uint32(len(elems))) //nolint:gosec
	for _, v := range elems {
		w.putUint32(math.Float32bits(v))
	}

	return offset, w.Size() - offset
}

// WriteFloat64Array appends a 4-byte element count followed by elements,
// each IEEE-754 binary64.
func (w *variableWriter) WriteFloat64Array(elems []float64) (offset, length int) {
	offset = w.Size()
	w.putUint32(uint32(len(elems))) //nolint:gosec
	for _, v := range elems {
		w.putUint64(math.Float64bits(v))
	}

	return offset, w.Size() - offset
}

// WriteStringArrayIDs appends a 4-byte element count followed by `count`
// 4-byte dictionary ids (STRING_ARRAY and BYTES_ARRAY both route their
// elements through the dictionary and write ids here, never raw bytes).
func (w *variableWriter) WriteStringArrayIDs(ids []int32) (offset, length int) {
	offset = w.Size()
	w.putUint32(uint32(len(ids))) //nolint:gosec
	for _, id := range ids {
		w.putUint32(uint32(id))
	}

	return offset, w.Size() - offset
}

// checkOffsetRange verifies offset/length fit in int32, returning
// errs.ErrOffsetOverflow otherwise. The variable region is an in-memory
// growable buffer so it can in principle exceed 2^31 bytes; the wire
// format cannot.
func checkOffsetRange(offset, length int) error {
	if offset < 0 || length < 0 || offset > math.MaxInt32 || length > math.MaxInt32 {
		return errs.ErrOffsetOverflow
	}

	return nil
}
