package encode

import (
	"math"

	"github.com/arclake/datablock/endian"
)

// fixedWriter writes cell payloads into a pre-sized fixed region,
// always big-endian: the declared type alone determines a cell's
// byte width and therefore its offset, so the region is allocated once
// up front rather than grown incrementally the way the variable region
// is.
type fixedWriter struct {
	buf    []byte
	engine endian.EndianEngine
}

// newFixedWriter allocates a fixed region of exactly size bytes, written
// through engine (configured via WithEndian — big-endian is the only
// value accepted there).
func newFixedWriter(size int, engine endian.EndianEngine) *fixedWriter {
	return &fixedWriter{
		buf:    make([]byte, size),
		engine: engine,
	}
}

func (w *fixedWriter) PutInt32(offset int, v int32) {
	w.engine.PutUint32(w.buf[offset:offset+4], uint32(v))
}

func (w *fixedWriter) PutInt64(offset int, v int64) {
	w.engine.PutUint64(w.buf[offset:offset+8], uint64(v))
}

func (w *fixedWriter) PutFloat32(offset int, v float32) {
	w.engine.PutUint32(w.buf[offset:offset+4], math.Float32bits(v))
}

func (w *fixedWriter) PutFloat64(offset int, v float64) {
	w.engine.PutUint64(w.buf[offset:offset+8], math.Float64bits(v))
}

// PutIndirect writes the 8-byte (offset:int32, length:int32) pair shared
// by BIG_DECIMAL, BYTES, OBJECT, and every *_ARRAY cell.
func (w *fixedWriter) PutIndirect(at int, offset, length int32) {
	w.PutInt32(at, offset)
	w.PutInt32(at+4, length)
}

// Bytes returns the fixed region. Valid once every cell has been written;
// the caller (a builder) owns the lifetime.
func (w *fixedWriter) Bytes() []byte {
	return w.buf
}
