package decode

import "github.com/arclake/datablock/errs"

// Object mirrors encode.Object: the caller-facing value an OBJECT cell
// decodes to. Declared separately here (rather than importing encode)
// since decode is encode's inverse, not its dependent — importing it
// back would make the two packages circularly coupled for no reason
// other than sharing a two-field struct.
type Object struct {
	Tag     int32
	Payload []byte
}

// readObject decodes an OBJECT cell: the fixed-region length excludes
// the 4-byte tag, so the tag is read first and
// the remaining length bytes are the payload.
func (r *cellReader) readObject(cellOffset int) (Object, error) {
	offset, length, err := r.indirectAt(cellOffset)
	if err != nil {
		return Object{}, err
	}

	if offset < 0 || offset+4+length > len(r.variable) {
		return Object{}, errs.ErrTruncatedData
	}

	tag := int32(r.engine.Uint32(r.variable[offset : offset+4])) //nolint:gosec
	payload := r.variable[offset+4 : offset+4+length]

	return Object{Tag: tag, Payload: payload}, nil
}
