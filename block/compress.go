package block

import (
	"github.com/arclake/datablock/compress"
	"github.com/arclake/datablock/format"
)

// CompressedBlock is an outer-frame compressed rendering of a Block's two
// byte regions: an optional transport-level step applied only after the
// Block's wire layout is already fixed. Nothing here changes FixedBytes'
// interleaving or VariableBytes' offsets, only how the already-assembled
// bytes travel over the wire.
type CompressedBlock struct {
	Algorithm        format.CompressionType
	NumRows          int
	NumColumns       int
	Schema           [][2]string // (name, type-string) pairs, framing detail for the collaborator
	ReverseDict      map[string]map[int32]string
	FixedBytes       []byte // compressed
	VariableBytes    []byte // compressed
	FixedBytesLen    int    // original length, needed to size the decompression buffer
	VariableBytesLen int
}

// Compress compresses b's FixedBytes and VariableBytes independently
// with codec (algo identifies it in the output, since compress.Codec
// itself carries no self-describing type), leaving everything else
// (schema, row/column counts, reverse dictionary) as plain data the
// collaborator's mailbox frame carries alongside the compressed
// payloads.
func (b Block) Compress(algo format.CompressionType, codec compress.Codec) (CompressedBlock, error) {
	fixed, err := codec.Compress(b.FixedBytes)
	if err != nil {
		return CompressedBlock{}, err
	}

	variable, err := codec.Compress(b.VariableBytes)
	if err != nil {
		return CompressedBlock{}, err
	}

	schemaPairs := make([][2]string, len(b.Schema))
	for i, col := range b.Schema {
		schemaPairs[i] = [2]string{col.Name, col.Type.String()}
	}

	return CompressedBlock{
		Algorithm:        algo,
		NumRows:          b.NumRows,
		NumColumns:       b.NumColumns,
		Schema:           schemaPairs,
		ReverseDict:      b.ReverseDict,
		FixedBytes:       fixed,
		VariableBytes:    variable,
		FixedBytesLen:    len(b.FixedBytes),
		VariableBytesLen: len(b.VariableBytes),
	}, nil
}

// Decompress reverses Compress, given the codec used to produce cb. An
// empty region comes back as an empty, non-nil slice, the way a builder
// produces it, even when the codec itself decompresses empty input to nil.
func (cb CompressedBlock) Decompress(codec compress.Codec) (fixedBytes, variableBytes []byte, err error) {
	fixedBytes, err = codec.Decompress(cb.FixedBytes)
	if err != nil {
		return nil, nil, err
	}

	variableBytes, err = codec.Decompress(cb.VariableBytes)
	if err != nil {
		return nil, nil, err
	}

	if fixedBytes == nil {
		fixedBytes = []byte{}
	}
	if variableBytes == nil {
		variableBytes = []byte{}
	}

	return fixedBytes, variableBytes, nil
}
