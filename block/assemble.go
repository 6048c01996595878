package block

import "github.com/arclake/datablock/encode"

// AssembleRow freezes b and packages its output as a RowBlock. Grounded
// on NumericEncoder.Finish()'s freeze-and-pack structure: the builder's
// own Freeze does the state-machine transition and validation, this
// function only reshapes the result into a Block.
func AssembleRow(b *encode.RowBuilder) (Block, error) {
	out, err := b.Freeze()
	if err != nil {
		return Block{}, err
	}

	return Block{
		Type:          RowBlock,
		NumRows:       out.NumRows,
		NumColumns:    len(out.Schema),
		Schema:        out.Schema,
		ReverseDict:   out.ReverseDict,
		FixedBytes:    out.FixedBytes,
		VariableBytes: out.VarBytes,
	}, nil
}

// AssembleColumnar freezes b and packages its output as a ColumnarBlock.
func AssembleColumnar(b *encode.ColumnarBuilder) (Block, error) {
	out, err := b.Freeze()
	if err != nil {
		return Block{}, err
	}

	return Block{
		Type:          ColumnarBlock,
		NumRows:       out.NumRows,
		NumColumns:    len(out.Schema),
		Schema:        out.Schema,
		ReverseDict:   out.ReverseDict,
		FixedBytes:    out.FixedBytes,
		VariableBytes: out.VarBytes,
	}, nil
}
