package encode

import (
	"fmt"

	"github.com/arclake/datablock/dict"
	"github.com/arclake/datablock/errs"
	"github.com/arclake/datablock/internal/options"
	"github.com/arclake/datablock/schema"
)

// ColumnarBuilder accumulates whole columns against a fixed schema, each
// column occupying its own contiguous span of the fixed region. numRows
// is required at construction: offsets within the fixed region depend on
// it, so the two-phase ordering (know numRows, then compute offsets,
// then write) is structural rather than a caller obligation — there is
// no constructor path that produces a ColumnarBuilder with undefined
// offsets.
type ColumnarBuilder struct {
	schema schema.Schema
	layout *schema.Layout
	dicts  *dict.Manager
	fw     *fixedWriter
	vw     *variableWriter
	cfg    builderConfig

	numRows int
	state   builderState
}

// NewColumnarBuilder creates a ColumnarBuilder for numRows rows of s.
func NewColumnarBuilder(s schema.Schema, numRows int, opts ...ColumnarBuilderOption) (*ColumnarBuilder, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if numRows < 0 {
		return nil, errs.ErrNumRowsRequired
	}

	cfg := defaultBuilderConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	layout := schema.Analyze(s, schema.ColumnarMode, numRows)

	return &ColumnarBuilder{
		schema:  s,
		layout:  layout,
		dicts:   dict.NewManager(s),
		fw:      newFixedWriter(layout.TotalFixedSize(), cfg.engine),
		vw:      newVariableWriter(cfg.initialVarBufSize, cfg.engine),
		cfg:     cfg,
		numRows: numRows,
	}, nil
}

// SetColumn writes every cell of column colIdx. values must have exactly
// numRows entries, one per row in row order. Columns may be written in
// any order; each occupies an independent span of the fixed region.
func (b *ColumnarBuilder) SetColumn(colIdx int, values []any) error {
	if b.state == stateFrozen {
		return errs.ErrBuilderFrozen
	}
	if colIdx < 0 || colIdx >= len(b.schema) {
		return fmt.Errorf("%w: column index %d out of range", errs.ErrColumnCountMismatch, colIdx)
	}
	if len(values) != b.numRows {
		return fmt.Errorf("%w: column %q got %d values, expected %d rows",
			errs.ErrRowLengthMismatch, b.schema[colIdx].Name, len(values), b.numRows)
	}

	col := b.schema[colIdx]
	colBase := b.layout.CumulativeOffsets[colIdx]
	width := schema.WidthOf(col.Type)

	for rowIdx, value := range values {
		if err := b.checkStringLength(col, value); err != nil {
			return err
		}

		cellOffset := colBase + rowIdx*width
		if err := dispatchCell(col, colIdx, cellOffset, value, b.fw, b.vw, b.dicts); err != nil {
			return err
		}
	}

	b.state = stateWriting

	return nil
}

func (b *ColumnarBuilder) checkStringLength(col schema.Column, value any) error {
	if b.cfg.maxStringLen <= 0 || !col.Type.IsString() {
		return nil
	}

	if s, ok := value.(string); ok && len(s) > b.cfg.maxStringLen {
		return fmt.Errorf("%w: column %q string length %d exceeds max %d", errs.ErrStringTooLong, col.Name, len(s), b.cfg.maxStringLen)
	}

	return nil
}

// Freeze transitions the builder to the Frozen state and returns the
// data block.AssembleColumnar needs.
func (b *ColumnarBuilder) Freeze() (ColumnarBuilderOutput, error) {
	if b.state == stateFrozen {
		return ColumnarBuilderOutput{}, errs.ErrBuilderFrozen
	}
	if b.state == stateCreated {
		return ColumnarBuilderOutput{}, errs.ErrEmptyBlock
	}

	b.state = stateFrozen

	return ColumnarBuilderOutput{
		Schema:      b.schema,
		NumRows:     b.numRows,
		FixedBytes:  b.fw.Bytes(),
		VarBytes:    b.vw.Bytes(),
		ReverseDict: b.dicts.ReverseDicts(b.schema),
	}, nil
}

// ColumnarBuilderOutput is the data a frozen ColumnarBuilder hands to
// block.AssembleColumnar.
type ColumnarBuilderOutput struct {
	Schema      schema.Schema
	NumRows     int
	FixedBytes  []byte
	VarBytes    []byte
	ReverseDict map[string]map[int32]string
}
