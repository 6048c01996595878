package encode

import (
	"fmt"

	"github.com/arclake/datablock/dict"
	"github.com/arclake/datablock/errs"
	"github.com/arclake/datablock/internal/options"
	"github.com/arclake/datablock/schema"
)

// builderState is the Created -> Writing -> Frozen lifecycle every
// builder goes through, tracked explicitly rather than inferred from
// some other field reaching a sentinel value.
type builderState uint8

const (
	stateCreated builderState = iota
	stateWriting
	stateFrozen
)

// RowBuilder accumulates rows against a fixed schema, interleaving each
// row's cells into a single fixed region (row mode). Not reusable:
// once Freeze is called (via block.AssembleRow) a new builder must be
// created for further encoding, the same one-shot contract as
// NumericEncoder.Finish().
type RowBuilder struct {
	schema schema.Schema
	layout *schema.Layout
	dicts  *dict.Manager
	fw     *fixedWriter
	vw     *variableWriter
	cfg    builderConfig

	numRows int
	state   builderState
}

// NewRowBuilder creates a RowBuilder for numRows rows of s. Unlike
// ColumnarBuilder, row mode's per-row offsets don't depend on numRows
// (only the total allocation does), but the row count is still required
// up front so the fixed region can be sized once.
func NewRowBuilder(s schema.Schema, numRows int, opts ...RowBuilderOption) (*RowBuilder, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if numRows < 0 {
		return nil, fmt.Errorf("%w: numRows must be non-negative", errs.ErrColumnCountMismatch)
	}

	cfg := defaultBuilderConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	layout := schema.Analyze(s, schema.RowMode, numRows)

	return &RowBuilder{
		schema:  s,
		layout:  layout,
		dicts:   dict.NewManager(s),
		fw:      newFixedWriter(layout.TotalFixedSize(), cfg.engine),
		vw:      newVariableWriter(cfg.initialVarBufSize, cfg.engine),
		cfg:     cfg,
		numRows: numRows,
	}, nil
}

// AddRow writes one row. values must have exactly len(schema) entries,
// positionally matching the schema's column order. rowIdx is the row's
// 0-based position; rows may be written in any order since each row's
// fixed-region offset is independent, but the variable region's
// offset invariant only holds if a given row's cells are written
// in a single AddRow call — interleaving two rows' writes is not
// supported.
func (b *RowBuilder) AddRow(rowIdx int, values []any) error {
	if b.state == stateFrozen {
		return errs.ErrBuilderFrozen
	}
	if rowIdx < 0 || rowIdx >= b.numRows {
		return fmt.Errorf("%w: row index %d out of range [0,%d)", errs.ErrColumnCountMismatch, rowIdx, b.numRows)
	}
	if len(values) != len(b.schema) {
		return fmt.Errorf("%w: got %d values, schema has %d columns", errs.ErrColumnCountMismatch, len(values), len(b.schema))
	}

	rowBase := rowIdx * b.layout.RowStride

	for colIdx, col := range b.schema {
		if err := b.checkStringLength(col, values[colIdx]); err != nil {
			return err
		}

		cellOffset := rowBase + b.layout.ColumnOffsets[colIdx]
		if err := dispatchCell(col, colIdx, cellOffset, values[colIdx], b.fw, b.vw, b.dicts); err != nil {
			return err
		}
	}

	b.state = stateWriting

	return nil
}

func (b *RowBuilder) checkStringLength(col schema.Column, value any) error {
	if b.cfg.maxStringLen <= 0 || !col.Type.IsString() {
		return nil
	}

	if s, ok := value.(string); ok && len(s) > b.cfg.maxStringLen {
		return fmt.Errorf("%w: column %q string length %d exceeds max %d", errs.ErrStringTooLong, col.Name, len(s), b.cfg.maxStringLen)
	}

	return nil
}

// Freeze transitions the builder to the Frozen state and returns the
// data block.AssembleRow needs. Calling it twice returns
// errs.ErrBuilderFrozen.
func (b *RowBuilder) Freeze() (RowBuilderOutput, error) {
	if b.state == stateFrozen {
		return RowBuilderOutput{}, errs.ErrBuilderFrozen
	}
	if b.state == stateCreated {
		return RowBuilderOutput{}, errs.ErrEmptyBlock
	}

	b.state = stateFrozen

	return RowBuilderOutput{
		Schema:      b.schema,
		NumRows:     b.numRows,
		FixedBytes:  b.fw.Bytes(),
		VarBytes:    b.vw.Bytes(),
		ReverseDict: b.dicts.ReverseDicts(b.schema),
	}, nil
}

// RowBuilderOutput is the data a frozen RowBuilder hands to
// block.AssembleRow.
type RowBuilderOutput struct {
	Schema      schema.Schema
	NumRows     int
	FixedBytes  []byte
	VarBytes    []byte
	ReverseDict map[string]map[int32]string
}
