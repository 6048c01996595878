package encode

import (
	"github.com/arclake/datablock/endian"
	"github.com/arclake/datablock/errs"
	"github.com/arclake/datablock/internal/options"
)

// builderConfig holds the options shared by RowBuilder and
// ColumnarBuilder. Reusing internal/options verbatim in spirit: the
// generic Option[T]/Apply plumbing has no domain-specific content to
// change, only the target type and the option constructors below.
type builderConfig struct {
	engine            endian.EndianEngine
	initialVarBufSize int
	maxStringLen      int
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{
		engine:            endian.GetBigEndianEngine(),
		initialVarBufSize: 0, // 0 means "use the variableWriter default"
		maxStringLen:      0, // 0 means "no limit"
	}
}

// RowBuilderOption configures a RowBuilder at construction time.
type RowBuilderOption = options.Option[*builderConfig]

// ColumnarBuilderOption configures a ColumnarBuilder at construction time.
type ColumnarBuilderOption = options.Option[*builderConfig]

// WithEndian overrides the byte order used for the fixed and variable
// regions. Big-endian is mandated unconditionally; this hook exists for
// test doubles that want to exercise the option-application path, and
// rejects anything but a big-endian engine.
func WithEndian(engine endian.EndianEngine) options.Option[*builderConfig] {
	return options.New(func(cfg *builderConfig) error {
		if engine != endian.GetBigEndianEngine() {
			return errs.ErrUnsupportedEndian
		}
		cfg.engine = engine

		return nil
	})
}

// WithMaxStringLength caps the length of a string written into a STRING
// cell. Zero (the default) means no limit. Exceeding the limit returns
// errs.ErrStringTooLong. Elements of STRING_ARRAY and BYTES_ARRAY cells
// are not checked against the limit.
func WithMaxStringLength(max int) options.Option[*builderConfig] {
	return options.NoError(func(cfg *builderConfig) {
		cfg.maxStringLen = max
	})
}

// WithInitialVariableBufferSize hints the starting capacity of the
// variable region buffer, avoiding early reallocations for callers who
// know roughly how much variable-length data they will write.
func WithInitialVariableBufferSize(size int) options.Option[*builderConfig] {
	return options.NoError(func(cfg *builderConfig) {
		cfg.initialVarBufSize = size
	})
}
