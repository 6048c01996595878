// Package errs defines the sentinel errors returned by the schema, dict,
// widen, encode, block, and decode packages.
//
// Callers should use errors.Is against these sentinels; call sites wrap
// them with column-name/type context via fmt.Errorf("%w: ...", errs.ErrX, ...).
package errs

import "errors"

var (
	// ErrUnsupportedType is returned when a declared column type is not a
	// member of the closed schema.Type enum.
	ErrUnsupportedType = errors.New("unsupported column type")

	// ErrTypeMismatch is returned when a cell's value cannot be coerced to
	// its declared column type under the widening rules.
	ErrTypeMismatch = errors.New("value type mismatch for declared column")

	// ErrIOFailure is returned when a region buffer cannot be extended.
	ErrIOFailure = errors.New("variable region write failure")

	// ErrDuplicateColumnName is returned when a schema declares the same
	// column name twice.
	ErrDuplicateColumnName = errors.New("duplicate column name in schema")

	// ErrEmptySchema is returned when a schema has zero columns.
	ErrEmptySchema = errors.New("schema has no columns")

	// ErrColumnCountMismatch is returned when a row or column slice does not
	// have exactly one entry per schema column.
	ErrColumnCountMismatch = errors.New("column count does not match schema")

	// ErrRowLengthMismatch is returned when columnar input columns do not
	// all share the same row count.
	ErrRowLengthMismatch = errors.New("columns have inconsistent row counts")

	// ErrBuilderFrozen is returned when a write or Freeze is attempted on a
	// builder that has already been assembled into a Block.
	ErrBuilderFrozen = errors.New("builder is frozen")

	// ErrEmptyBlock is returned when Freeze is called before any cell has
	// been written.
	ErrEmptyBlock = errors.New("no data written to builder")

	// ErrStringTooLong is returned when a dictionary string exceeds the
	// encoder's configured maximum length.
	ErrStringTooLong = errors.New("string exceeds maximum length")

	// ErrOffsetOverflow is returned when a variable-region offset or length
	// would exceed the int32 range used on the wire.
	ErrOffsetOverflow = errors.New("variable region offset exceeds int32 range")

	// ErrNumRowsRequired is returned when a columnar builder is constructed
	// without a known row count.
	ErrNumRowsRequired = errors.New("columnar builder requires numRows before any column is written")

	// ErrInvalidObjectPayload is returned when an OBJECT cell's value does
	// not satisfy any supported serialization form.
	ErrInvalidObjectPayload = errors.New("object value has no supported serialization")

	// ErrTruncatedData is returned by the decoder when a byte region ends
	// before an expected field has been fully read.
	ErrTruncatedData = errors.New("truncated block data")

	// ErrUnsupportedEndian is returned when a builder is configured with a
	// byte order other than big-endian; the wire format mandates big-endian unconditionally.
	ErrUnsupportedEndian = errors.New("only big-endian encoding is supported")
)
