// Package schema describes the column layout of a DataBlock: the closed
// set of storable types, the per-column byte widths used in the fixed
// region, and the row/columnar offset math derived from a schema.
package schema

// Type is the closed set of column types a DataBlock can store. Single-value
// types and their *_ARRAY counterparts are both members of the same enum so
// a Column can be declared with either shape.
type Type uint8

const (
	Invalid Type = iota

	Int
	Long
	Float
	Double
	BigDecimal
	String
	Bytes
	Object

	BooleanArray
	IntArray
	LongArray
	TimestampArray
	FloatArray
	DoubleArray
	StringArray
	BytesArray
)

// IsArray reports whether t is one of the *_ARRAY multi-valued types.
func (t Type) IsArray() bool {
	return t >= BooleanArray && t <= BytesArray
}

// IsString reports whether t is a string-bearing type that uses the
// per-column dictionary (STRING or STRING_ARRAY).
//
// BYTES_ARRAY also routes through the dictionary, but its caller-facing
// element type is still a string view of the raw bytes, so it is treated
// identically to StringArray by the dictionary manager.
func (t Type) IsString() bool {
	return t == String || t == StringArray || t == BytesArray
}

// Valid reports whether t is a member of the closed enum.
func (t Type) Valid() bool {
	return t >= Int && t <= BytesArray
}

func (t Type) String() string {
	switch t {
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case BigDecimal:
		return "BIG_DECIMAL"
	case String:
		return "STRING"
	case Bytes:
		return "BYTES"
	case Object:
		return "OBJECT"
	case BooleanArray:
		return "BOOLEAN_ARRAY"
	case IntArray:
		return "INT_ARRAY"
	case LongArray:
		return "LONG_ARRAY"
	case TimestampArray:
		return "TIMESTAMP_ARRAY"
	case FloatArray:
		return "FLOAT_ARRAY"
	case DoubleArray:
		return "DOUBLE_ARRAY"
	case StringArray:
		return "STRING_ARRAY"
	case BytesArray:
		return "BYTES_ARRAY"
	default:
		return "UNKNOWN"
	}
}
