// Package widen resolves the numeric-array widening promotions a
// declared array column type requires: a column declared wider than its
// caller-supplied array element type is promoted transparently
// (INT_ARRAY data written into a LONG_ARRAY column, etc.); a column
// given a caller-supplied type wider than its declared type is a
// contract violation, surfaced as an error.
package widen

import "github.com/arclake/datablock/errs"

// ArrayInput is the tagged union of array shapes a caller can hand to an
// array-typed column. Exactly one field is populated per call; which one
// tells the widening function what the caller actually has in hand.
type ArrayInput struct {
	I32 []int32
	I64 []int64
	F32 []float32
	F64 []float64
	Str []string
}

// ToInt32 widens in for a BOOLEAN_ARRAY/INT_ARRAY column. Only an I32
// input is accepted; any other populated field is a contract violation.
func ToInt32(in ArrayInput) ([]int32, error) {
	if in.I32 != nil {
		return in.I32, nil
	}

	return nil, errs.ErrTypeMismatch
}

// ToInt64 widens in for a LONG_ARRAY/TIMESTAMP_ARRAY column. An I64
// input passes through; an I32 input is widened element-wise.
func ToInt64(in ArrayInput) ([]int64, error) {
	if in.I64 != nil {
		return in.I64, nil
	}
	if in.I32 != nil {
		out := make([]int64, len(in.I32))
		for i, v := range in.I32 {
			out[i] = int64(v)
		}

		return out, nil
	}

	return nil, errs.ErrTypeMismatch
}

// ToFloat32 widens in for a FLOAT_ARRAY column. Only an F32 input is
// accepted — FLOAT_ARRAY has no wider numeric source to promote from.
func ToFloat32(in ArrayInput) ([]float32, error) {
	if in.F32 != nil {
		return in.F32, nil
	}

	return nil, errs.ErrTypeMismatch
}

// ToFloat64 widens in for a DOUBLE_ARRAY column. I32, I64, F32, and F64
// inputs are all accepted, each promoted element-wise to float64.
func ToFloat64(in ArrayInput) ([]float64, error) {
	switch {
	case in.F64 != nil:
		return in.F64, nil
	case in.F32 != nil:
		out := make([]float64, len(in.F32))
		for i, v := range in.F32 {
			out[i] = float64(v)
		}

		return out, nil
	case in.I64 != nil:
		out := make([]float64, len(in.I64))
		for i, v := range in.I64 {
			out[i] = float64(v)
		}

		return out, nil
	case in.I32 != nil:
		out := make([]float64, len(in.I32))
		for i, v := range in.I32 {
			out[i] = float64(v)
		}

		return out, nil
	}

	return nil, errs.ErrTypeMismatch
}

// ToStrings widens in for a STRING_ARRAY/BYTES_ARRAY column. Only a Str
// input is accepted.
func ToStrings(in ArrayInput) ([]string, error) {
	if in.Str != nil {
		return in.Str, nil
	}

	return nil, errs.ErrTypeMismatch
}
