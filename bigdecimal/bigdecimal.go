// Package bigdecimal implements the wire encoding required for
// BIG_DECIMAL cells: a 4-byte scale followed by a two's-complement
// big-endian magnitude, bit-compatible with Java's
// BigInteger.toByteArray() (the surrounding system's big-decimal
// serializer).
//
// No library in the retrieved corpus implements Java-wire-compatible
// two's-complement arbitrary-precision integer serialization (see
// DESIGN.md); math/big supplies the arithmetic, the two's-complement byte
// conversion below is hand-written since big.Int.Bytes() only ever
// returns an unsigned magnitude.
package bigdecimal

import "math/big"

// Decimal is an arbitrary-precision decimal value: Unscaled * 10^-Scale.
type Decimal struct {
	Unscaled *big.Int
	Scale    int32
}

// Encode serializes d as scale(int32, big-endian) followed by the
// two's-complement big-endian encoding of Unscaled.
func Encode(d Decimal) []byte {
	mag := toTwosComplement(d.Unscaled)

	out := make([]byte, 4+len(mag))
	out[0] = byte(d.Scale >> 24)
	out[1] = byte(d.Scale >> 16)
	out[2] = byte(d.Scale >> 8)
	out[3] = byte(d.Scale)
	copy(out[4:], mag)

	return out
}

// Decode parses the Encode wire format back into a Decimal.
func Decode(data []byte) (Decimal, bool) {
	if len(data) < 4 {
		return Decimal{}, false
	}

	scale := int32(uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3]))
	unscaled := fromTwosComplement(data[4:])

	return Decimal{Unscaled: unscaled, Scale: scale}, true
}

// toTwosComplement returns the minimal big-endian two's-complement byte
// representation of v, matching java.math.BigInteger.toByteArray():
// zero encodes as a single 0x00 byte, and the result always carries at
// least one sign bit so the magnitude cannot be misread as the wrong sign.
func toTwosComplement(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0}
	}

	if v.Sign() > 0 {
		mag := v.Bytes()
		if mag[0]&0x80 != 0 {
			// Need a leading zero so the top bit doesn't read as negative.
			out := make([]byte, len(mag)+1)
			copy(out[1:], mag)

			return out
		}

		return mag
	}

	// Negative: two's complement of the magnitude. Always extend by one
	// leading zero byte first so inversion+add-one has a sign bit to carry
	// into; trimTwosComplement strips it back off when not needed.
	mag := new(big.Int).Neg(v).Bytes()
	ext := make([]byte, len(mag)+1)
	copy(ext[1:], mag)

	// Two's complement: invert and add one over the full extended width.
	carry := uint16(1)
	for i := len(ext) - 1; i >= 0; i-- {
		inv := uint16(^ext[i]) & 0xFF
		sum := inv + carry
		ext[i] = byte(sum)
		carry = sum >> 8
	}

	return trimTwosComplement(ext)
}

// trimTwosComplement strips redundant leading 0xFF (for negative) or 0x00
// (for positive) bytes while keeping the representation's sign bit intact.
func trimTwosComplement(b []byte) []byte {
	for len(b) > 1 {
		if b[0] == 0xFF && b[1]&0x80 != 0 {
			b = b[1:]

			continue
		}
		if b[0] == 0x00 && b[1]&0x80 == 0 {
			b = b[1:]

			continue
		}

		break
	}

	return b
}

// fromTwosComplement is the inverse of toTwosComplement.
func fromTwosComplement(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}

	if b[0]&0x80 == 0 {
		return new(big.Int).SetBytes(b)
	}

	// Negative: invert, add one, negate.
	inv := make([]byte, len(b))
	carry := uint16(1)
	for i := len(b) - 1; i >= 0; i-- {
		x := uint16(^b[i]) & 0xFF
		sum := x + carry
		inv[i] = byte(sum)
		carry = sum >> 8
	}

	mag := new(big.Int).SetBytes(inv)

	return mag.Neg(mag)
}
