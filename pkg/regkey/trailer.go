package regkey

import "github.com/cockroachdb/errors"

// TrailerBase seeds trailer byte 4. Its derivation is unknown; the validator
// only accepts this value (with bit 3 possibly flipped).
const TrailerBase int32 = 192

// DeriveTrailer computes the six trailer bytes from the first five bytes of
// name. Byte 0 is never written by the validator's format and stays zero.
//
// Name bytes are signed 8-bit values promoted to int32 before any
// arithmetic; each result is masked and truncated into its byte.
func DeriveTrailer(name []byte) ([TrailerLen]byte, error) {
	var t [TrailerLen]byte
	if len(name) < MinNameLen {
		return t, errors.Wrapf(ErrNameTooShort,
			"name must be at least %d characters long, got %d", MinNameLen, len(name))
	}

	n0 := int32(int8(name[0]))
	n1 := int32(int8(name[1]))
	n2 := int32(int8(name[2]))
	n3 := int32(int8(name[3]))
	n4 := int32(int8(name[4]))

	div := (n2 - n3) + 1
	if div == 0 {
		return t, errors.Wrapf(ErrInvalidNameContent,
			"bytes 2 and 3 (%#02x, %#02x) are not allowed", name[2], name[3])
	}

	t[1] = byte(((n0|n1)^((n2|n3)+n4))&0xf)<<4 |
		byte((n0^n1^n2^n3^n4)&0xf)

	// Go's integer division truncates toward zero like the validator's.
	q := (n0 * n1) / div
	t[2] = byte((q-n4)&0xf)<<4 |
		byte((q*n4)&0xf)

	t[3] = byte((((n2-n3)*(n0+n1))^n4)&0xf) |
		byte((((n2+n3)*(n0-n1))^(^n4))&0xf)<<4

	t4 := TrailerBase
	if (((n0+n1+n2-n3+n4)&0xf)^TrailerBase)&8 != 0 {
		t4 ^= 8
	}
	t[4] = byte(t4)

	t[5] = byte(((n0+n1-n2)-(n3+n4))&0xf) | 0xf0

	return t, nil
}
