package regkey

// ChecksumMultiplier is the per-byte multiplier of the rolling checksum.
const ChecksumMultiplier int32 = 0x11121

// Checksum folds data into the validator's 32-bit rolling checksum.
//
// Bytes are sign-extended from int8 and the accumulator is a signed 32-bit
// value, so the shift by 26 is arithmetic and overflow wraps.
func Checksum(data []byte) uint32 {
	var acc int32
	for _, b := range data {
		acc = int32(int8(b))*ChecksumMultiplier + acc<<3
		acc += acc >> 26
	}
	return uint32(acc)
}
