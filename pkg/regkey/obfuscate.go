package regkey

import "math/bits"

// ObfuscateByte transforms the byte at position i of a sealed blob: it is
// XORed with a position mask and its bits are reversed.
func ObfuscateByte(i int, b byte) byte {
	// (1 << (i & 31)) & 7 only yields 1, 2 or 4 for i&31 < 3 and 0 otherwise.
	shift := (1 << (i & 31)) & 7
	mask := -1 - i - (1 << shift)
	return bits.Reverse8(b ^ byte(mask))
}

// Obfuscate transforms data in place, in ascending offset order.
func Obfuscate(data []byte) {
	for i, b := range data {
		data[i] = ObfuscateByte(i, b)
	}
}
