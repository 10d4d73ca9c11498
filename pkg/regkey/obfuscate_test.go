package regkey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObfuscateByte_KnownValues(t *testing.T) {
	testCases := []struct {
		pos  int
		in   byte
		want byte
	}{
		// mask -3: 0xff^0xfd = 0x02, reversed 0x40.
		{pos: 0, in: 0xff, want: 0x40},
		// mask -6: 0xff^0xfa = 0x05, reversed 0xa0.
		{pos: 1, in: 0xff, want: 0xa0},
		// mask -19: 0xbf^0xed = 0x52, reversed 0x4a.
		{pos: 2, in: 0xbf, want: 0x4a},
		// shift 0 from position 3 on: mask -5.
		{pos: 3, in: 0xff, want: 0x20},
		{pos: 0, in: 0x00, want: 0xbf},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ObfuscateByte(tc.pos, tc.in), "pos %d in %#02x", tc.pos, tc.in)
	}
}

func TestObfuscateByte_BijectivePerPosition(t *testing.T) {
	for pos := 0; pos < MaxNameLen+Overhead; pos++ {
		seen := make(map[byte]bool, 256)
		for v := 0; v < 256; v++ {
			out := ObfuscateByte(pos, byte(v))
			require.False(t, seen[out], "pos %d maps two inputs to %#02x", pos, out)
			seen[out] = true
		}
	}
}

func TestObfuscateByte_PositionPeriod(t *testing.T) {
	// The shift term repeats every 32 positions and the -i term every 256.
	for pos := 0; pos < 8; pos++ {
		for _, v := range []byte{0x00, 0x5a, 0xff} {
			assert.Equal(t, ObfuscateByte(pos, v), ObfuscateByte(pos+256, v), "pos %d", pos)
		}
	}
}

func TestObfuscate_Golden(t *testing.T) {
	for _, g := range goldenKeys {
		t.Run(g.name, func(t *testing.T) {
			raw, err := hex.DecodeString(g.raw)
			require.NoError(t, err)

			Obfuscate(raw)
			assert.Equal(t, string(g.encoded[1:len(g.encoded)-1]), hex.EncodeToString(raw))
		})
	}
}

func TestObfuscate_InPlace(t *testing.T) {
	data := []byte{0xff, 0xff, 0xbf}
	alias := data[:2]
	Obfuscate(data)
	assert.Equal(t, []byte{0x40, 0xa0}, alias)
}
