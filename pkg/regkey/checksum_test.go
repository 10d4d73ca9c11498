package regkey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum_Empty(t *testing.T) {
	assert.Equal(t, uint32(0), Checksum(nil))
}

func TestChecksum_SingleByte(t *testing.T) {
	// 1 * 0x11121, no carry from the >>26 fold.
	assert.Equal(t, uint32(0x11121), Checksum([]byte{0x01}))
	// 0xff is -1: -0x11121, and the arithmetic fold adds -1.
	assert.Equal(t, uint32(0xfffeeede), Checksum([]byte{0xff}))
}

func TestChecksum_Golden(t *testing.T) {
	for _, g := range goldenKeys {
		t.Run(g.name, func(t *testing.T) {
			raw, err := hex.DecodeString(g.raw)
			require.NoError(t, err)

			// Checksum is computed with its own field zeroed.
			copy(raw[OffsetChecksum:OffsetName], []byte{0, 0, 0, 0})
			assert.Equal(t, g.checksum, Checksum(raw))
		})
	}
}

func TestChecksum_NameSensitivity(t *testing.T) {
	// Early bytes can be shifted out of the accumulator entirely, so this is
	// not a property of every byte position. It holds for the name tail of
	// this blob.
	base := NewKeyBlob(mustRequest(t, "Akira Kurosawa", DefaultFeatures))
	require.NoError(t, base.WriteTrailer())
	base.Seal()

	t.Run("name bytes", func(t *testing.T) {
		name := []byte("Akira Kurosawa")
		for i := 5; i < len(name); i++ {
			changed := append([]byte(nil), name...)
			changed[i] ^= 0x01
			blob := NewKeyBlob(mustRequest(t, string(changed), DefaultFeatures))
			require.NoError(t, blob.WriteTrailer())
			blob.Seal()
			assert.NotEqual(t, base.Checksum(), blob.Checksum(), "byte %d", i)
		}
	})
}
