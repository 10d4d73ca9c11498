package regkey

import "encoding/binary"

// Blob layout. All offsets are relative to the start of the KeyBlob; the
// trailer starts right after the name.
const (
	HeaderByte byte = 0xFF

	OffsetFeatures = 1
	OffsetChecksum = 5
	OffsetName     = 9

	TrailerLen = 6
	// Overhead is the number of non-name bytes in a blob.
	Overhead = OffsetName + TrailerLen
)

// KeyBlob is the unobfuscated key: header, feature mask, checksum, name and
// trailer in one contiguous buffer.
type KeyBlob []byte

// NewKeyBlob allocates a blob for req and writes the header, feature mask and
// name. The checksum and trailer regions are left zeroed.
func NewKeyBlob(req LicenseRequest) KeyBlob {
	b := make(KeyBlob, req.KeyLen())

	b[0] = HeaderByte
	// The validator reads the mask in x86 native order.
	binary.LittleEndian.PutUint32(b[OffsetFeatures:OffsetChecksum], req.Features())
	copy(b[OffsetName:], req.Name())

	return b
}

// Header returns the header byte.
func (b KeyBlob) Header() byte { return b[0] }

// Features returns the embedded feature mask.
func (b KeyBlob) Features() uint32 {
	return binary.LittleEndian.Uint32(b[OffsetFeatures:OffsetChecksum])
}

// Checksum returns the stored checksum, zero until Seal is called.
func (b KeyBlob) Checksum() uint32 {
	return binary.LittleEndian.Uint32(b[OffsetChecksum:OffsetName])
}

// Name returns the name region.
func (b KeyBlob) Name() []byte { return b[OffsetName : len(b)-TrailerLen] }

// Trailer returns the trailer region.
func (b KeyBlob) Trailer() []byte { return b[len(b)-TrailerLen:] }

// WriteTrailer derives the trailer from the name and stores it.
func (b KeyBlob) WriteTrailer() error {
	t, err := DeriveTrailer(b.Name())
	if err != nil {
		return err
	}
	copy(b.Trailer(), t[:])
	return nil
}

// Seal computes the checksum over the blob with a zeroed checksum field and
// stores it.
func (b KeyBlob) Seal() {
	clear(b[OffsetChecksum:OffsetName])
	binary.LittleEndian.PutUint32(b[OffsetChecksum:OffsetName], Checksum(b))
}
