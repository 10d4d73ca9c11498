package regkey

import (
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	keyOpen  = '<'
	keyClose = '>'
)

// EncodedKey is the textual key handed to the licensee.
type EncodedKey string

// EncodeHex renders data as "<", two lowercase hex digits per byte, ">".
func EncodeHex(data []byte) EncodedKey {
	var sb strings.Builder
	sb.Grow(hex.EncodedLen(len(data)) + 2)
	sb.WriteByte(keyOpen)
	sb.WriteString(hex.EncodeToString(data))
	sb.WriteByte(keyClose)
	return EncodedKey(sb.String())
}

// String implements fmt.Stringer.
func (k EncodedKey) String() string { return string(k) }

// Bytes strips the delimiters and decodes the hex payload. The result is
// still obfuscated.
func (k EncodedKey) Bytes() ([]byte, error) {
	s := string(k)
	if len(s) < 2 || s[0] != keyOpen || s[len(s)-1] != keyClose {
		return nil, errors.Newf("encoded key %q is not delimited by %q and %q", s, keyOpen, keyClose)
	}
	b, err := hex.DecodeString(s[1 : len(s)-1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode key payload")
	}
	return b, nil
}
