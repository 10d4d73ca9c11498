// Package regkey produces registration key blobs in the fixed binary layout
// expected by an external license validator.
//
// # Key Format
//
// A key blob for a name of n bytes is n+15 bytes long:
//
//	[Header(1)][Features(4)][Checksum(4)][Name(n)][Trailer(6)]
//
// Fields:
//   - Header: constant 0xFF
//   - Features: 32-bit feature mask (little-endian)
//   - Checksum: 32-bit rolling checksum over the whole blob (little-endian)
//   - Name: licensee name bytes, copied verbatim
//   - Trailer: six bytes derived from the first five name bytes
//
// # Pipeline
//
// Generation runs strictly forward:
//
//  1. NewLicenseRequest validates the name length (5 to 63 bytes).
//  2. NewKeyBlob lays out header, features and name.
//  3. KeyBlob.WriteTrailer derives the trailer. Names whose third and fourth
//     bytes would make the derivation divide by zero are rejected.
//  4. KeyBlob.Seal folds every byte into the checksum and stores it.
//  5. Obfuscate XORs each byte with a position mask and reverses its bits.
//  6. EncodeHex renders the result as "<" + lowercase hex + ">".
//
// Generator runs all of the above:
//
//	gen := regkey.NewGenerator()
//	key, err := gen.Generate("Akira Kurosawa", regkey.DefaultFeatures)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(key)
//
// # Byte Arithmetic
//
// The validator computes over signed 8-bit bytes promoted to 32-bit
// integers. The trailer and checksum reproduce that exactly: name bytes are
// reinterpreted as int8, intermediate values are int32 with wraparound, and
// right shifts are arithmetic. Changing any of these silently produces keys
// the validator rejects.
//
// # Errors
//
// Failures are reported with errors that match ErrNameTooShort,
// ErrNameTooLong or ErrInvalidNameContent under errors.Is. No partial key is
// ever returned.
//
// # Thread Safety
//
// The package keeps no global mutable state. Generator values are immutable
// and safe for concurrent use; every call works on its own buffer.
//
// The transform is an obfuscation scheme required for compatibility, not a
// cipher. It provides no secrecy.
package regkey
