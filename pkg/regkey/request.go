package regkey

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// MinNameLen is the shortest accepted name, in bytes. The trailer reads
	// the first five name bytes.
	MinNameLen = 5
	// MaxNameLen is the size of the validator's fixed name field including
	// its terminator. Names must be strictly shorter.
	MaxNameLen = 64

	// DefaultName is used when no licensee name is supplied.
	DefaultName = "Akira Kurosawa"
	// DefaultFeatures is the feature mask used when none is supplied. Its
	// bit assignments are not documented by the validator.
	DefaultFeatures uint32 = 0xFFFFBFFF
)

// LicenseRequest is a validated licensee name and feature mask.
type LicenseRequest struct {
	name     string
	features uint32
}

// NewLicenseRequest validates name and returns a request for it. Any 32-bit
// feature mask is accepted.
func NewLicenseRequest(name string, features uint32) (LicenseRequest, error) {
	n := len(name)
	if n < MinNameLen {
		return LicenseRequest{}, errors.Wrapf(ErrNameTooShort,
			"name must be at least %d characters long, got %d", MinNameLen, n)
	}
	if n >= MaxNameLen {
		return LicenseRequest{}, errors.Wrapf(ErrNameTooLong,
			"%d bytes, limit is %d", n, MaxNameLen-1)
	}

	return LicenseRequest{name: name, features: features}, nil
}

// Name returns the licensee name.
func (r LicenseRequest) Name() string { return r.name }

// Features returns the feature mask.
func (r LicenseRequest) Features() uint32 { return r.features }

// KeyLen returns the length of the key blob generated for this request.
func (r LicenseRequest) KeyLen() int { return len(r.name) + Overhead }

// ParseFeatures parses a hexadecimal feature mask. A leading "0x" or "0X" is
// allowed.
func ParseFeatures(s string) (uint32, error) {
	digits := strings.TrimSpace(s)
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" {
		return 0, errors.Wrapf(ErrInvalidFeatures, "empty value %q", s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFeatures, "%q is not a 32-bit hex value", s)
	}
	return uint32(v), nil
}
