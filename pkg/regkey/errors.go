package regkey

import "github.com/cockroachdb/errors"

var (
	// ErrNameTooShort is returned for names shorter than MinNameLen bytes.
	ErrNameTooShort = errors.New("name too short")
	// ErrNameTooLong is returned for names that do not fit the fixed name field.
	ErrNameTooLong = errors.New("name too long")
	// ErrInvalidNameContent is returned when the name's third and fourth bytes
	// would zero the trailer divisor.
	ErrInvalidNameContent = errors.New("invalid name")
	// ErrInvalidFeatures is returned for feature masks that are not 32-bit hex.
	ErrInvalidFeatures = errors.New("invalid feature mask")
)
