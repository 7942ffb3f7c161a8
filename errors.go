package ghostfield

import "errors"

// Sentinel errors for form construction and stash handling.
var (
	ErrInvalidFieldName = errors.New("ghostfield: invalid field name")
	ErrDuplicateField   = errors.New("ghostfield: duplicate field name")
	ErrStashFormat      = errors.New("ghostfield: invalid stash format")
	ErrStashSignature   = errors.New("ghostfield: stash signature verification failed")
	ErrStashDecrypt     = errors.New("ghostfield: stash decryption failed")
)

// IsInvalidFieldName checks if err is a field-name validation error.
func IsInvalidFieldName(err error) bool {
	return errors.Is(err, ErrInvalidFieldName)
}

// IsDuplicateField checks if err is a duplicate-registration error.
func IsDuplicateField(err error) bool {
	return errors.Is(err, ErrDuplicateField)
}

// IsStashError checks if err came from decoding a stash token, whatever
// the failure mode.
func IsStashError(err error) bool {
	return errors.Is(err, ErrStashFormat) ||
		errors.Is(err, ErrStashSignature) ||
		errors.Is(err, ErrStashDecrypt)
}
