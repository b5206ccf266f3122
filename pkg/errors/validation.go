package errors

import (
	"unicode"
)

// maxIDLength bounds caller-supplied node identifiers.
const maxIDLength = 256

// ValidateID checks a caller-supplied node identifier.
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 bytes
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "id %q contains invalid control characters", id)
		}
	}
	return nil
}
