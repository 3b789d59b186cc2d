package errors

import (
	"strings"
	"unicode"
)

// ValidateTechName validates a technology name given on the command line.
// Technology names come from hand-authored table files and are used to key
// the registry, so the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateTechName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "technology name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "technology name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "technology name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "technology name contains invalid characters")
	}

	return nil
}

// ValidateLayerName validates a layer name given on the command line.
// Layer names are opaque identifiers ("Metal1.drawing"); only obviously
// broken input is rejected here, equality elsewhere is exact string match.
func ValidateLayerName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLayer, "layer name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidLayer, "layer name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLayer, "layer name contains control characters")
		}
	}

	return nil
}
