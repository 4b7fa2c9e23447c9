package errors

import (
	"slices"
	"strings"
	"unicode"
)

// ValidateImageID validates a tile image identifier before it is joined onto
// the tiles directory. It rejects identifiers that could escape that
// directory.
//
// Validation rules:
//   - No empty identifiers
//   - Maximum length of 255 characters
//   - No null bytes or control characters
//   - No absolute paths
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateImageID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidImage, "image id cannot be empty")
	}

	if len(id) > 255 {
		return New(ErrCodeInvalidImage, "image id too long (max 255 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidImage, "image id contains invalid control characters")
		}
	}

	if strings.HasPrefix(id, "/") {
		return New(ErrCodeInvalidImage, "image id must be relative (cannot start with /)")
	}

	if strings.Contains(id, "..") {
		return New(ErrCodeInvalidImage, "image id cannot contain path traversal sequences (..)")
	}

	if strings.Contains(id, "\\") {
		return New(ErrCodeInvalidImage, "image id cannot contain backslashes")
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed map[string]bool) error {
	if !allowed[format] {
		names := make([]string, 0, len(allowed))
		for name := range allowed {
			names = append(names, name)
		}
		slices.Sort(names)
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(names, ", "))
	}
	return nil
}
