package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// componentIDRegex matches component IDs that are safe to embed in file
// names, cache keys, SVG attributes, and DOT node identifiers.
var componentIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidateComponentID validates a component identifier before it reaches the
// engine or any storage backend.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - Maximum length of 128 characters
//   - Leading alphanumeric, then alphanumerics plus ._:- only
//
// The engine itself only requires non-empty uniqueness; these rules protect
// the surfaces the ID travels through.
func ValidateComponentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidComponent, "component ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidComponent, "component ID too long (max 128 characters)")
	}

	if !componentIDRegex.MatchString(id) {
		return New(ErrCodeInvalidComponent, "invalid component ID: %q", id)
	}

	return nil
}

// ValidateComponentType validates a component type label. Empty types are
// allowed; renderers fall back to a default style.
func ValidateComponentType(typ string) error {
	if typ == "" {
		return nil
	}

	if len(typ) > 64 {
		return New(ErrCodeInvalidComponent, "component type too long (max 64 characters)")
	}

	for _, r := range typ {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidComponent, "component type contains control characters")
		}
	}

	return nil
}

// ValidateBoardID validates a board identifier for safety. Board IDs become
// file names in the file store and document keys in Mongo, so the rules
// reject anything that could be used for path traversal.
//
// Validation rules:
//   - No empty IDs
//   - Maximum length of 128 characters
//   - No control characters or null bytes
//   - No path separators or traversal sequences
func ValidateBoardID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidBoard, "board ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidBoard, "board ID too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBoard, "board ID contains control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidBoard, "board ID contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateBoardName validates a human-facing board name.
func ValidateBoardName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidBoard, "board name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidBoard, "board name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBoard, "board name contains control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
