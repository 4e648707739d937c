package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateDashboardName validates a dashboard name for safety and correctness.
// It rejects names that could be used for path traversal or injection attacks
// when the name ends up in cache keys or storage paths.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateDashboardName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "dashboard name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "dashboard name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "dashboard name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "dashboard name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// regionRegex matches region identifiers like "us-east-1" or "ap-southeast-2".
var regionRegex = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]+)+-\d+$`)

// ValidateRegion validates a region identifier. An empty region is valid and
// means "no override".
func ValidateRegion(region string) error {
	if region == "" {
		return nil
	}
	if !regionRegex.MatchString(region) {
		return New(ErrCodeInvalidInput, "invalid region %q", region)
	}
	return nil
}

// ValidateDefinitionPath validates a definition file path for safety when it
// comes from an untrusted source. It prevents path traversal and ensures a
// reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateDefinitionPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidInput, "path cannot contain backslashes")
	}

	return nil
}
