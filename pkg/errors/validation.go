package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// extensionRegex matches file extensions such as ".sln" or ".csproj".
var extensionRegex = regexp.MustCompile(`^\.[A-Za-z0-9_-]+$`)

// ValidateExtension validates a file extension used to identify solution or
// project files. Extensions must start with a dot and contain no path
// separators, wildcards or further dots.
func ValidateExtension(ext string) error {
	if ext == "" {
		return New(ErrCodeInvalidConfig, "extension cannot be empty")
	}
	if !extensionRegex.MatchString(ext) {
		return New(ErrCodeInvalidConfig, "invalid extension: %q", ext)
	}
	return nil
}

// ValidateFilename validates a plain file name such as "packages.config" or
// the output base name. It rejects anything that would resolve outside the
// directory it is joined with.
//
// Validation rules:
//   - Name cannot be empty
//   - No path separators
//   - No "." or ".." names
//   - No control characters
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "file name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidConfig, "file name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidConfig, "invalid file name: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "file name contains invalid control characters")
		}
	}

	return nil
}
