package errors

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	maxNameLength = 64
	maxPathLength = 1024
)

// machineNameRegex matches catalog names and aliases such as "profile",
// "ex2.1" or "squeeze-blanks".
var machineNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateMachineName rejects names that cannot belong to any machine
// before they reach a lookup, a cache key or a log line.
func ValidateMachineName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "machine name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "machine name too long (max %d characters)", maxNameLength)
	}
	if !machineNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid machine name %q", name)
	}
	return nil
}

// ValidatePath checks a user supplied file path: a dataset to read or a
// diagram to write. Absolute and relative paths are both fine.
//
// Rejected:
//   - empty paths
//   - paths longer than 1024 bytes
//   - control characters, including NUL
//   - paths ending in a separator, which name a directory
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}
	if strings.IndexFunc(path, unicode.IsControl) >= 0 {
		return New(ErrCodeInvalidInput, "path %q contains control characters", path)
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`) {
		return New(ErrCodeInvalidInput, "path %q names a directory", path)
	}
	return nil
}
