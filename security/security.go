// Package security provides path validation for caller-supplied targets and
// the privilege probe that gates shell-integration changes.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attack attempt.
	ErrPathTraversal = errors.New("path traversal detected")
)

// IsElevated reports whether the current process runs with administrative
// rights. On Windows this inspects the process token; elsewhere it checks for
// root. Any failure to query the token is treated as "not privileged".
func IsElevated() bool {
	return isElevated()
}

// ValidatePath checks if a path is safe to hand to the launcher.
// The path is resolved to a cleaned absolute form first, so relative targets
// like ".." and file names that merely contain consecutive dots stay valid;
// only a parent-directory segment that survives resolution counts as
// traversal.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}

	cleanPath := filepath.Clean(absPath)

	for _, segment := range strings.Split(cleanPath, string(filepath.Separator)) {
		if segment == ".." {
			return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
		}
	}

	// Resolve symbolic links so a broken or cyclic link fails here rather
	// than at launch. A path that does not exist yet validates fine.
	if _, err := filepath.EvalSymlinks(cleanPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
	}

	return nil
}
