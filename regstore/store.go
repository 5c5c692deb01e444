// Package regstore abstracts the hierarchical key-value store used for shell
// integration records. On Windows the backing store is HKEY_CLASSES_ROOT; an
// in-memory implementation stands in for tests and non-Windows builds so the
// registration logic never needs administrative rights or a real registry.
//
// Key paths use backslash separators regardless of platform, matching
// registry convention (e.g. `Directory\shell\idealaunch\command`). The empty
// value name addresses a key's default value.
package regstore

import "errors"

// ErrNotExist is returned when a key or value is absent.
var ErrNotExist = errors.New("registry key or value does not exist")

// Store is the minimal key-value capability the registration manager needs.
// Individual key and value operations are atomic; no transaction spans them.
type Store interface {
	// EnsureKey creates the key (and any missing ancestors) if absent.
	// Idempotent.
	EnsureKey(path string) error

	// SetString writes a named string value under the key, creating the key
	// if needed and overwriting an existing value.
	SetString(path, name, value string) error

	// GetString reads a named string value. Returns ErrNotExist when either
	// the key or the value is absent.
	GetString(path, name string) (string, error)

	// KeyExists reports whether the key path exists.
	KeyExists(path string) (bool, error)

	// DeleteTree removes the key and everything beneath it. Deleting an
	// absent key is a no-op.
	DeleteTree(path string) error
}
