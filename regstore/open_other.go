//go:build !windows

package regstore

import "errors"

// Open fails off-Windows: shell integration targets the Windows registry
// only. The in-memory store remains available everywhere for tests.
func Open() (Store, error) {
	return nil, errors.New("shell integration requires Windows")
}
