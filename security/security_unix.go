//go:build !windows

package security

import "os"

// isElevated reports root on Unix-like systems. Shell-menu registration is a
// Windows feature, but the probe keeps the same meaning everywhere so the
// command layer stays platform-neutral.
func isElevated() bool {
	return os.Geteuid() == 0
}
