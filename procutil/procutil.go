// Package procutil provides process liveness checks.
package procutil

import (
	"github.com/shirou/gopsutil/v4/process"
)

// IsRunning checks if a process with the given PID is running.
// Works cross-platform; on Windows this queries the process table rather
// than relying on Signal(0), which is not supported there.
func IsRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	exists, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}
	return exists
}
