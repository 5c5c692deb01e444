//go:build windows

package launcher

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedSysProcAttr starts the child in its own process group, detached
// from this console. The IDE is a GUI process and never needs our console.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
