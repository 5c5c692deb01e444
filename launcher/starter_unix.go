//go:build !windows

package launcher

import "syscall"

// detachedSysProcAttr puts the child in its own process group so it survives
// this process and its terminal.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
