//go:build windows

package security

import (
	"golang.org/x/sys/windows"
)

// isElevated checks token elevation plus membership in the built-in
// Administrators group. Either signal alone is not enough: a filtered admin
// token reports membership without elevation, and some service tokens report
// elevation without the group.
func isElevated() bool {
	sid, err := windows.CreateWellKnownSid(windows.WinBuiltinAdministratorsSid)
	if err != nil {
		return false
	}

	token := windows.GetCurrentProcessToken()
	member, err := token.IsMember(sid)
	if err != nil {
		return false
	}

	return member && token.IsElevated()
}
