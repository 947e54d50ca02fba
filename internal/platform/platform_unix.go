//go:build !windows

package platform

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

func Detect() Info {
	info := Info{
		Family: FamilyUnix,
	}
	info.PowerShellPath, _ = exec.LookPath("pwsh")

	return info
}

func canAccess(path string, write bool) bool {
	mode := uint32(unix.R_OK)
	if write {
		mode = unix.W_OK
	}
	return unix.Access(path, mode) == nil
}
