//go:build windows

package platform

import (
	"os/exec"

	"golang.org/x/sys/windows"
)

func Detect() Info {
	info := Info{
		Family:         FamilyWindows,
		PowerShellPath: findPowerShell(),
	}
	info.WmicPath, _ = exec.LookPath("wmic")

	return info
}

func findPowerShell() string {
	if path, err := exec.LookPath("pwsh"); err == nil {
		return path
	}
	if path, err := exec.LookPath("powershell"); err == nil {
		return path
	}
	return ""
}

// canAccess treats a root as readable when its attributes resolve, and as
// writable when it is also not marked read-only.
func canAccess(path string, write bool) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}

	if write {
		return attrs&windows.FILE_ATTRIBUTE_READONLY == 0
	}
	return true
}
