// Package dummydata holds canned host data for a Windows machine with three
// logical disks. Tests feed it to discovery code in place of real command
// execution and filesystem checks.
package dummydata

import (
	_ "embed"
	"maps"
	"slices"
)

// WMICLogicalDiskCommand is the command line whose output is captured in
// windows_wmic_output.csv.
const WMICLogicalDiskCommand = "wmic logicaldisk list full /format:csv"

//go:embed windows_wmic_output.csv
var wmicCSV string

var commandOutputs = map[string]string{
	WMICLogicalDiskCommand: wmicCSV,
}

var readAccessByRoot = map[string]bool{
	`C:\`: true,
	`D:\`: true,
	`E:\`: false,
}

var writeAccessByRoot = map[string]bool{
	`C:\`: true,
	`D:\`: false,
	`E:\`: false,
}

var hasAppDataFolderByRoot = map[string]bool{
	`C:\`: false,
	`D:\`: true,
	`E:\`: false,
}

// CommandOutput returns the captured stdout for an exact command line.
// ok is false when no output was captured for it.
func CommandOutput(command string) (output string, ok bool) {
	output, ok = commandOutputs[command]
	return output, ok
}

// CommandOutputs returns a copy of every captured command and its output.
func CommandOutputs() map[string]string {
	return maps.Clone(commandOutputs)
}

// ReadAccess reports whether root is readable. ok is false for roots the
// fixture does not describe.
func ReadAccess(root string) (readable, ok bool) {
	readable, ok = readAccessByRoot[root]
	return readable, ok
}

// WriteAccess reports whether root is writable.
func WriteAccess(root string) (writable, ok bool) {
	writable, ok = writeAccessByRoot[root]
	return writable, ok
}

// HasAppDataFolder reports whether the application's data folder already
// exists on root.
func HasAppDataFolder(root string) (exists, ok bool) {
	exists, ok = hasAppDataFolderByRoot[root]
	return exists, ok
}

// Roots returns every drive root named by any of the tables, sorted.
func Roots() []string {
	seen := make(map[string]struct{})
	for _, m := range []map[string]bool{readAccessByRoot, writeAccessByRoot, hasAppDataFolderByRoot} {
		for root := range m {
			seen[root] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
