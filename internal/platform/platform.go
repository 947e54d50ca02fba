package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Host is the part of the operating system that drive discovery touches.
// Tests replace it with platformtest.Host.
type Host interface {
	// Output runs a command line and returns what it printed to stdout.
	Output(ctx context.Context, command string) (string, error)
	CanRead(root string) bool
	CanWrite(root string) bool
	// HasDataFolder reports whether the application's data folder exists
	// directly under root.
	HasDataFolder(root string) bool
}

var ErrEmptyCommand = errors.New("empty command")

type Family int

const (
	FamilyUnknown Family = iota
	FamilyUnix
	FamilyWindows
)

type Info struct {
	Family Family

	// Tools
	WmicPath       string
	PowerShellPath string
}

// Native is the Host backed by the real machine.
type Native struct {
	DataFolder string
}

var _ Host = Native{}

func (Native) Output(ctx context.Context, command string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", ErrEmptyCommand
	}

	out, err := exec.CommandContext(ctx, fields[0], fields[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("running %q: %w", command, err)
	}

	return string(out), nil
}

func (Native) CanRead(root string) bool {
	return canAccess(root, false)
}

func (Native) CanWrite(root string) bool {
	return canAccess(root, true)
}

func (n Native) HasDataFolder(root string) bool {
	if n.DataFolder == "" {
		return false
	}
	return dirExists(root + n.DataFolder)
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
