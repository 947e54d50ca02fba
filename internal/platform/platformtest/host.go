// Package platformtest provides a platform.Host that answers from the canned
// Windows data in dummydata instead of the real machine.
package platformtest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/nhdewitt/drivefixture/internal/dummydata"
	"github.com/nhdewitt/drivefixture/internal/platform"
)

// ErrNoStub is returned by Output for a command with no captured output and
// no fallback host.
var ErrNoStub = errors.New("no stub defined for command")

type Option func(*Host)

// WithFallback sends commands that have no captured output to h.
func WithFallback(h platform.Host) Option {
	return func(s *Host) {
		s.fallback = h
	}
}

// WithLogger reports lookups for drive roots the fixture does not describe.
func WithLogger(l *log.Logger) Option {
	return func(s *Host) {
		s.logger = l
	}
}

type Host struct {
	fallback platform.Host
	logger   *log.Logger

	mu     sync.Mutex
	calls  []string
	missed map[string]struct{}
}

var _ platform.Host = (*Host)(nil)

func NewWindowsHost(opts ...Option) *Host {
	h := &Host{
		logger: log.New(io.Discard, "", 0),
		missed: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) Output(ctx context.Context, command string) (string, error) {
	h.mu.Lock()
	h.calls = append(h.calls, command)
	h.mu.Unlock()

	if out, ok := dummydata.CommandOutput(command); ok {
		return out, nil
	}

	if h.fallback != nil {
		return h.fallback.Output(ctx, command)
	}

	return "", fmt.Errorf("%w: %q", ErrNoStub, command)
}

func (h *Host) CanRead(root string) bool {
	return h.lookup("CanRead", root, dummydata.ReadAccess)
}

func (h *Host) CanWrite(root string) bool {
	return h.lookup("CanWrite", root, dummydata.WriteAccess)
}

func (h *Host) HasDataFolder(root string) bool {
	return h.lookup("HasDataFolder", root, dummydata.HasAppDataFolder)
}

// Calls returns the command lines passed to Output, in order.
func (h *Host) Calls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.calls))
	copy(out, h.calls)
	return out
}

// lookup answers false for unknown roots and logs the first miss per method.
func (h *Host) lookup(method, root string, table func(string) (bool, bool)) bool {
	v, ok := table(root)
	if ok {
		return v
	}

	key := method + " " + root
	h.mu.Lock()
	_, seen := h.missed[key]
	h.missed[key] = struct{}{}
	h.mu.Unlock()

	if !seen {
		h.logger.Printf("Warning: %s(%q) has no fixture entry, reporting false", method, root)
	}
	return false
}
