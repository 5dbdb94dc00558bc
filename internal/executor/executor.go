// Package executor runs assembled shell commands to completion and starts
// long-running helper processes. Command output streams straight through to
// the caller's stdout/stderr so failures stay reproducible by hand.
package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/zap"
)

// Executor runs one shell command and reports its exit status.
type Executor interface {
	Run(ctx context.Context, command string) error
}

// Host starts auxiliary background processes (local emulators and the like)
// by command line and can stop whatever is still running.
type Host interface {
	Start(ctx context.Context, command string) error
	StopAll()
}

// Shell executes commands via the system shell.
type Shell struct {
	// Dir is the working directory for every command; empty means the
	// process working directory.
	Dir    string
	Logger *zap.Logger
}

// NewShell returns a Shell running commands in dir.
func NewShell(dir string, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{Dir: dir, Logger: logger}
}

// Run executes command and waits for it to exit. Stdout and stderr pass
// through untouched.
func (s *Shell) Run(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = s.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	s.Logger.Debug("running command", zap.String("command", command))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q: %w", command, err)
	}
	return nil
}

// BackgroundHost starts helper processes detached from the current run and
// keeps handles so they can be torn down afterwards.
type BackgroundHost struct {
	Dir    string
	Logger *zap.Logger

	mu   sync.Mutex
	cmds []*exec.Cmd
}

// NewBackgroundHost returns a BackgroundHost launching processes in dir.
func NewBackgroundHost(dir string, logger *zap.Logger) *BackgroundHost {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackgroundHost{Dir: dir, Logger: logger}
}

// Start launches command without waiting for it to exit.
func (h *BackgroundHost) Start(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = h.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	h.Logger.Info("starting helper process", zap.String("command", command))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting helper %q: %w", command, err)
	}

	h.mu.Lock()
	h.cmds = append(h.cmds, cmd)
	h.mu.Unlock()
	return nil
}

// StopAll kills every helper process still tracked by the host.
func (h *BackgroundHost) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, cmd := range h.cmds {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	}
	h.cmds = nil
}
