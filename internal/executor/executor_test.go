package executor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShellRun_Succeeds(t *testing.T) {
	dir := t.TempDir()
	sh := NewShell(dir, nil)

	if err := sh.Run(context.Background(), "touch built.out"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "built.out")); err != nil {
		t.Errorf("command did not run in the configured directory: %v", err)
	}
}

func TestShellRun_NonZeroExitIncludesCommand(t *testing.T) {
	sh := NewShell(t.TempDir(), nil)

	err := sh.Run(context.Background(), "exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if want := `command "exit 3"`; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q missing %q", err.Error(), want)
	}
}

func TestBackgroundHost_StartAndStop(t *testing.T) {
	host := NewBackgroundHost(t.TempDir(), nil)

	if err := host.Start(context.Background(), "sleep 30"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(host.cmds) != 1 {
		t.Fatalf("tracked %d processes, want 1", len(host.cmds))
	}

	host.StopAll()
	if len(host.cmds) != 0 {
		t.Errorf("StopAll left %d tracked processes", len(host.cmds))
	}
}
