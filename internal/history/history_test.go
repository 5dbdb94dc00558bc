package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), ".fnforge", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndRecent(t *testing.T) {
	l := openTestLedger(t)

	if err := l.Record("run-1", "build", "widget", "go build ...", "ok", 120*time.Millisecond); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := l.Record("run-1", "test", "./integration", "go test ./integration", "failed", 2*time.Second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := l.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Phase != "test" || entries[0].Status != "failed" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Phase != "build" || entries[1].Function != "widget" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	if entries[1].Duration != 120*time.Millisecond {
		t.Errorf("Duration = %v", entries[1].Duration)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	l := openTestLedger(t)

	for i := 0; i < 5; i++ {
		if err := l.Record("run-1", "build", "fn", "cmd", "ok", time.Millisecond); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := l.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestForRunStampsRunID(t *testing.T) {
	l := openTestLedger(t)

	rec := l.ForRun("run-42")
	if err := rec.Record("build", "widget", "cmd", "ok", time.Millisecond); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := l.Recent(1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if entries[0].RunID != "run-42" {
		t.Errorf("RunID = %q", entries[0].RunID)
	}
}
