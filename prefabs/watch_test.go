package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, LevelsFile), []byte("levels: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case c := <-w.Events:
		if c.Kind != ChangeLevels {
			t.Fatalf("expected levels change, got %s for %s", c.Kind, c.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}
}

func TestWatcherNilSafe(t *testing.T) {
	var w *Watcher
	if got := w.Drain(); got != nil {
		t.Fatalf("nil watcher should drain nothing")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("nil watcher close: %v", err)
	}
}
