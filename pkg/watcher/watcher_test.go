package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newWatcher(t *testing.T) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	t.Cleanup(func() { fw.Close() })
	fw.Start()
	return fw
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pose.yaml")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	fw := newWatcher(t)
	changed := make(chan string, 10)
	if err := fw.Watch(path, func(p string) { changed <- p }); err != nil {
		t.Fatalf("watch: %v", err)
	}

	// A burst of writes collapses into one callback.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case <-changed:
		t.Error("expected writes to be debounced into one callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pose.yaml")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	fw := newWatcher(t)
	changed := make(chan string, 10)
	if err := fw.Watch(path, func(p string) { changed <- p }); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		t.Errorf("unexpected change for %s", p)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestUnwatchStopsCallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pose.yaml")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	fw := newWatcher(t)
	changed := make(chan string, 10)
	if err := fw.Watch(path, func(p string) { changed <- p }); err != nil {
		t.Fatal(err)
	}
	if err := fw.Unwatch(path); err != nil {
		t.Fatalf("unwatch: %v", err)
	}
	if err := fw.Unwatch(path); err != nil {
		t.Errorf("second unwatch should be a no-op: %v", err)
	}

	if err := os.WriteFile(path, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Error("callback ran after unwatch")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	fw := newWatcher(t)
	if err := fw.Watch(filepath.Join(t.TempDir(), "missing", "pose.yaml"), func(string) {}); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
