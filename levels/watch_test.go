package levels

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatcherReportsLevelFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	level := filepath.Join(dir, "level_9.json")
	if err := os.WriteFile(level, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != level {
			t.Fatalf("expected %s, got %s", level, name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for level event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("Events should be closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestIsLevelFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"a.json", true},
		{"B.JSON", true},
		{"a.yaml", false},
		{"level_1.json~", false},
	}
	for _, c := range cases {
		if got := isLevelFile(c.path); got != c.want {
			t.Fatalf("isLevelFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestReportableDebounce(t *testing.T) {
	start := time.Now()
	last := map[string]time.Time{}
	write := func(name string) fsnotify.Event { return fsnotify.Event{Name: name, Op: fsnotify.Write} }

	cases := []struct {
		name  string
		event fsnotify.Event
		at    time.Time
		want  bool
	}{
		{"first_write", write("a.json"), start, true},
		{"burst_dropped", write("a.json"), start.Add(50 * time.Millisecond), false},
		{"other_file_in_burst", write("b.json"), start.Add(60 * time.Millisecond), true},
		{"after_debounce", write("a.json"), start.Add(watchDebounce + time.Millisecond), true},
		{"not_a_level", write("a.txt"), start.Add(time.Second), false},
		{"remove_ignored", fsnotify.Event{Name: "c.json", Op: fsnotify.Remove}, start, false},
		{"chmod_ignored", fsnotify.Event{Name: "c.json", Op: fsnotify.Chmod}, start, false},
		{"create", fsnotify.Event{Name: "c.json", Op: fsnotify.Create}, start, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := reportable(c.event, last, c.at); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}
