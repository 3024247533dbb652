package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_OnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("FCFS\n1\n0\n1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	w.OnChange = func(p string) error {
		select {
		case changed <- p:
		default:
		}
		return nil
	}
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the loop a moment to start before writing.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("FCFS\n1,2\n0,1\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("OnChange path = %s, want %s", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("OnChange not called")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestWatcher_WatchMissingFile(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatcher_HandleChangeComparesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("FCFS\n1,2\n0,1\n5,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	calls := 0
	w.OnChange = func(string) error {
		calls++
		return nil
	}
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	absPath, _ := filepath.Abs(path)
	state := w.files[absPath]

	w.handleChange(absPath, state)
	if calls != 0 {
		t.Fatalf("OnChange called %d times for untouched file", calls)
	}

	// Same size, same mtime, different bytes.
	if err := os.WriteFile(path, []byte("FCFS\n1,2\n0,1\n5,4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}
	w.handleChange(absPath, state)
	if calls != 1 {
		t.Errorf("OnChange called %d times after same-size edit, want 1", calls)
	}

	w.handleChange(absPath, state)
	if calls != 1 {
		t.Errorf("OnChange called %d times for repeated event, want 1", calls)
	}
}
