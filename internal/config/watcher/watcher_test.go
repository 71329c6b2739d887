package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quickgrab.toml")
	if err := os.WriteFile(path, []byte("[General]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	fired := make(chan struct{}, 8)
	w.OnChange(func() { fired <- struct{}{} })

	if err := os.WriteFile(path, []byte("[General]\nshowHelp = \"true\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcher_DetectsAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quickgrab.toml")
	if err := os.WriteFile(path, []byte("a = \"1\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	fired := make(chan struct{}, 8)
	w.OnChange(func() { fired <- struct{}{} })

	// Atomic replace: write a temp file and rename it over the target.
	tmp := filepath.Join(dir, "quickgrab.toml.tmp")
	if err := os.WriteFile(tmp, []byte("a = \"2\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after atomic replace")
	}

	// The watch must survive the replace and see subsequent writes.
	drain(fired)
	if err := os.WriteFile(path, []byte("a = \"3\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not survive the replace")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quickgrab.toml")
	if err := os.WriteFile(path, []byte("a = \"1\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	var count atomic.Int32
	w.OnChange(func() { count.Add(1) })

	sibling := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(sibling, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// The sibling write must not fire; give the event loop a moment.
	time.Sleep(200 * time.Millisecond)
	if n := count.Load(); n != 0 {
		t.Errorf("handler fired %d times for a sibling file", n)
	}
}

func TestWatcher_Close(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quickgrab.toml")

	w, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	// Double close is a no-op.
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestWatcher_HandlerPanicDoesNotKillWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quickgrab.toml")
	if err := os.WriteFile(path, []byte("a = \"1\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	fired := make(chan struct{}, 8)
	w.OnChange(func() { panic("observer bug") })
	w.OnChange(func() { fired <- struct{}{} })

	if err := os.WriteFile(path, []byte("a = \"2\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("panicking handler prevented later handlers")
	}
}

func drain(ch chan struct{}) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
