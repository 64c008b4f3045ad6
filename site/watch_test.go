package site

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_FiresOnMarkdownWrite(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan struct{}, 1)
	w, err := NewWatcher(dir, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "new.md"), []byte("---\ntitle: N\n---\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire after markdown write")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan struct{}, 1)
	w, err := NewWatcher(dir, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, ".hidden.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Fatal("watcher fired for non-markdown changes")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "absent"), time.Millisecond, func() {})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
