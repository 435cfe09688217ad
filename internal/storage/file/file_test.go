package file

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func TestSetWaitsForLock(t *testing.T) {
	b, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	const key = "mood-diary-entries"

	// Another writer holding the lock.
	held, err := os.OpenFile(b.LockPath(key), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		t.Fatal(err)
	}
	defer held.Close()
	if err := syscall.Flock(int(held.Fd()), syscall.LOCK_EX); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- b.Set(key, []byte(`[]`)) }()

	select {
	case err := <-done:
		t.Fatalf("Set returned while the lock was held: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
	if _, err := os.Stat(b.Path(key)); !os.IsNotExist(err) {
		t.Fatalf("file written while the lock was held: %v", err)
	}

	if err := syscall.Flock(int(held.Fd()), syscall.LOCK_UN); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Set: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Set did not finish after the lock was released")
	}
	if data, err := b.Get(key); err != nil || string(data) != "[]" {
		t.Errorf("Get = %q, %v", data, err)
	}
}

func TestSetLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	b, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := b.Set("slot", []byte(`[{"id":"a"}]`)); err != nil {
			t.Fatal(err)
		}
	}
	tmps, _ := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	if len(tmps) != 0 {
		t.Errorf("leftover temp files: %v", tmps)
	}
}
