package planfile

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestFeedLock_AcquireRelease(t *testing.T) {
	dir := t.TempDir()
	l := NewFeedLock(dir)

	if err := l.Acquire(); err != nil {
		t.Fatalf("acquire: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "feed.lock"))
	if err != nil {
		t.Fatalf("lock file missing: %v", err)
	}
	if want := strconv.Itoa(os.Getpid()); string(data) != want {
		t.Errorf("lock file = %q, want our pid %q", data, want)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "feed.lock")); !os.IsNotExist(err) {
		t.Error("lock file should be gone after release")
	}
}

func TestFeedLock_HeldBySelf(t *testing.T) {
	dir := t.TempDir()
	l := NewFeedLock(dir)

	if err := l.Acquire(); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer l.Release()

	// Our own pid counts as a live holder.
	if err := NewFeedLock(dir).Acquire(); err == nil {
		t.Error("second acquire should fail while held")
	}

	locked, err := l.IsLocked()
	if err != nil {
		t.Fatalf("isLocked: %v", err)
	}
	if !locked {
		t.Error("IsLocked = false, want true while held")
	}
}

func TestFeedLock_StaleLockCleanedUp(t *testing.T) {
	dir := t.TempDir()
	// PID unlikely to exist; kernel pid_max normally caps well below this.
	os.WriteFile(filepath.Join(dir, "feed.lock"), []byte("99999999"), 0644)

	l := NewFeedLock(dir)
	if err := l.Acquire(); err != nil {
		t.Fatalf("acquire over stale lock: %v", err)
	}
	l.Release()
}

func TestFeedLock_GarbledLockCleanedUp(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "feed.lock"), []byte("not-a-pid"), 0644)

	l := NewFeedLock(dir)
	locked, err := l.IsLocked()
	if err != nil {
		t.Fatalf("isLocked: %v", err)
	}
	if locked {
		t.Error("garbled lock should read as unlocked")
	}
	if err := l.Acquire(); err != nil {
		t.Fatalf("acquire over garbled lock: %v", err)
	}
	l.Release()
}

func TestFeedLock_ReleaseIdempotent(t *testing.T) {
	l := NewFeedLock(t.TempDir())
	if err := l.Release(); err != nil {
		t.Errorf("releasing an unheld lock should be a no-op, got %v", err)
	}
}
