package runlock

import (
	"path/filepath"
	"testing"

	appErrors "organizer/internal/errors"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if lock.Path() != filepath.Join(dir, FileName) {
		t.Fatalf("unexpected lock path: %q", lock.Path())
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestAcquireContended(t *testing.T) {
	dir := t.TempDir()

	first, err := Acquire(dir)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer first.Release()

	_, err = Acquire(dir)
	if err == nil {
		t.Fatal("expected second acquire to fail")
	}
	appErr, ok := err.(*appErrors.AppError)
	if !ok || appErr.Kind != appErrors.Locked {
		t.Fatalf("expected Locked error, got %v", err)
	}
}

func TestAcquireAfterRelease(t *testing.T) {
	dir := t.TempDir()

	first, err := Acquire(dir)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	second, err := Acquire(dir)
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	_ = second.Release()
}
