// Package runlock guards a target directory against concurrent organizer
// runs. Two processes moving files out of the same directory would race each
// other's collision resolution.
package runlock

import (
	"errors"
	"path/filepath"

	"github.com/gofrs/flock"

	appErrors "organizer/internal/errors"
)

// FileName is the lock file created inside the target directory. It belongs
// to the exclusion set: the organizer never classifies or moves it.
const FileName = ".organizer.lock"

type Lock struct {
	fl *flock.Flock
}

// Acquire takes the run lock for targetDir without blocking. It fails with a
// Locked error when another organizer run holds it.
func Acquire(targetDir string) (*Lock, error) {
	path := filepath.Join(targetDir, FileName)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, appErrors.Wrap(appErrors.IOFailure, "acquire lock", path, err)
	}
	if !ok {
		return nil, appErrors.Wrap(appErrors.Locked, "acquire lock", path, errors.New("lock held by another process"))
	}
	return &Lock{fl: fl}, nil
}

func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

func (l *Lock) Path() string {
	if l == nil || l.fl == nil {
		return ""
	}
	return l.fl.Path()
}
