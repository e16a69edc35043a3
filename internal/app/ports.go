package app

import "io/fs"

// FileSystem is the filesystem surface the planner and executor need. The
// production implementation lives in internal/infra/fs; tests use a mock.
type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	Move(src, dst string) error
}
