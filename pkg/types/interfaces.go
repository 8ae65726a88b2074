package types

import "io/fs"

// FS is the slice of filesystem access the settings merger, the profile
// generator and font detection need. filesystem.NewOS backs it with the
// host; tests use filesystem.NewMemoryFS.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
}
