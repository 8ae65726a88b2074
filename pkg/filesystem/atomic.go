package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/google/uuid"
)

// WriteFileAtomic writes data next to path under a unique temporary name and
// renames it over path, so readers never observe a truncated file.
func WriteFileAtomic(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write temporary file for %s", path).
			WithDetail("path", path)
	}

	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", path).
			WithDetail("path", path)
	}

	return nil
}

// EnsureParentDir creates the directory that will hold path
func EnsureParentDir(fsys types.FS, path string) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}
	return nil
}
