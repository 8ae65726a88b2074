package filesystem

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/types"
)

const (
	// BackupInfix separates the original path from the timestamp
	BackupInfix = ".backup."

	// BackupTimeLayout is yyyyMMdd-HHmmss
	BackupTimeLayout = "20060102-150405"

	maxBackupCollisions = 1000
)

// BackupPath returns the backup name for path at the given time
func BackupPath(path string, at time.Time) string {
	return path + BackupInfix + at.Format(BackupTimeLayout)
}

// Backup copies the current content of path to <path>.backup.<timestamp>.
// A second run within the same second gets a -2, -3, ... suffix so an
// earlier backup is never overwritten. It returns the backup path.
func Backup(fsys types.FS, path string, at time.Time) (string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupFailed, "cannot back up %s", path).
			WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupFailed, "cannot read %s for backup", path).
			WithDetail("path", path)
	}

	target, err := freeBackupPath(fsys, path, at)
	if err != nil {
		return "", err
	}

	if err := fsys.WriteFile(target, data, info.Mode().Perm()); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupFailed, "cannot write backup %s", target).
			WithDetail("path", path).
			WithDetail("backup", target)
	}

	return target, nil
}

func freeBackupPath(fsys types.FS, path string, at time.Time) (string, error) {
	base := BackupPath(path, at)
	candidate := base
	for i := 2; i <= maxBackupCollisions; i++ {
		_, err := fsys.Stat(candidate)
		if stderrors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrBackupFailed, "cannot check backup path %s", candidate)
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", errors.Newf(errors.ErrBackupFailed, "too many backups of %s within one second", path)
}
