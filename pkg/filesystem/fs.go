package filesystem

import (
	"io/fs"
	"sort"

	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS adapts an afero.Fs to types.FS. The host filesystem and the
// in-memory one used by tests go through the same code.
type aferoFS struct {
	afero.Fs
}

// NewOS returns the host filesystem
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemoryFS returns an empty in-memory filesystem
func NewMemoryFS() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// NewAferoFS wraps any afero filesystem, e.g. a ReadOnlyFs in tests
func NewAferoFS(base afero.Fs) types.FS {
	return aferoFS{Fs: base}
}

// ReadFile rejects directories up front; MemMapFs would otherwise return
// an empty slice for them.
func (a aferoFS) ReadFile(name string) ([]byte, error) {
	if info, err := a.Fs.Stat(name); err != nil {
		return nil, err
	} else if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.Fs, name)
}

func (a aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.Fs, name, data, perm)
}

// ReadDir returns entries sorted by name
func (a aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.Fs, name)
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}
