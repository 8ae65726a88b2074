package install

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// Locations records where tools were found. Lookup consults, in order, the
// recorded paths, the process PATH and a list of per-user install
// directories that a fresh package manager install may not have added to
// PATH yet.
type Locations struct {
	found    map[string]string
	dirs     []string
	goos     string
	lookPath func(string) (string, error)
	isFile   func(string) bool
}

// NewLocations creates an empty location table for goos that falls back to
// dirs after PATH
func NewLocations(goos string, dirs []string) *Locations {
	return &Locations{
		found:    map[string]string{},
		dirs:     dirs,
		goos:     goos,
		lookPath: exec.LookPath,
		isFile:   regularFile,
	}
}

// WithSearch replaces the PATH lookup and the file check used for the
// per-user directories
func (l *Locations) WithSearch(lookPath func(string) (string, error), isFile func(string) bool) *Locations {
	l.lookPath = lookPath
	l.isFile = isFile
	return l
}

// Record stores the path of a tool
func (l *Locations) Record(name, path string) {
	l.found[name] = path
}

// Recorded returns the stored path of a tool without searching
func (l *Locations) Recorded(name string) (string, bool) {
	path, ok := l.found[name]
	return path, ok
}

// Lookup finds a tool and records the hit
func (l *Locations) Lookup(name string) (string, bool) {
	if path, ok := l.found[name]; ok {
		return path, true
	}

	if path, err := l.lookPath(name); err == nil {
		l.Record(name, path)
		return path, true
	}

	for _, dir := range l.dirs {
		for _, candidate := range l.candidates(name) {
			path := filepath.Join(dir, candidate)
			if l.isFile(path) {
				l.Record(name, path)
				return path, true
			}
		}
	}
	return "", false
}

// Rescan drops a recorded path and looks the tool up again
func (l *Locations) Rescan(name string) (string, bool) {
	delete(l.found, name)
	return l.Lookup(name)
}

// Names returns the recorded tool names, sorted
func (l *Locations) Names() []string {
	names := make([]string, 0, len(l.found))
	for name := range l.found {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *Locations) candidates(name string) []string {
	if l.goos == "windows" && filepath.Ext(name) == "" {
		return []string{name + ".exe", name}
	}
	return []string{name}
}

func regularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
