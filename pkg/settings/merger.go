package settings

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/jsontree"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/aymanbagabas/go-udiff"
	"github.com/rs/zerolog"
)

const defaultPerm fs.FileMode = 0644

// Result describes one merge
type Result struct {
	Path       string
	Existed    bool
	Changed    bool
	BackupPath string
	Diff       string

	// ParseWarning is set when the existing file could not be parsed and the
	// merge started from an empty document.
	ParseWarning error
	Err          error
}

// OK reports whether the merge completed
func (r Result) OK() bool {
	return r.Err == nil
}

// Merger applies overrides to settings files
type Merger struct {
	fs     types.FS
	now    func() time.Time
	dryRun bool
	out    io.Writer
	logger zerolog.Logger
}

// Option configures a Merger
type Option func(*Merger)

// WithClock sets the clock used for backup timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Merger) {
		m.now = now
	}
}

// WithDryRun makes the merger render diffs to out instead of writing
func WithDryRun(out io.Writer) Option {
	return func(m *Merger) {
		m.dryRun = true
		m.out = out
	}
}

// NewMerger creates a merger over fsys
func NewMerger(fsys types.FS, opts ...Option) *Merger {
	m := &Merger{
		fs:     fsys,
		now:    time.Now,
		out:    io.Discard,
		logger: logging.GetLogger("settings"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge applies overrides to the document at path and reports success.
// Failures are logged.
func (m *Merger) Merge(path string, overrides []jsontree.Override) bool {
	return m.MergeDetailed(path, overrides).OK()
}

// MergeDetailed applies overrides to the document at path
func (m *Merger) MergeDetailed(path string, overrides []jsontree.Override) Result {
	logger := m.logger.With().Str("path", path).Logger()
	result := Result{Path: path}

	original, perm, err := m.read(path)
	switch {
	case err == nil:
		result.Existed = true
	case stderrors.Is(err, fs.ErrNotExist):
		logger.Debug().Msg("Settings file does not exist, starting from an empty document")
	default:
		result.Err = errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
		logger.Error().Err(result.Err).Msg("Failed to read settings")
		return result
	}

	doc := jsontree.Document{}
	if result.Existed {
		parsed, err := jsontree.Parse(original)
		if err != nil {
			result.ParseWarning = errors.Wrapf(err, errors.ErrSettingsParse, "cannot parse %s", path).
				WithDetail("path", path)
			logger.Warn().Err(err).Msg("Settings file is not valid JSON, starting from an empty document")
		} else {
			doc = parsed
		}
	}

	for _, o := range overrides {
		logger.Trace().Str("key", o.String()).Interface("value", o.Value).Msg("Applying override")
	}
	if _, err := doc.Apply(overrides); err != nil {
		result.Err = errors.Wrapf(err, errors.ErrSettingsConflict, "cannot merge into %s", path).
			WithDetail("path", path)
		logger.Error().Err(result.Err).Msg("Settings shape conflicts with overrides, leaving file untouched")
		return result
	}

	updated, err := doc.Marshal()
	if err != nil {
		result.Err = errors.Wrapf(err, errors.ErrSettingsWrite, "cannot serialize %s", path).
			WithDetail("path", path)
		logger.Error().Err(result.Err).Msg("Failed to serialize settings")
		return result
	}
	result.Changed = !result.Existed || !bytes.Equal(original, updated)

	if m.dryRun {
		if result.Changed {
			result.Diff = udiff.Unified(path, path, string(original), string(updated))
			_, _ = fmt.Fprint(m.out, result.Diff)
		}
		logger.Info().Bool("changed", result.Changed).Msg("Dry run, settings not written")
		return result
	}

	if result.Existed {
		backup, err := filesystem.Backup(m.fs, path, m.now())
		if err != nil {
			result.Err = err
			logger.Error().Err(err).Msg("Failed to back up settings, leaving file untouched")
			return result
		}
		result.BackupPath = backup
		logger.Debug().Str("backup", backup).Msg("Backed up settings")
	} else {
		if err := filesystem.EnsureParentDir(m.fs, path); err != nil {
			result.Err = err
			logger.Error().Err(err).Msg("Failed to create settings directory")
			return result
		}
	}

	if err := filesystem.WriteFileAtomic(m.fs, path, updated, perm); err != nil {
		result.Err = errors.Wrapf(err, errors.ErrSettingsWrite, "cannot write %s", path).
			WithDetail("path", path)
		logger.Error().Err(result.Err).Msg("Failed to write settings")
		return result
	}

	logger.Info().Int("overrides", len(overrides)).Bool("changed", result.Changed).Msg("Settings merged")
	return result
}

func (m *Merger) read(path string) ([]byte, fs.FileMode, error) {
	info, err := m.fs.Stat(path)
	if err != nil {
		return nil, defaultPerm, err
	}
	data, err := m.fs.ReadFile(path)
	if err != nil {
		return nil, defaultPerm, err
	}
	return data, info.Mode().Perm(), nil
}
