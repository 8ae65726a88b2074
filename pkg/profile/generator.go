package profile

import (
	"bytes"
	"embed"
	stderrors "errors"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/arthur-debert/themeup/internal/version"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/rs/zerolog"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const templateName = "profile.ps1.tmpl"

// Flags selects the optional profile blocks
type Flags struct {
	Styling       bool
	IntelliSense  bool
	TerminalIcons bool
}

// Tooling names the executables and locations the profile references
type Tooling struct {
	// PromptRenderer is the resolved prompt renderer executable
	PromptRenderer string
	// ThemesDir holds <theme>.omp.json files; empty falls back to
	// $env:POSH_THEMES_PATH when the profile runs.
	ThemesDir   string
	ShellModule string
}

type templateData struct {
	Tooling
	Flags
	Version string
	Theme   string
	Font    string
}

// Generator writes shell profiles
type Generator struct {
	fs      types.FS
	tooling Tooling
	now     func() time.Time
	tmpl    *template.Template
	logger  zerolog.Logger
}

// NewGenerator creates a generator over fsys
func NewGenerator(fsys types.FS, tooling Tooling) (*Generator, error) {
	if tooling.PromptRenderer == "" {
		tooling.PromptRenderer = "oh-my-posh"
	}
	if tooling.ShellModule == "" {
		tooling.ShellModule = "PSFzf"
	}

	tmpl, err := template.New(templateName).
		Funcs(template.FuncMap{"psquote": psquote}).
		ParseFS(templatesFS, "templates/"+templateName)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse profile template")
	}

	return &Generator{
		fs:      fsys,
		tooling: tooling,
		now:     time.Now,
		tmpl:    tmpl,
		logger:  logging.GetLogger("profile"),
	}, nil
}

// SetClock replaces the clock used for backup timestamps
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// Render returns the profile text without touching the filesystem
func (g *Generator) Render(theme, font string, flags Flags) (string, error) {
	// both land in comment lines; a line break would start live code
	if strings.ContainsAny(theme+font, "\r\n") {
		return "", errors.Newf(errors.ErrProfileRender,
			"theme %q or font %q contains a line break", theme, font).
			WithDetail("theme", theme)
	}

	data := templateData{
		Tooling: g.tooling,
		Flags:   flags,
		Version: version.Version,
		Theme:   theme,
		Font:    font,
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.ErrProfileRender, "failed to render profile").
			WithDetail("theme", theme)
	}
	return buf.String(), nil
}

// Generate renders the profile and replaces the file at profilePath. An
// existing profile is backed up first; a failed backup leaves it untouched.
// It returns the backup path, empty when there was nothing to back up.
func (g *Generator) Generate(profilePath, theme, font string, flags Flags) (string, error) {
	logger := g.logger.With().Str("path", profilePath).Str("theme", theme).Logger()

	content, err := g.Render(theme, font, flags)
	if err != nil {
		return "", err
	}

	var backup string
	perm := fs.FileMode(0644)
	info, err := g.fs.Stat(profilePath)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
		backup, err = filesystem.Backup(g.fs, profilePath, g.now())
		if err != nil {
			return "", err
		}
		logger.Debug().Str("backup", backup).Msg("Backed up existing profile")
	case stderrors.Is(err, fs.ErrNotExist):
		if err := filesystem.EnsureParentDir(g.fs, profilePath); err != nil {
			return "", err
		}
	default:
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", profilePath).
			WithDetail("path", profilePath)
	}

	if err := filesystem.WriteFileAtomic(g.fs, profilePath, []byte(content), perm); err != nil {
		return backup, errors.Wrapf(err, errors.ErrProfileWrite, "cannot write profile %s", profilePath).
			WithDetail("path", profilePath)
	}

	logger.Info().Msg("Profile regenerated")
	return backup, nil
}

// psquote renders s as a single-quoted PowerShell string literal
func psquote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
