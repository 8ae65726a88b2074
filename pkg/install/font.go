package install

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/types"
)

// font directories nest by family on some platforms
const maxFontDirDepth = 3

// FontStep makes sure the Nerd Font is installed
type FontStep struct {
	Mode           string
	Family         string
	Package        string
	FilePattern    string
	Dirs           []string
	PromptRenderer string
}

// Name implements Step
func (s *FontStep) Name() string {
	return "font"
}

// Required implements Step
func (s *FontStep) Required() bool {
	return false
}

// Run implements Step. A successful outcome carries the font display name
// in Value.
func (s *FontStep) Run(ctx context.Context, env *Env) Outcome {
	outcome := s.run(ctx, env)
	if outcome.OK() {
		outcome.Value = s.Family
	}
	return outcome
}

func (s *FontStep) run(ctx context.Context, env *Env) Outcome {
	logger := logging.GetLogger("install").With().Str("step", s.Name()).Str("mode", s.Mode).Logger()

	if s.Mode == config.FontInstallSkip {
		return skipped("font installation disabled")
	}

	if file, ok := FindFont(env.FS, s.Dirs, s.FilePattern); ok && !env.Force {
		logger.Info().Str("file", file).Msg("Font already installed")
		return present(s.Family, fmt.Sprintf("%s already installed (%s)", s.Family, filepath.Base(file)))
	}

	switch s.Mode {
	case config.FontInstallAuto:
		if env.DryRun {
			return dryRun(fmt.Sprintf("would run %s font install %s", s.PromptRenderer, s.Package))
		}
		renderer, ok := env.Locations.Lookup(s.PromptRenderer)
		if !ok {
			return failed(errors.Newf(errors.ErrToolNotFound, "%s not found; cannot install font %s", s.PromptRenderer, s.Package))
		}
		if err := env.Runner.Run(ctx, renderer, "font", "install", s.Package); err != nil {
			logger.Error().Err(err).Msg("Font install failed")
			return failed(errors.Wrapf(err, errors.ErrInstallFailed, "installing font %s failed", s.Package))
		}
		return success(fmt.Sprintf("installed %s", s.Family))

	case config.FontInstallManual:
		if env.DryRun {
			return dryRun("would open the font folder and wait for manual installation")
		}
		return s.manual(ctx, env)

	default:
		return failed(errors.Newf(errors.ErrConfigValid, "unknown font install mode %q", s.Mode))
	}
}

func (s *FontStep) manual(ctx context.Context, env *Env) Outcome {
	logger := logging.GetLogger("install").With().Str("step", s.Name()).Logger()

	if len(s.Dirs) > 0 {
		opener := fileExplorer(env.GOOS)
		// explorer.exe exits non-zero even on success
		if err := env.Runner.Run(ctx, opener, s.Dirs[0]); err != nil {
			logger.Debug().Err(err).Str("opener", opener).Msg("File explorer returned an error")
		}
	}

	message := fmt.Sprintf("Install the %s files (package %s), then press Enter to continue...", s.Family, s.Package)
	if err := env.Prompter.WaitForEnter(message); err != nil {
		return failed(err)
	}

	if _, ok := FindFont(env.FS, s.Dirs, s.FilePattern); !ok {
		logger.Warn().Str("pattern", s.FilePattern).Msg("Font still not detected after manual installation")
		return success(fmt.Sprintf("%s confirmed by user but not detected", s.Family))
	}
	return success(fmt.Sprintf("installed %s", s.Family))
}

// FindFont searches dirs for a file whose name matches the glob pattern
func FindFont(fsys types.FS, dirs []string, pattern string) (string, bool) {
	for _, dir := range dirs {
		if file, ok := findIn(fsys, dir, pattern, 0); ok {
			return file, true
		}
	}
	return "", false
}

func findIn(fsys types.FS, dir, pattern string, depth int) (string, bool) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if depth < maxFontDirDepth {
				if file, ok := findIn(fsys, full, pattern, depth+1); ok {
					return file, true
				}
			}
			continue
		}
		if matched, _ := path.Match(pattern, entry.Name()); matched {
			return full, true
		}
	}
	return "", false
}

func fileExplorer(goos string) string {
	switch goos {
	case "windows":
		return "explorer"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
