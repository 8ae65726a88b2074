package install

import (
	"context"
	"fmt"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/logging"
)

// PackageStep installs a command line tool through a package manager
type PackageStep struct {
	name     string
	binary   string
	command  []string
	required bool
}

// NewPromptRenderer returns the step that installs the prompt renderer
func NewPromptRenderer(binary string, command []string) *PackageStep {
	return &PackageStep{name: "prompt renderer", binary: binary, command: command, required: true}
}

// NewFuzzyFinder returns the step that installs the fuzzy finder
func NewFuzzyFinder(binary string, command []string) *PackageStep {
	return &PackageStep{name: "fuzzy finder", binary: binary, command: command}
}

// Name implements Step
func (s *PackageStep) Name() string {
	return s.name
}

// Required implements Step
func (s *PackageStep) Required() bool {
	return s.required
}

// Binary returns the executable name the step installs
func (s *PackageStep) Binary() string {
	return s.binary
}

// Run implements Step
func (s *PackageStep) Run(ctx context.Context, env *Env) Outcome {
	logger := logging.GetLogger("install").With().Str("step", s.name).Str("binary", s.binary).Logger()

	if path, ok := env.Locations.Lookup(s.binary); ok && !env.Force {
		logger.Info().Str("path", path).Msg("Already installed")
		return present(s.binary, fmt.Sprintf("%s already installed at %s", s.binary, path))
	}

	if len(s.command) == 0 {
		return failed(errors.Newf(errors.ErrInstallFailed, "no install command configured for %s", s.binary))
	}

	if env.DryRun {
		return dryRun(fmt.Sprintf("would run %s", commandLine(s.command[0], s.command[1:])))
	}

	if err := env.Runner.Run(ctx, s.command[0], s.command[1:]...); err != nil {
		logger.Error().Err(err).Msg("Install command failed")
		return failed(errors.Wrapf(err, errors.ErrInstallFailed, "installing %s failed", s.binary).
			WithDetail("command", commandLine(s.command[0], s.command[1:])))
	}

	path, ok := env.Locations.Rescan(s.binary)
	if !ok {
		logger.Warn().Msg("Installed but not found on PATH or in the per-user install directories")
		return success(fmt.Sprintf("installed %s; open a new shell to pick it up", s.binary))
	}

	logger.Info().Str("path", path).Msg("Installed")
	return success(fmt.Sprintf("installed %s at %s", s.binary, path))
}
