package install

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/logging"
)

const modulePresentMarker = "present"

// ShellModuleStep installs a PowerShell module for the current user
type ShellModuleStep struct {
	shell  string
	module string
}

// NewShellModule returns the step that installs module with shell
func NewShellModule(shell, module string) *ShellModuleStep {
	return &ShellModuleStep{shell: shell, module: module}
}

// Name implements Step
func (s *ShellModuleStep) Name() string {
	return "shell module"
}

// Required implements Step
func (s *ShellModuleStep) Required() bool {
	return false
}

// Run implements Step
func (s *ShellModuleStep) Run(ctx context.Context, env *Env) Outcome {
	logger := logging.GetLogger("install").With().Str("step", s.Name()).Str("module", s.module).Logger()

	shell, ok := env.Locations.Lookup(s.shell)
	if !ok {
		return failed(errors.Newf(errors.ErrToolNotFound, "%s not found; cannot install %s", s.shell, s.module))
	}

	check := fmt.Sprintf("if (Get-Module -ListAvailable -Name %s) { '%s' }", psquote(s.module), modulePresentMarker)
	out, err := env.Runner.Output(ctx, shell, "-NoProfile", "-NonInteractive", "-Command", check)
	if err != nil {
		logger.Debug().Err(err).Msg("Module check failed, assuming the module is missing")
	}
	if strings.Contains(out, modulePresentMarker) && !env.Force {
		return present(s.module, fmt.Sprintf("%s already installed", s.module))
	}

	install := fmt.Sprintf("Install-Module -Name %s -Scope CurrentUser -Force", psquote(s.module))
	if env.DryRun {
		return dryRun(fmt.Sprintf("would run %s", install))
	}

	if err := env.Runner.Run(ctx, shell, "-NoProfile", "-NonInteractive", "-Command", install); err != nil {
		logger.Error().Err(err).Msg("Module install failed")
		return failed(errors.Wrapf(err, errors.ErrInstallFailed, "installing %s failed", s.module))
	}

	logger.Info().Msg("Module installed")
	return success(fmt.Sprintf("installed %s", s.module))
}

func psquote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
