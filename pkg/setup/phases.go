package setup

import (
	"context"
	"fmt"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/install"
	"github.com/arthur-debert/themeup/pkg/jsontree"
	"github.com/arthur-debert/themeup/pkg/profile"
	"github.com/arthur-debert/themeup/pkg/settings"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/aymanbagabas/go-udiff"
)

func (r *run) steps() []install.Step {
	tools := r.cfg.Tools
	goos := r.Paths.GOOS()
	return []install.Step{
		install.NewPromptRenderer(tools.PromptRenderer.Binary, tools.PromptRenderer.InstallCommand(goos)),
		install.NewFuzzyFinder(tools.FuzzyFinder.Binary, tools.FuzzyFinder.InstallCommand(goos)),
		install.NewShellModule(tools.Shell, tools.ShellModule.Module),
		&install.FontStep{
			Mode:           r.cfg.Variant.FontInstall,
			Family:         r.cfg.Font.Family,
			Package:        r.cfg.Font.Package,
			FilePattern:    r.cfg.Font.FilePattern,
			Dirs:           r.Paths.FontDirs(),
			PromptRenderer: tools.PromptRenderer.Binary,
		},
	}
}

func (r *run) installTools(ctx context.Context) error {
	r.Progress.Phase(PhaseInstall)
	env := &install.Env{
		Runner:    r.Runner,
		Locations: r.locations,
		Prompter:  r.Prompter,
		FS:        r.FS,
		GOOS:      r.Paths.GOOS(),
		Force:     r.cfg.Force,
		DryRun:    r.cfg.DryRun,
	}

	for _, step := range r.steps() {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrRunAborted, "run cancelled")
		}

		outcome := step.Run(ctx, env)
		r.record(StepResult{
			Phase:  PhaseInstall,
			Name:   step.Name(),
			Status: outcome.Status,
			Detail: outcome.Detail,
			Err:    outcome.Err,
		})

		if _, isFont := step.(*install.FontStep); isFont && outcome.OK() && outcome.Value != "" {
			r.font = outcome.Value
		}

		if !outcome.OK() {
			r.logger.Warn().Err(outcome.Err).Str("step", step.Name()).Msg("Install step failed")
			if step.Required() && r.cfg.AbortOnFailure {
				return errors.Wrapf(outcome.Err, errors.ErrRunAborted, "required step %q failed", step.Name())
			}
		}
	}
	return nil
}

func (r *run) mergeSettings() {
	r.Progress.Phase(PhaseSettings)
	opts := []settings.Option{settings.WithClock(r.Now)}
	if r.cfg.DryRun {
		opts = append(opts, settings.WithDryRun(r.DiffOut))
	}
	merger := settings.NewMerger(r.FS, opts...)

	for i, target := range r.targets {
		// the font step may have resolved a different display name
		target.Overrides = r.overridesFor(target)
		r.targets[i] = target

		res := merger.MergeDetailed(target.Path, target.Overrides)
		step := StepResult{
			Phase:      PhaseSettings,
			Name:       target.Kind,
			Path:       target.Path,
			BackupPath: res.BackupPath,
			Diff:       res.Diff,
			Err:        res.Err,
		}
		switch {
		case res.Err != nil:
			step.Status = types.StatusStateError
			step.Detail = res.Err.Error()
		case r.cfg.DryRun:
			step.Status = types.StatusStateDryRun
			step.Detail = changeDetail(res.Changed, "would update", "already up to date")
		default:
			step.Status = types.StatusStateSuccess
			step.Detail = changeDetail(res.Changed, "updated", "unchanged")
		}
		if res.ParseWarning != nil {
			msg := fmt.Sprintf("%s: existing content could not be parsed and was replaced (backup kept)", target.Path)
			r.report.warn(msg)
			r.Progress.Warn(msg)
		}
		r.record(step)
	}
}

func (r *run) overridesFor(target settings.Target) []jsontree.Override {
	if target.Kind == settings.KindTerminal {
		return settings.TerminalOverrides(r.font, r.cfg.Font.Size, r.cfg.Variant.TerminalExperimental)
	}
	return settings.EditorOverrides(r.font, r.cfg.Font.EditorSize, r.cfg.Variant.EditorFont)
}

func (r *run) profileFlags() profile.Flags {
	v := r.cfg.Variant
	verbose := v.Verbose()
	return profile.Flags{
		Styling:       verbose && v.Styling,
		IntelliSense:  verbose && v.IntelliSense,
		TerminalIcons: verbose && v.TerminalIcons,
	}
}

func (r *run) generateProfile() {
	r.Progress.Phase(PhaseProfile)
	step := StepResult{Phase: PhaseProfile, Name: "profile", Path: r.profile}

	renderer, ok := r.locations.Lookup(r.cfg.Tools.PromptRenderer.Binary)
	if !ok {
		renderer = r.cfg.Tools.PromptRenderer.Binary
	}
	themesDir := r.cfg.Paths.ThemesDir
	if themesDir == "" {
		themesDir = r.Paths.ThemesDir()
	}

	gen, err := profile.NewGenerator(r.FS, profile.Tooling{
		PromptRenderer: renderer,
		ThemesDir:      r.Paths.ExpandHome(themesDir),
		ShellModule:    r.cfg.Tools.ShellModule.Module,
	})
	if err != nil {
		r.record(failedStep(step, err))
		return
	}
	gen.SetClock(r.Now)

	if r.cfg.DryRun {
		content, err := gen.Render(r.theme, r.font, r.profileFlags())
		if err != nil {
			r.record(failedStep(step, err))
			return
		}
		previous, _ := r.FS.ReadFile(r.profile)
		step.Diff = udiff.Unified(r.profile, r.profile, string(previous), content)
		_, _ = fmt.Fprint(r.DiffOut, step.Diff)
		step.Status = types.StatusStateDryRun
		step.Detail = fmt.Sprintf("would regenerate for theme %s", r.theme)
		r.record(step)
		return
	}

	backup, err := gen.Generate(r.profile, r.theme, r.font, r.profileFlags())
	if err != nil {
		r.record(failedStep(step, err))
		return
	}
	step.Status = types.StatusStateSuccess
	step.BackupPath = backup
	step.Detail = fmt.Sprintf("regenerated for theme %s", r.theme)
	r.record(step)
}

func failedStep(step StepResult, err error) StepResult {
	step.Status = types.StatusStateError
	step.Detail = err.Error()
	step.Err = err
	return step
}

func changeDetail(changed bool, yes, no string) string {
	if changed {
		return yes
	}
	return no
}
