package setup

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/install"
	"github.com/arthur-debert/themeup/pkg/jsontree"
	"github.com/arthur-debert/themeup/pkg/types"
)

// verify re-reads what the run produced. Failures become warnings and
// failed verify steps; they never abort the run.
func (r *run) verify(phases Phases) {
	r.Progress.Phase(PhaseVerify)

	if phases.Has(RunInstall) {
		for _, binary := range []string{r.cfg.Tools.PromptRenderer.Binary, r.cfg.Tools.FuzzyFinder.Binary} {
			r.verifyTool(binary)
		}
		if r.cfg.Variant.FontInstall != config.FontInstallSkip {
			r.verifyFont()
		}
	}

	if phases.Has(RunSettings) {
		written := map[string]bool{}
		for _, s := range r.report.PhaseSteps(PhaseSettings) {
			written[s.Path] = s.Status == types.StatusStateSuccess
		}
		for _, target := range r.targets {
			if written[target.Path] {
				r.verifySettings(target.Path, target.Overrides)
			}
		}
	}

	if phases.Has(RunProfile) {
		for _, s := range r.report.PhaseSteps(PhaseProfile) {
			if s.Status == types.StatusStateSuccess {
				r.verifyProfile()
			}
		}
	}
}

func (r *run) verifyTool(binary string) {
	step := StepResult{Phase: PhaseVerify, Name: binary}
	path, ok := r.locations.Lookup(binary)
	if !ok {
		r.verifyFailed(step, errors.Newf(errors.ErrVerifyFailed, "%s is not installed or not reachable", binary))
		return
	}
	step.Status = types.StatusStateSuccess
	step.Path = path
	step.Detail = "found"
	r.record(step)
}

func (r *run) verifyFont() {
	step := StepResult{Phase: PhaseVerify, Name: "font"}
	file, ok := install.FindFont(r.FS, r.Paths.FontDirs(), r.cfg.Font.FilePattern)
	if !ok {
		r.verifyFailed(step, errors.Newf(errors.ErrVerifyFailed, "no font file matching %q found", r.cfg.Font.FilePattern))
		return
	}
	step.Status = types.StatusStateSuccess
	step.Path = file
	step.Detail = "found"
	r.record(step)
}

func (r *run) verifySettings(path string, overrides []jsontree.Override) {
	step := StepResult{Phase: PhaseVerify, Name: "settings", Path: path}

	data, err := r.FS.ReadFile(path)
	if err != nil {
		r.verifyFailed(step, errors.Wrapf(err, errors.ErrVerifyFailed, "cannot re-read %s", path))
		return
	}
	doc, err := jsontree.Parse(data)
	if err != nil {
		r.verifyFailed(step, errors.Wrapf(err, errors.ErrVerifyFailed, "%s no longer parses", path))
		return
	}

	var missing []string
	for _, o := range overrides {
		if !doc.Contains(o) {
			missing = append(missing, o.String())
		}
	}
	if len(missing) > 0 {
		r.verifyFailed(step, errors.Newf(errors.ErrVerifyFailed, "%s is missing %s", path, strings.Join(missing, ", ")))
		return
	}

	step.Status = types.StatusStateSuccess
	step.Detail = fmt.Sprintf("%d values present", len(overrides))
	r.record(step)
}

func (r *run) verifyProfile() {
	step := StepResult{Phase: PhaseVerify, Name: "profile", Path: r.profile}

	data, err := r.FS.ReadFile(r.profile)
	if err != nil {
		r.verifyFailed(step, errors.Wrapf(err, errors.ErrVerifyFailed, "cannot re-read %s", r.profile))
		return
	}
	if !strings.Contains(string(data), r.theme) {
		r.verifyFailed(step, errors.Newf(errors.ErrVerifyFailed, "profile does not reference theme %s", r.theme))
		return
	}

	step.Status = types.StatusStateSuccess
	step.Detail = "references theme " + r.theme
	r.record(step)
}

func (r *run) verifyFailed(step StepResult, err error) {
	r.logger.Warn().Err(err).Str("check", step.Name).Msg("Verification failed")
	r.report.warn(err.Error())
	r.record(failedStep(step, err))
}
