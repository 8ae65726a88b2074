package setup

import (
	"context"
	"io"
	"time"

	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/install"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/paths"
	"github.com/arthur-debert/themeup/pkg/settings"
	"github.com/arthur-debert/themeup/pkg/themes"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/rs/zerolog"
)

// Phases selects what a run does
type Phases uint8

const (
	RunInstall Phases = 1 << iota
	RunSettings
	RunProfile

	RunAll = RunInstall | RunSettings | RunProfile
)

// Has reports whether p includes all of q
func (p Phases) Has(q Phases) bool {
	return p&q == q
}

// Orchestrator runs the setup phases against injected collaborators
type Orchestrator struct {
	FS         types.FS
	Paths      *paths.Resolver
	Runner     install.Runner
	Prompter   types.Prompter
	Progress   Progress
	IsElevated func() bool
	Getenv     func(string) string
	Now        func() time.Time

	// DiffOut receives dry-run diffs of settings and profile changes
	DiffOut io.Writer

	// Locations overrides the tool location table, mainly for tests
	Locations *install.Locations
}

// run holds the state threaded through the phases of one run
type run struct {
	*Orchestrator
	cfg       *config.Config
	report    *Report
	theme     string
	font      string
	locations *install.Locations
	targets   []settings.Target
	profile   string
	logger    zerolog.Logger
}

// Run executes the selected phases. The report is returned even when the
// run stops early; the error is non-nil only when the run was aborted.
func (o *Orchestrator) Run(ctx context.Context, cfg *config.Config, phases Phases) (*Report, error) {
	o.defaults()
	logger := logging.GetLogger("setup")
	done := logging.LogOperationStart(logger, "setup run")
	defer done()

	r := &run{
		Orchestrator: o,
		cfg:          cfg,
		report:       &Report{DryRun: cfg.DryRun, StartedAt: o.Now()},
		font:         cfg.Font.Family,
		logger:       logger,
	}
	defer func() { r.report.FinishedAt = o.Now() }()

	if err := r.checkElevation(); err != nil {
		r.report.Aborted = true
		return r.report, err
	}

	r.resolveTheme()
	r.resolveTargets()

	if phases.Has(RunInstall) {
		if err := r.installTools(ctx); err != nil {
			r.report.Aborted = true
			r.report.Locations = r.locationTable()
			return r.report, err
		}
	}
	r.report.Font = r.font

	if phases.Has(RunSettings) {
		r.mergeSettings()
	}
	if phases.Has(RunProfile) {
		r.generateProfile()
	}
	if cfg.Variant.Verify && !cfg.DryRun {
		r.verify(phases)
	}

	r.report.Locations = r.locationTable()
	logger.Info().
		Int("steps", len(r.report.Steps)).
		Int("failed", r.report.Count(types.StatusStateError)).
		Msg("Setup run finished")
	return r.report, nil
}

func (o *Orchestrator) defaults() {
	if o.Progress == nil {
		o.Progress = nopProgress{}
	}
	if o.IsElevated == nil {
		o.IsElevated = func() bool { return false }
	}
	if o.Getenv == nil {
		o.Getenv = func(string) string { return "" }
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.DiffOut == nil {
		o.DiffOut = io.Discard
	}
}

func (r *run) checkElevation() error {
	if !r.IsElevated() || r.cfg.AllowElevated {
		return nil
	}

	r.logger.Warn().Msg("Running elevated")
	r.Progress.Warn("Running as administrator: tools and settings would be set up for the elevated account.")

	ok, err := r.Prompter.Confirm("Continue anyway?", false)
	if err != nil {
		return errors.Wrap(err, errors.ErrElevationDeclined, "could not confirm elevated run")
	}
	if !ok {
		return errors.New(errors.ErrElevationDeclined, "elevated run declined; rerun from a normal shell or pass --allow-elevated")
	}
	return nil
}

func (r *run) resolveTheme() {
	res := themes.Resolve(r.cfg.Theme, r.Getenv(themes.EnvThemeOverride))
	r.theme = string(res.Theme)
	r.report.Theme = r.theme
	r.report.ThemeSource = string(res.Source)
	for _, w := range res.Warnings {
		r.report.warn(w.Error())
		r.Progress.Warn(w.Error())
	}
}

func (r *run) resolveTargets() {
	terminals := r.cfg.Paths.Terminal
	if len(terminals) == 0 {
		terminals = r.Paths.TerminalSettings()
	}
	editors := r.cfg.Paths.Editors
	if len(editors) == 0 {
		editors = r.Paths.EditorSettings()
	}

	r.profile = r.cfg.Paths.Profile
	if r.profile == "" {
		r.profile = r.Paths.ProfilePath(r.cfg.Tools.Shell)
	}
	r.profile = r.Paths.ExpandHome(r.profile)

	r.locations = r.Locations
	if r.locations == nil {
		r.locations = install.NewLocations(r.Paths.GOOS(), r.Paths.ToolDirs())
	}

	r.targets = settings.Targets(
		r.expandAll(terminals), r.expandAll(editors),
		r.font, r.cfg.Font.Size, r.cfg.Font.EditorSize,
		r.cfg.Variant.TerminalExperimental, r.cfg.Variant.EditorFont,
	)
}

func (r *run) expandAll(in []string) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = r.Paths.ExpandHome(p)
	}
	return out
}

func (r *run) locationTable() map[string]string {
	table := map[string]string{}
	for _, name := range r.locations.Names() {
		path, _ := r.locations.Recorded(name)
		table[name] = path
	}
	return table
}

func (r *run) record(step StepResult) {
	r.report.add(step)
	r.Progress.Step(step)
}
