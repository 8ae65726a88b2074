package setup

import (
	"bytes"
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/install"
	"github.com/arthur-debert/themeup/pkg/jsontree"
	"github.com/arthur-debert/themeup/pkg/paths"
	"github.com/arthur-debert/themeup/pkg/testutil"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = "/home/ann"

var (
	editorSettings = filepath.Join(home, ".config", "Code", "User", "settings.json")
	profilePath    = filepath.Join(home, ".config", "powershell", paths.ProfileFileName)
	fontFile       = filepath.Join(home, ".local", "share", "fonts", "MesloLGMNerdFont-Regular.ttf")
)

type fixture struct {
	orch      *Orchestrator
	fs        types.FS
	runner    *testutil.Runner
	prompter  *testutil.Prompter
	installed map[string]string
	diff      *bytes.Buffer
	env       map[string]string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		fs:        filesystem.NewMemoryFS(),
		prompter:  &testutil.Prompter{},
		installed: map[string]string{"pwsh": "/usr/bin/pwsh"},
		diff:      &bytes.Buffer{},
		env:       map[string]string{},
	}

	f.runner = testutil.NewRunner()
	f.runner.OnRun = func(cmd string) {
		switch {
		case strings.HasSuffix(cmd, "oh-my-posh/oh-my-posh"):
			f.installed["oh-my-posh"] = "/opt/homebrew/bin/oh-my-posh"
		case cmd == "brew install fzf":
			f.installed["fzf"] = "/opt/homebrew/bin/fzf"
		case strings.Contains(cmd, "font install"):
			require.NoError(t, filesystem.EnsureParentDir(f.fs, fontFile))
			require.NoError(t, f.fs.WriteFile(fontFile, []byte("ttf"), 0644))
		}
	}

	getenv := func(k string) string { return f.env[k] }
	locations := install.NewLocations("linux", nil).WithSearch(
		func(name string) (string, error) {
			if p, ok := f.installed[name]; ok {
				return p, nil
			}
			return "", stderrors.New("not found")
		},
		func(string) bool { return false },
	)

	f.orch = &Orchestrator{
		FS:        f.fs,
		Paths:     paths.NewFor("linux", home, getenv, nil),
		Runner:    f.runner,
		Prompter:  f.prompter,
		Getenv:    getenv,
		Now:       func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) },
		DiffOut:   f.diff,
		Locations: locations,
	}
	return f
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := f.fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func statuses(steps []StepResult) []types.StatusState {
	out := make([]types.StatusState, len(steps))
	for i, s := range steps {
		out[i] = s.Status
	}
	return out
}

func TestRunFullSetup(t *testing.T) {
	f := newFixture(t)
	cfg := config.Default()

	report, err := f.orch.Run(context.Background(), cfg, RunAll)
	require.NoError(t, err)

	assert.Equal(t, "quick-term", report.Theme)
	assert.Equal(t, "MesloLGM Nerd Font", report.Font)
	assert.False(t, report.Failed(), "%+v", report.Steps)

	assert.Equal(t, []types.StatusState{
		types.StatusStateSuccess, types.StatusStateSuccess, types.StatusStateSuccess, types.StatusStateSuccess,
	}, statuses(report.PhaseSteps(PhaseInstall)))
	assert.Contains(t, f.runner.Commands, "/opt/homebrew/bin/oh-my-posh font install Meslo")

	assert.JSONEq(t,
		`{"terminal.integrated.fontFamily":"MesloLGM Nerd Font","terminal.integrated.fontSize":14}`,
		f.read(t, editorSettings))

	profile := f.read(t, profilePath)
	assert.Contains(t, profile, "'quick-term.omp.json'")
	assert.Contains(t, profile, "& '/opt/homebrew/bin/oh-my-posh' init pwsh")
	assert.Contains(t, profile, "# Styling")

	verify := report.PhaseSteps(PhaseVerify)
	require.NotEmpty(t, verify)
	for _, s := range verify {
		assert.Equal(t, types.StatusStateSuccess, s.Status, s.Name)
	}
	assert.Equal(t, "/opt/homebrew/bin/fzf", report.Locations["fzf"])
}

func TestRunSkipsPresentTools(t *testing.T) {
	f := newFixture(t)
	f.installed["oh-my-posh"] = "/usr/bin/oh-my-posh"
	f.installed["fzf"] = "/usr/bin/fzf"
	cfg := config.Default()
	cfg.Variant.FontInstall = config.FontInstallSkip

	report, err := f.orch.Run(context.Background(), cfg, RunAll)
	require.NoError(t, err)

	install := report.PhaseSteps(PhaseInstall)
	assert.Equal(t, types.StatusStateSkipped, install[0].Status)
	assert.Equal(t, types.StatusStateSkipped, install[1].Status)
	assert.Equal(t, types.StatusStateSkipped, install[3].Status)
	for _, cmd := range f.runner.Commands {
		assert.NotContains(t, cmd, "brew install")
	}
}

func TestRunElevationDeclined(t *testing.T) {
	f := newFixture(t)
	f.orch.IsElevated = func() bool { return true }
	f.prompter.Answer = false

	report, err := f.orch.Run(context.Background(), config.Default(), RunAll)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrElevationDeclined))
	assert.True(t, report.Aborted)
	assert.Empty(t, report.Steps)
	assert.Empty(t, f.runner.Commands)
}

func TestRunElevationAllowed(t *testing.T) {
	f := newFixture(t)
	f.orch.IsElevated = func() bool { return true }
	cfg := config.Default()
	cfg.AllowElevated = true

	_, err := f.orch.Run(context.Background(), cfg, RunSettings)
	require.NoError(t, err)
	assert.Empty(t, f.prompter.Questions)

	f.prompter.Answer = true
	cfg.AllowElevated = false
	_, err = f.orch.Run(context.Background(), cfg, RunSettings)
	require.NoError(t, err)
	assert.Len(t, f.prompter.Questions, 1)
}

func TestRunAbortsOnRequiredFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.Fail["brew install jandedobbeleer/oh-my-posh/oh-my-posh"] = true
	cfg := config.Default()
	cfg.AbortOnFailure = true

	report, err := f.orch.Run(context.Background(), cfg, RunAll)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRunAborted))
	assert.True(t, report.Aborted)
	assert.Len(t, report.Steps, 1)

	_, statErr := f.fs.Stat(profilePath)
	assert.Error(t, statErr)
}

func TestRunContinuesAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.Fail["brew install jandedobbeleer/oh-my-posh/oh-my-posh"] = true
	cfg := config.Default()
	cfg.Variant.FontInstall = config.FontInstallSkip

	report, err := f.orch.Run(context.Background(), cfg, RunAll)
	require.NoError(t, err)
	assert.True(t, report.Failed())
	assert.Equal(t, types.StatusStateError, report.PhaseSteps(PhaseInstall)[0].Status)

	assert.Contains(t, f.read(t, profilePath), "& 'oh-my-posh' init pwsh")
	assert.NotEmpty(t, report.Warnings)
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	f := newFixture(t)
	cfg := config.Default()
	cfg.DryRun = true

	report, err := f.orch.Run(context.Background(), cfg, RunAll)
	require.NoError(t, err)
	assert.True(t, report.DryRun)

	for _, s := range report.Steps {
		assert.Equal(t, types.StatusStateDryRun, s.Status, s.Name)
	}
	assert.Empty(t, report.PhaseSteps(PhaseVerify))
	assert.Empty(t, f.runner.Commands)

	_, err = f.fs.Stat(editorSettings)
	assert.Error(t, err)
	_, err = f.fs.Stat(profilePath)
	assert.Error(t, err)

	assert.Contains(t, f.diff.String(), "+  \"terminal.integrated.fontFamily\": \"MesloLGM Nerd Font\",")
	assert.Contains(t, f.diff.String(), "quick-term.omp.json")
}

func TestRunThemeFromEnvironment(t *testing.T) {
	f := newFixture(t)
	f.env["POSH_THEME"] = `C:\Users\ann\AppData\Local\Programs\oh-my-posh\themes\atomic.omp.json`

	report, err := f.orch.Run(context.Background(), config.Default(), RunProfile)
	require.NoError(t, err)

	assert.Equal(t, "atomic", report.Theme)
	assert.Equal(t, "env-path", report.ThemeSource)
	assert.Contains(t, f.read(t, profilePath), "'atomic.omp.json'")
}

func TestRunUnknownThemeWarns(t *testing.T) {
	f := newFixture(t)
	cfg := config.Default()
	cfg.Theme = "no-such-theme"

	report, err := f.orch.Run(context.Background(), cfg, RunProfile)
	require.NoError(t, err)
	assert.Equal(t, "quick-term", report.Theme)
	assert.Len(t, report.Warnings, 1)
}

func TestRunSettingsOnly(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, filesystem.EnsureParentDir(f.fs, editorSettings))
	require.NoError(t, f.fs.WriteFile(editorSettings, []byte(`{"editor.tabSize": 2}`), 0644))

	cfg := config.Default()
	cfg.Variant.EditorFont = true

	report, err := f.orch.Run(context.Background(), cfg, RunSettings)
	require.NoError(t, err)
	assert.Empty(t, f.runner.Commands)
	assert.Empty(t, report.PhaseSteps(PhaseInstall))

	steps := report.PhaseSteps(PhaseSettings)
	require.Len(t, steps, 1)
	assert.Equal(t, filesystem.BackupPath(editorSettings, f.orch.Now()), steps[0].BackupPath)

	doc, err := jsontree.Parse([]byte(f.read(t, editorSettings)))
	require.NoError(t, err)
	assert.True(t, doc.Contains(jsontree.Key("editor.tabSize", 2)))
	assert.True(t, doc.Contains(jsontree.Key("editor.fontLigatures", true)))
}

func TestRunMalformedSettingsWarns(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, filesystem.EnsureParentDir(f.fs, editorSettings))
	require.NoError(t, f.fs.WriteFile(editorSettings, []byte(`{{{`), 0644))

	report, err := f.orch.Run(context.Background(), config.Default(), RunSettings)
	require.NoError(t, err)
	assert.Len(t, report.Warnings, 1)
	assert.Equal(t, types.StatusStateSuccess, report.PhaseSteps(PhaseSettings)[0].Status)
}

func TestRunCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.orch.Run(ctx, config.Default(), RunAll)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRunAborted))
}

func TestPhasesHas(t *testing.T) {
	assert.True(t, RunAll.Has(RunSettings))
	assert.True(t, RunAll.Has(RunInstall|RunProfile))
	assert.False(t, RunSettings.Has(RunProfile))
}
