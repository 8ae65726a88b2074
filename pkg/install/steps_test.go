package install

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fzfInstall = []string{"brew", "install", "fzf"}

func TestPackageStepSkipsWhenPresent(t *testing.T) {
	runner := newFakeRunner()
	env := newEnv(runner, fakeLocations("linux", map[string]string{"fzf": "/usr/bin/fzf"}))

	out := NewFuzzyFinder("fzf", fzfInstall).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateSkipped, out.Status)
	assert.Contains(t, out.Detail, "/usr/bin/fzf")
	assert.True(t, out.OK())
	assert.True(t, errors.IsErrorCode(out.Err, errors.ErrToolPresent))
	assert.Empty(t, runner.calls)
}

func TestPackageStepInstallsAndRecords(t *testing.T) {
	installed := map[string]string{}
	runner := newFakeRunner()
	runner.onRun = func(call) { installed["fzf"] = "/opt/homebrew/bin/fzf" }
	env := newEnv(runner, fakeLocations("darwin", installed))

	out := NewFuzzyFinder("fzf", fzfInstall).Run(context.Background(), env)
	require.Equal(t, types.StatusStateSuccess, out.Status)
	assert.Equal(t, []string{"brew install fzf"}, runner.commands())

	path, ok := env.Locations.Recorded("fzf")
	assert.True(t, ok)
	assert.Equal(t, "/opt/homebrew/bin/fzf", path)
}

func TestPackageStepForceReinstalls(t *testing.T) {
	runner := newFakeRunner()
	env := newEnv(runner, fakeLocations("linux", map[string]string{"fzf": "/usr/bin/fzf"}))
	env.Force = true

	out := NewFuzzyFinder("fzf", fzfInstall).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateSuccess, out.Status)
	assert.Len(t, runner.calls, 1)
}

func TestPackageStepFailure(t *testing.T) {
	runner := newFakeRunner()
	runner.errors["brew install fzf"] = stderrors.New("exit status 1")
	env := newEnv(runner, fakeLocations("linux", nil))

	out := NewFuzzyFinder("fzf", fzfInstall).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateError, out.Status)
	assert.False(t, out.OK())
	assert.True(t, errors.IsErrorCode(out.Err, errors.ErrInstallFailed))
}

func TestPackageStepDryRun(t *testing.T) {
	runner := newFakeRunner()
	env := newEnv(runner, fakeLocations("linux", nil))
	env.DryRun = true

	out := NewPromptRenderer("oh-my-posh", []string{"brew", "install", "oh-my-posh"}).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateDryRun, out.Status)
	assert.Contains(t, out.Detail, "brew install oh-my-posh")
	assert.Empty(t, runner.calls)
}

func TestPackageStepNoCommand(t *testing.T) {
	env := newEnv(newFakeRunner(), fakeLocations("linux", nil))
	out := NewPromptRenderer("oh-my-posh", nil).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateError, out.Status)
}

func TestRequiredFlags(t *testing.T) {
	assert.True(t, NewPromptRenderer("oh-my-posh", nil).Required())
	assert.False(t, NewFuzzyFinder("fzf", nil).Required())
	assert.False(t, NewShellModule("pwsh", "PSFzf").Required())
	assert.False(t, (&FontStep{}).Required())
}

func TestShellModule(t *testing.T) {
	check := "/usr/bin/pwsh -NoProfile -NonInteractive -Command if (Get-Module -ListAvailable -Name 'PSFzf') { 'present' }"
	install := "/usr/bin/pwsh -NoProfile -NonInteractive -Command Install-Module -Name 'PSFzf' -Scope CurrentUser -Force"

	t.Run("present", func(t *testing.T) {
		runner := newFakeRunner()
		runner.outputs[check] = "present\n"
		env := newEnv(runner, fakeLocations("linux", map[string]string{"pwsh": "/usr/bin/pwsh"}))

		out := NewShellModule("pwsh", "PSFzf").Run(context.Background(), env)
		assert.Equal(t, types.StatusStateSkipped, out.Status)
		assert.Equal(t, []string{check}, runner.commands())
	})

	t.Run("missing", func(t *testing.T) {
		runner := newFakeRunner()
		env := newEnv(runner, fakeLocations("linux", map[string]string{"pwsh": "/usr/bin/pwsh"}))

		out := NewShellModule("pwsh", "PSFzf").Run(context.Background(), env)
		assert.Equal(t, types.StatusStateSuccess, out.Status)
		assert.Equal(t, []string{check, install}, runner.commands())
	})

	t.Run("no shell", func(t *testing.T) {
		env := newEnv(newFakeRunner(), fakeLocations("linux", nil))

		out := NewShellModule("pwsh", "PSFzf").Run(context.Background(), env)
		assert.True(t, errors.IsErrorCode(out.Err, errors.ErrToolNotFound))
	})
}

func fontStep(mode string) *FontStep {
	return &FontStep{
		Mode:           mode,
		Family:         "MesloLGM Nerd Font",
		Package:        "Meslo",
		FilePattern:    "MesloLGM*Nerd*",
		Dirs:           []string{"/fonts/user", "/fonts/system"},
		PromptRenderer: "oh-my-posh",
	}
}

func TestFontSkipMode(t *testing.T) {
	runner := newFakeRunner()
	out := fontStep(config.FontInstallSkip).Run(context.Background(), newEnv(runner, fakeLocations("linux", nil)))
	assert.Equal(t, types.StatusStateSkipped, out.Status)
	assert.Equal(t, "MesloLGM Nerd Font", out.Value)
	assert.Empty(t, runner.calls)
}

func TestFontAlreadyInstalled(t *testing.T) {
	runner := newFakeRunner()
	env := newEnv(runner, fakeLocations("linux", nil))
	file := filepath.Join("/fonts/system", "Meslo", "MesloLGMNerdFont-Regular.ttf")
	require.NoError(t, env.FS.MkdirAll(filepath.Dir(file), 0755))
	require.NoError(t, env.FS.WriteFile(file, []byte("ttf"), 0644))

	out := fontStep(config.FontInstallAuto).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateSkipped, out.Status)
	assert.Contains(t, out.Detail, "MesloLGMNerdFont-Regular.ttf")
	assert.Empty(t, runner.calls)
}

func TestFontAutoInstall(t *testing.T) {
	runner := newFakeRunner()
	env := newEnv(runner, fakeLocations("linux", map[string]string{"oh-my-posh": "/bin/oh-my-posh"}))

	out := fontStep(config.FontInstallAuto).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateSuccess, out.Status)
	assert.Equal(t, "MesloLGM Nerd Font", out.Value)
	assert.Equal(t, []string{"/bin/oh-my-posh font install Meslo"}, runner.commands())
}

func TestFontAutoWithoutRenderer(t *testing.T) {
	out := fontStep(config.FontInstallAuto).Run(context.Background(), newEnv(newFakeRunner(), fakeLocations("linux", nil)))
	assert.Equal(t, types.StatusStateError, out.Status)
	assert.Empty(t, out.Value)
}

func TestFontManualWaitsForUser(t *testing.T) {
	runner := newFakeRunner()
	env := newEnv(runner, fakeLocations("windows", nil))
	env.GOOS = "windows"
	runner.errors["explorer /fonts/user"] = stderrors.New("exit status 1")

	prompter := &fakePrompter{}
	prompter.onWait = func() {
		_ = env.FS.MkdirAll("/fonts/user", 0755)
		_ = env.FS.WriteFile("/fonts/user/MesloLGM Nerd Font Regular.ttf", []byte("ttf"), 0644)
	}
	env.Prompter = prompter

	out := fontStep(config.FontInstallManual).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateSuccess, out.Status)
	assert.Equal(t, "installed MesloLGM Nerd Font", out.Detail)
	assert.Equal(t, []string{"explorer /fonts/user"}, runner.commands())
	assert.Len(t, prompter.waited, 1)
}

func TestFontManualClosedInput(t *testing.T) {
	env := newEnv(newFakeRunner(), fakeLocations("linux", nil))
	env.Prompter = &fakePrompter{waitErr: errors.New(errors.ErrInputClosed, "closed")}

	out := fontStep(config.FontInstallManual).Run(context.Background(), env)
	assert.Equal(t, types.StatusStateError, out.Status)
	assert.True(t, errors.IsErrorCode(out.Err, errors.ErrInputClosed))
}
