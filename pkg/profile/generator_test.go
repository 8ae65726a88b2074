package profile

import (
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilePath = "/home/ann/.config/powershell/Microsoft.PowerShell_profile.ps1"

var fixedTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func newTestGenerator(t *testing.T, fsys types.FS, tooling Tooling) *Generator {
	t.Helper()
	g, err := NewGenerator(fsys, tooling)
	require.NoError(t, err)
	g.SetClock(func() time.Time { return fixedTime })
	return g
}

func TestRenderMinimal(t *testing.T) {
	g := newTestGenerator(t, filesystem.NewMemoryFS(), Tooling{})

	out, err := g.Render("atomic", "MesloLGM Nerd Font", Flags{})
	require.NoError(t, err)

	assert.Contains(t, out, "theme: atomic")
	assert.Contains(t, out, "font:  MesloLGM Nerd Font")
	assert.Contains(t, out, "$themeupThemes = $env:POSH_THEMES_PATH\n")
	assert.Contains(t, out, "Join-Path $themeupThemes 'atomic.omp.json'")
	assert.Contains(t, out, "& 'oh-my-posh' init pwsh --config $themeupConfig | Invoke-Expression")
	assert.Contains(t, out, "Import-Module PSFzf\n")
	assert.Contains(t, out, "-PSReadlineChordProvider 'Ctrl+t' -PSReadlineChordReverseHistory 'Ctrl+r'")
	assert.NotContains(t, out, "# Styling")
	assert.NotContains(t, out, "# IntelliSense")
	assert.NotContains(t, out, "Terminal-Icons")
	assert.True(t, strings.HasSuffix(out, "'Ctrl+r'\n"))
}

func TestRenderAllBlocks(t *testing.T) {
	g := newTestGenerator(t, filesystem.NewMemoryFS(), Tooling{
		PromptRenderer: `C:\Users\O'Neil\AppData\Local\Programs\oh-my-posh\bin\oh-my-posh.exe`,
		ThemesDir:      `C:\Users\O'Neil\AppData\Local\Programs\oh-my-posh\themes`,
	})

	out, err := g.Render("hotstick.minimal", "Fira Code", Flags{Styling: true, IntelliSense: true, TerminalIcons: true})
	require.NoError(t, err)

	assert.Contains(t, out, `$themeupThemes = 'C:\Users\O''Neil\AppData\Local\Programs\oh-my-posh\themes'`)
	assert.Contains(t, out, `& 'C:\Users\O''Neil\AppData\Local\Programs\oh-my-posh\bin\oh-my-posh.exe' init pwsh`)
	assert.Contains(t, out, "'hotstick.minimal.omp.json'")
	assert.Contains(t, out, "\n\n# Styling\nSet-PSReadLineOption -Colors @{")
	assert.Contains(t, out, "Set-PSReadLineOption -PredictionViewStyle ListView")
	assert.True(t, strings.HasSuffix(out, "Import-Module -Name Terminal-Icons\n"))
}

func TestGenerateCreatesParentDirs(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	g := newTestGenerator(t, fsys, Tooling{})

	backup, err := g.Generate(profilePath, "atomic", "Meslo", Flags{})
	require.NoError(t, err)
	assert.Empty(t, backup)

	data, err := fsys.ReadFile(profilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "atomic.omp.json")
}

func TestGenerateIsPureOverwrite(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, filesystem.EnsureParentDir(fsys, profilePath))
	previous := "Set-Alias ll Get-ChildItem\n# my precious edits\n"
	require.NoError(t, fsys.WriteFile(profilePath, []byte(previous), 0644))

	g := newTestGenerator(t, fsys, Tooling{})
	want, err := g.Render("atomic", "Meslo", Flags{Styling: true})
	require.NoError(t, err)

	backup, err := g.Generate(profilePath, "atomic", "Meslo", Flags{Styling: true})
	require.NoError(t, err)

	data, err := fsys.ReadFile(profilePath)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
	assert.NotContains(t, string(data), "my precious edits")

	assert.Equal(t, filesystem.BackupPath(profilePath, fixedTime), backup)
	saved, err := fsys.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, previous, string(saved))
}

func TestGenerateTwiceKeepsBothBackups(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, filesystem.EnsureParentDir(fsys, profilePath))
	require.NoError(t, fsys.WriteFile(profilePath, []byte("old"), 0644))
	g := newTestGenerator(t, fsys, Tooling{})

	first, err := g.Generate(profilePath, "atomic", "Meslo", Flags{})
	require.NoError(t, err)
	second, err := g.Generate(profilePath, "atomic", "Meslo", Flags{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	old, err := fsys.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
}

func TestGenerateSecondThemeReplacesFirst(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	g := newTestGenerator(t, fsys, Tooling{})

	_, err := g.Generate(profilePath, "atomic", "Meslo", Flags{Styling: true})
	require.NoError(t, err)
	backup, err := g.Generate(profilePath, "dracula", "Meslo", Flags{Styling: true})
	require.NoError(t, err)

	data, err := fsys.ReadFile(profilePath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "atomic")
	assert.Contains(t, string(data), "theme: dracula")
	assert.Contains(t, string(data), "'dracula.omp.json'")
	assert.Equal(t, 1, strings.Count(string(data), "init pwsh"))

	old, err := fsys.ReadFile(backup)
	require.NoError(t, err)
	assert.Contains(t, string(old), "'atomic.omp.json'")
}

func TestRenderRejectsLineBreakInFont(t *testing.T) {
	g := newTestGenerator(t, filesystem.NewMemoryFS(), Tooling{})

	_, err := g.Render("atomic", "Meslo\nRemove-Item -Recurse ~", Flags{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfileRender))
}

func TestGenerateRejectsLineBreakLeavesProfile(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, filesystem.EnsureParentDir(fsys, profilePath))
	require.NoError(t, fsys.WriteFile(profilePath, []byte("old"), 0644))
	g := newTestGenerator(t, fsys, Tooling{})

	_, err := g.Generate(profilePath, "atomic", "Meslo\r\nX", Flags{})
	require.Error(t, err)

	data, err := fsys.ReadFile(profilePath)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestGenerateBackupFailureLeavesProfile(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, profilePath, []byte("old"), 0644))
	g := newTestGenerator(t, filesystem.NewAferoFS(afero.NewReadOnlyFs(base)), Tooling{})

	_, err := g.Generate(profilePath, "atomic", "Meslo", Flags{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackupFailed))

	data, err := afero.ReadFile(base, profilePath)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestPSQuote(t *testing.T) {
	assert.Equal(t, "'plain'", psquote("plain"))
	assert.Equal(t, "'it''s'", psquote("it's"))
}
