package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/themeup/pkg/errors"
)

// Environment variable names
const (
	EnvThemesPath   = "POSH_THEMES_PATH"
	EnvUserProfile  = "USERPROFILE"
	EnvAppData      = "APPDATA"
	EnvLocalAppData = "LOCALAPPDATA"
	EnvWinDir       = "WINDIR"
	EnvConfigHome   = "XDG_CONFIG_HOME"
	EnvDataHome     = "XDG_DATA_HOME"
)

// Well-known names
const (
	ProfileFileName        = "Microsoft.PowerShell_profile.ps1"
	TerminalPackage        = "Microsoft.WindowsTerminal_8wekyb3d8bbwe"
	TerminalPreviewPackage = "Microsoft.WindowsTerminalPreview_8wekyb3d8bbwe"
	SettingsFileName       = "settings.json"
)

// editorProducts are checked in order; the first is always included, the
// others only when their user directory already exists.
var editorProducts = []string{"Code", "Code - Insiders", "Cursor", "VSCodium"}

// Resolver computes default locations for one platform
type Resolver struct {
	goos     string
	home     string
	getenv   func(string) string
	exists   func(string) bool
	fontDirs []string
}

// New returns a resolver for the running host
func New() (*Resolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
	}
	r := NewFor(runtime.GOOS, home, os.Getenv, dirExists)
	r.fontDirs = xdg.FontDirs
	return r, nil
}

// NewFor returns a resolver for an explicit platform, home and environment
func NewFor(goos, home string, getenv func(string) string, exists func(string) bool) *Resolver {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	if exists == nil {
		exists = func(string) bool { return false }
	}
	return &Resolver{goos: goos, home: home, getenv: getenv, exists: exists}
}

// GOOS returns the platform the resolver was built for
func (r *Resolver) GOOS() string {
	return r.goos
}

// Home returns the user's home directory
func (r *Resolver) Home() string {
	return r.home
}

// ExpandHome replaces a leading ~ with the home directory
func (r *Resolver) ExpandHome(path string) string {
	if path == "~" {
		return r.home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(r.home, path[2:])
	}
	return path
}

// ProfilePath returns the PowerShell profile for the given shell executable
// name ("pwsh" or "powershell").
func (r *Resolver) ProfilePath(shell string) string {
	if r.goos == "windows" {
		docs := filepath.Join(r.userProfile(), "Documents")
		if shell == "powershell" {
			return filepath.Join(docs, "WindowsPowerShell", ProfileFileName)
		}
		return filepath.Join(docs, "PowerShell", ProfileFileName)
	}
	return filepath.Join(r.configHome(), "powershell", ProfileFileName)
}

// TerminalSettings returns Windows Terminal settings files. Only Windows has
// a default; the preview build is included when it is installed.
func (r *Resolver) TerminalSettings() []string {
	if r.goos != "windows" {
		return nil
	}
	packages := filepath.Join(r.localAppData(), "Packages")
	result := []string{filepath.Join(packages, TerminalPackage, "LocalState", SettingsFileName)}

	preview := filepath.Join(packages, TerminalPreviewPackage, "LocalState")
	if r.exists(preview) {
		result = append(result, filepath.Join(preview, SettingsFileName))
	}
	return result
}

// EditorSettings returns user settings files of VS Code and its forks
func (r *Resolver) EditorSettings() []string {
	var base string
	switch r.goos {
	case "windows":
		base = r.appData()
	case "darwin":
		base = filepath.Join(r.home, "Library", "Application Support")
	default:
		base = r.configHome()
	}

	var result []string
	for i, product := range editorProducts {
		dir := filepath.Join(base, product)
		if i == 0 || r.exists(dir) {
			result = append(result, filepath.Join(dir, "User", SettingsFileName))
		}
	}
	return result
}

// ThemesDir returns the prompt renderer themes directory, or "" when the
// profile should rely on POSH_THEMES_PATH at shell start-up
func (r *Resolver) ThemesDir() string {
	if dir := r.getenv(EnvThemesPath); dir != "" {
		return dir
	}
	if r.goos == "windows" {
		return filepath.Join(r.localAppData(), "Programs", "oh-my-posh", "themes")
	}
	return ""
}

// ToolDirs returns per-user install directories that package managers use
// but that may not be on PATH for the current process yet
func (r *Resolver) ToolDirs() []string {
	switch r.goos {
	case "windows":
		return []string{
			filepath.Join(r.localAppData(), "Programs", "oh-my-posh", "bin"),
			filepath.Join(r.localAppData(), "Microsoft", "WinGet", "Links"),
			filepath.Join(r.userProfile(), "scoop", "shims"),
		}
	case "darwin":
		return []string{
			"/opt/homebrew/bin",
			"/usr/local/bin",
			filepath.Join(r.home, ".local", "bin"),
		}
	default:
		return []string{
			"/home/linuxbrew/.linuxbrew/bin",
			filepath.Join(r.home, ".linuxbrew", "bin"),
			filepath.Join(r.home, ".local", "bin"),
			"/usr/local/bin",
		}
	}
}

// FontDirs returns directories searched for installed fonts
func (r *Resolver) FontDirs() []string {
	if len(r.fontDirs) > 0 {
		return r.fontDirs
	}
	switch r.goos {
	case "windows":
		dirs := []string{filepath.Join(r.localAppData(), "Microsoft", "Windows", "Fonts")}
		if windir := r.getenv(EnvWinDir); windir != "" {
			dirs = append(dirs, filepath.Join(windir, "Fonts"))
		}
		return dirs
	case "darwin":
		return []string{filepath.Join(r.home, "Library", "Fonts"), "/Library/Fonts"}
	default:
		return []string{
			filepath.Join(r.dataHome(), "fonts"),
			filepath.Join(r.home, ".fonts"),
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
	}
}

func (r *Resolver) userProfile() string {
	return r.envOr(EnvUserProfile, r.home)
}

func (r *Resolver) appData() string {
	return r.envOr(EnvAppData, filepath.Join(r.userProfile(), "AppData", "Roaming"))
}

func (r *Resolver) localAppData() string {
	return r.envOr(EnvLocalAppData, filepath.Join(r.userProfile(), "AppData", "Local"))
}

func (r *Resolver) configHome() string {
	return r.envOr(EnvConfigHome, filepath.Join(r.home, ".config"))
}

func (r *Resolver) dataHome() string {
	return r.envOr(EnvDataHome, filepath.Join(r.home, ".local", "share"))
}

func (r *Resolver) envOr(name, fallback string) string {
	if v := r.getenv(name); v != "" {
		return v
	}
	return fallback
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
