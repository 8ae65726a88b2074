package config

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Font install modes
const (
	FontInstallAuto   = "auto"
	FontInstallManual = "manual"
	FontInstallSkip   = "skip"
)

// Profile styles
const (
	ProfileStyleVerbose = "verbose"
	ProfileStyleMinimal = "minimal"
)

// Config is the effective configuration for a run
type Config struct {
	Theme          string  `koanf:"theme" toml:"theme"`
	Force          bool    `koanf:"force" toml:"force"`
	DryRun         bool    `koanf:"dry_run" toml:"dry_run"`
	AbortOnFailure bool    `koanf:"abort_on_failure" toml:"abort_on_failure"`
	AllowElevated  bool    `koanf:"allow_elevated" toml:"allow_elevated"`
	Font           Font    `koanf:"font" toml:"font"`
	Variant        Variant `koanf:"variant" toml:"variant"`
	Paths          Paths   `koanf:"paths" toml:"paths"`
	Tools          Tools   `koanf:"tools" toml:"tools"`
}

// Font selects the font family and sizes written to settings
type Font struct {
	Family      string `koanf:"family" toml:"family"`
	Size        int    `koanf:"size" toml:"size"`
	EditorSize  int    `koanf:"editor_size" toml:"editor_size"`
	Package     string `koanf:"package" toml:"package"`
	FilePattern string `koanf:"file_pattern" toml:"file_pattern"`
}

// Variant holds the feature flags that distinguish setup flavours
type Variant struct {
	FontInstall          string `koanf:"font_install" toml:"font_install"`
	ProfileStyle         string `koanf:"profile_style" toml:"profile_style"`
	Styling              bool   `koanf:"styling" toml:"styling"`
	IntelliSense         bool   `koanf:"intellisense" toml:"intellisense"`
	TerminalIcons        bool   `koanf:"terminal_icons" toml:"terminal_icons"`
	Verify               bool   `koanf:"verify" toml:"verify"`
	TerminalExperimental bool   `koanf:"terminal_experimental" toml:"terminal_experimental"`
	EditorFont           bool   `koanf:"editor_font" toml:"editor_font"`
}

// Paths overrides the per-platform file locations
type Paths struct {
	Profile   string   `koanf:"profile" toml:"profile"`
	ThemesDir string   `koanf:"themes_dir" toml:"themes_dir"`
	Terminal  []string `koanf:"terminal" toml:"terminal"`
	Editors   []string `koanf:"editors" toml:"editors"`
}

// Tools configures the external tools and how to install them
type Tools struct {
	Shell          string `koanf:"shell" toml:"shell"`
	PromptRenderer Tool   `koanf:"prompt_renderer" toml:"prompt_renderer"`
	FuzzyFinder    Tool   `koanf:"fuzzy_finder" toml:"fuzzy_finder"`
	ShellModule    Tool   `koanf:"shell_module" toml:"shell_module"`
}

// Tool describes one external tool
type Tool struct {
	Binary  string              `koanf:"binary" toml:"binary,omitempty"`
	Module  string              `koanf:"module" toml:"module,omitempty"`
	Install map[string][]string `koanf:"install" toml:"install,omitempty"`
}

// InstallCommand returns the install argv for goos, falling back to "default"
func (t Tool) InstallCommand(goos string) []string {
	if cmd, ok := t.Install[goos]; ok && len(cmd) > 0 {
		return cmd
	}
	return t.Install["default"]
}

// InstallCommandForHost is InstallCommand for the running platform
func (t Tool) InstallCommandForHost() []string {
	return t.InstallCommand(runtime.GOOS)
}

// Verbose reports whether the profile should carry the optional blocks
func (v Variant) Verbose() bool {
	return v.ProfileStyle != ProfileStyleMinimal
}

// Validate checks values that cannot be expressed in the TOML schema
func (c *Config) Validate() error {
	switch c.Variant.FontInstall {
	case FontInstallAuto, FontInstallManual, FontInstallSkip:
	default:
		return errors.Newf(errors.ErrConfigValid,
			"variant.font_install must be one of auto, manual, skip (got %q)", c.Variant.FontInstall)
	}

	switch c.Variant.ProfileStyle {
	case ProfileStyleVerbose, ProfileStyleMinimal:
	default:
		return errors.Newf(errors.ErrConfigValid,
			"variant.profile_style must be verbose or minimal (got %q)", c.Variant.ProfileStyle)
	}

	if c.Font.Family == "" {
		return errors.New(errors.ErrConfigValid, "font.family must not be empty")
	}
	if strings.IndexFunc(c.Font.Family, unicode.IsControl) >= 0 {
		return errors.Newf(errors.ErrConfigValid,
			"font.family must not contain control characters (got %q)", c.Font.Family)
	}
	if c.Font.Size <= 0 {
		return errors.Newf(errors.ErrConfigValid, "font.size must be positive (got %d)", c.Font.Size)
	}
	if c.Font.EditorSize <= 0 {
		return errors.Newf(errors.ErrConfigValid, "font.editor_size must be positive (got %d)", c.Font.EditorSize)
	}

	for name, tool := range map[string]Tool{
		"tools.prompt_renderer": c.Tools.PromptRenderer,
		"tools.fuzzy_finder":    c.Tools.FuzzyFinder,
	} {
		if tool.Binary == "" {
			return errors.Newf(errors.ErrConfigValid, "%s.binary must not be empty", name)
		}
	}
	if c.Tools.ShellModule.Module == "" {
		return errors.New(errors.ErrConfigValid, "tools.shell_module.module must not be empty")
	}

	return nil
}

// TOML encodes the effective configuration
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}
	return string(data), nil
}
