package up

// Message constants
const (
	MsgShort = "Install tools, merge settings and write the PowerShell profile"
	MsgLong  = `The 'up' command runs the full setup:
  - Installs the prompt renderer, fuzzy finder and PSFzf module when missing
  - Installs or asks for the Nerd Font (see --font-mode)
  - Merges the font settings into terminal and editor settings files
  - Writes the PowerShell profile for the selected theme
  - Verifies the result unless --no-verify is given

Settings files are merged: keys themeup does not manage are kept. The
profile is not merged. It is replaced on every run, and earlier edits only
survive in the timestamped backup written next to it.

The theme comes from --theme, or from POSH_THEME when it points at a
known theme. Unknown names fall back to the default theme with a warning.`

	MsgExample = `  # Full setup with the default theme
  themeup up

  # Pick a theme and preview every change
  themeup up --theme atomic --dry-run

  # Reinstall tools and skip the font
  themeup up --force --font-mode skip

  # A lean profile without styling and IntelliSense blocks
  themeup up --minimal`

	MsgFlagTheme          = "Prompt theme name (see 'themeup themes')"
	MsgFlagForce          = "Reinstall tools that are already present"
	MsgFlagFont           = "Font family written to settings"
	MsgFlagFontSize       = "Terminal font size"
	MsgFlagFontMode       = "How to install the font: auto, manual or skip"
	MsgFlagMinimal        = "Write a minimal profile without styling and IntelliSense"
	MsgFlagNoVerify       = "Skip the verification pass"
	MsgFlagDryRun         = "Show what would change without touching anything"
	MsgFlagAbortOnFailure = "Stop at the first failed required install"
	MsgFlagAllowElevated  = "Run as administrator/root without asking"
)
