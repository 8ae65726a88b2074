package themeup

// Message constants
const (
	MsgRootShort = "Set up a themed PowerShell terminal"
	MsgRootLong  = `themeup installs oh-my-posh, fzf, PSFzf and a Nerd Font, merges the font
into Windows Terminal and editor settings, and writes a PowerShell profile
that loads the selected prompt theme.

Configuration is read from the built-in defaults, the user config file,
THEMEUP_* environment variables and flags, in that order.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(themeup completion bash)

Zsh:
  $ themeup completion zsh > "${fpath[1]}/_themeup"

Fish:
  $ themeup completion fish | source

PowerShell:
  PS> themeup completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, add the line above to your
  # profile, or save the output and dot-source it.
`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/themeup/config.toml)"

	MsgVersionFormat = "themeup version %s\n  commit: %s\n  built:  %s\n"
)
