package profile

// Message constants
const (
	MsgShort = "Write the PowerShell profile for the selected theme"
	MsgLong  = `Render the PowerShell profile from the configured theme, font and
variant and write it to the profile path.

The profile is replaced, not merged. Anything you added to it by hand is
lost from the profile itself and only survives in the timestamped backup
written next to it (profile.ps1.backup.YYYYMMDD-HHMMSS).`

	MsgExample = `  # Regenerate the profile
  themeup profile

  # Show how the profile would change
  themeup profile --dry-run`

	MsgFlagDryRun = "Show the diff without writing"
)
