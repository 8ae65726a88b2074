package settings

// Message constants
const (
	MsgShort = "Merge font settings into terminal and editor settings files"
	MsgLong  = `Merge the configured font face and size into every terminal and editor
settings file themeup knows about. Only the managed keys are written; all
other keys are kept. Each existing file is backed up before it is replaced.

Files that fail to parse are treated as empty and rewritten with only the
managed keys. The backup keeps the original content.`

	MsgExample = `  # Merge settings
  themeup settings

  # Show the diff for every file without writing
  themeup settings --dry-run`

	MsgFlagDryRun = "Show the diff without writing"
)
