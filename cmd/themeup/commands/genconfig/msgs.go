package genconfig

// Message constants
const (
	MsgShort = "Generate a default configuration file"
	MsgLong  = `Output the default configuration with every value commented out, ready to
be edited. With -w the file is written to the user config path
($XDG_CONFIG_HOME/themeup/config.toml, or --config when given).

With --effective the configuration themeup would actually use is printed
instead: defaults, then the config file, then THEMEUP_* variables.`

	MsgExample = `  themeup genconfig                # Output to stdout
  themeup genconfig -w             # Write to the user config path
  themeup genconfig --effective    # Show the merged configuration`

	MsgFlagWrite     = "Write config to the user config path instead of stdout"
	MsgFlagForce     = "Overwrite an existing config file"
	MsgFlagEffective = "Print the effective configuration"
	MsgWrote         = "Wrote %s"
)
