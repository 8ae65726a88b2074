package themes

// Message constants
const (
	MsgShort   = "List the available prompt themes"
	MsgLong    = "List every theme name accepted by --theme and POSH_THEME, marking the default."
	MsgExample = `  themeup themes
  themeup themes --format json`
)
