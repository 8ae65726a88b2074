// Package privilege reports whether the process runs with administrator or
// root rights. Installing per-user tools elevated puts them in the wrong
// profile, so the setup flow asks before continuing.
package privilege

import "github.com/arthur-debert/themeup/pkg/logging"

// IsElevated reports whether the current process is elevated
func IsElevated() bool {
	elevated := isElevated()
	logger := logging.GetLogger("privilege")
	logger.Debug().Bool("elevated", elevated).Msg("Checked process elevation")
	return elevated
}
