package config

import (
	"strings"
)

// GenerateConfigContent returns the embedded defaults as a starter user
// file: comments and table headers stay, every assignment is commented out
// so the file changes nothing until a value is uncommented.
func GenerateConfigContent() string {
	lines := strings.Split(string(defaultConfig), "\n")
	for i, line := range lines {
		if isAssignment(line) {
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}

// isAssignment reports whether a defaults line carries a value. Headers
// like [tools.prompt_renderer.install] and comments are kept live.
func isAssignment(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "", strings.HasPrefix(trimmed, "#"):
		return false
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && !strings.Contains(trimmed, "="):
		return false
	}
	return true
}
