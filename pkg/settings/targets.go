package settings

import "github.com/arthur-debert/themeup/pkg/jsontree"

// Target is one settings document and the overrides it receives
type Target struct {
	Kind      string
	Path      string
	Overrides []jsontree.Override
}

// Target kinds
const (
	KindTerminal = "terminal"
	KindEditor   = "editor"
)

// TerminalOverrides returns the Windows Terminal font overrides. Terminal
// settings nest under profiles.defaults.
func TerminalOverrides(face string, size int, experimental bool) []jsontree.Override {
	overrides := []jsontree.Override{
		jsontree.At("profiles.defaults.font.face", face),
		jsontree.At("profiles.defaults.font.size", size),
	}
	if experimental {
		overrides = append(overrides,
			jsontree.At("profiles.defaults.experimental.detectURLs", true),
			jsontree.At("profiles.defaults.experimental.autoMarkPrompts", true),
		)
	}
	return overrides
}

// EditorOverrides returns the VS Code overrides. Editor settings use flat
// keys that contain dots.
func EditorOverrides(face string, size int, editorFont bool) []jsontree.Override {
	overrides := []jsontree.Override{
		jsontree.Key("terminal.integrated.fontFamily", face),
		jsontree.Key("terminal.integrated.fontSize", size),
	}
	if editorFont {
		overrides = append(overrides,
			jsontree.Key("editor.fontFamily", face),
			jsontree.Key("editor.fontLigatures", true),
		)
	}
	return overrides
}

// Targets builds the merge list for terminal and editor settings paths
func Targets(terminals, editors []string, face string, terminalSize, editorSize int, experimental, editorFont bool) []Target {
	var targets []Target
	for _, p := range terminals {
		targets = append(targets, Target{Kind: KindTerminal, Path: p, Overrides: TerminalOverrides(face, terminalSize, experimental)})
	}
	for _, p := range editors {
		targets = append(targets, Target{Kind: KindEditor, Path: p, Overrides: EditorOverrides(face, editorSize, editorFont)})
	}
	return targets
}
