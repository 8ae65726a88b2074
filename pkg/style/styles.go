package style

import (
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Phase label styles
var phaseStyles = map[string]lipgloss.Style{
	"install":  lipgloss.NewStyle().Foreground(InstallColor).Bold(true),
	"settings": lipgloss.NewStyle().Foreground(SettingsColor).Bold(true),
	"profile":  lipgloss.NewStyle().Foreground(ProfileColor).Bold(true),
	"verify":   lipgloss.NewStyle().Foreground(VerifyColor).Bold(true),
}

// PhaseStyle returns the label style of a run phase
func PhaseStyle(phase string) lipgloss.Style {
	if s, ok := phaseStyles[phase]; ok {
		return s
	}
	return TitleStyle
}

// StatusStyle returns the style for a step status
func StatusStyle(state types.StatusState) lipgloss.Style {
	switch state {
	case types.StatusStateSuccess:
		return SuccessStyle
	case types.StatusStateError:
		return ErrorStyle
	case types.StatusStateDryRun:
		return InfoStyle
	default:
		return MutedStyle
	}
}

// Indicator renders the status symbol in its color
func Indicator(state types.StatusState) string {
	return StatusStyle(state).Render(state.Symbol())
}

// Indent pads s on the left by level steps
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
