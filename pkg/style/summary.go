package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/themeup/pkg/setup"
	"github.com/arthur-debert/themeup/pkg/types"
)

// RenderSummary renders the end-of-run box
func RenderSummary(report *setup.Report) string {
	var b strings.Builder

	title := "themeup"
	switch {
	case report.Aborted:
		title += " " + ErrorStyle.Render("aborted")
	case report.DryRun:
		title += " " + InfoStyle.Render("dry run")
	case report.Failed():
		title += " " + WarningStyle.Render("finished with failures")
	default:
		title += " " + SuccessStyle.Render("done")
	}
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	if report.Theme != "" {
		fmt.Fprintf(&b, "%-8s %s %s\n", "theme", Bold(report.Theme), MutedStyle.Render("("+report.ThemeSource+")"))
	}
	if report.Font != "" {
		fmt.Fprintf(&b, "%-8s %s\n", "font", report.Font)
	}

	counts := []string{}
	for _, state := range []types.StatusState{
		types.StatusStateSuccess, types.StatusStateSkipped, types.StatusStateDryRun, types.StatusStateError,
	} {
		if n := report.Count(state); n > 0 {
			counts = append(counts, StatusStyle(state).Render(fmt.Sprintf("%d %s", n, state)))
		}
	}
	if len(counts) > 0 {
		fmt.Fprintf(&b, "%-8s %s\n", "steps", strings.Join(counts, ", "))
	}

	var backups []string
	for _, s := range report.Steps {
		if s.BackupPath != "" {
			backups = append(backups, s.BackupPath)
		}
	}
	if len(backups) > 0 {
		fmt.Fprintf(&b, "%-8s %s\n", "backups", PathStyle.Render(backups[0]))
		for _, p := range backups[1:] {
			fmt.Fprintf(&b, "%-8s %s\n", "", PathStyle.Render(p))
		}
	}

	if n := len(report.Warnings); n > 0 {
		fmt.Fprintf(&b, "%-8s %s\n", "warnings", WarningStyle.Render(fmt.Sprintf("%d", n)))
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
