package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/themeup/pkg/setup"
	"github.com/arthur-debert/themeup/pkg/types"
)

// Decorator styles parts of a text layout; Plain leaves them unchanged
type Decorator interface {
	Heading(s string) string
	Status(state types.StatusState, s string) string
	Muted(s string) string
}

// Plain is the undecorated layout
type Plain struct{}

func (Plain) Heading(s string) string {
	return s
}

func (Plain) Status(_ types.StatusState, s string) string {
	return s
}

func (Plain) Muted(s string) string {
	return s
}

// WriteReport writes the step table of a report, grouped by phase
func WriteReport(w io.Writer, report *setup.Report, d Decorator) error {
	var b strings.Builder

	fmt.Fprintf(&b, "theme: %s (%s)\n", report.Theme, report.ThemeSource)
	if report.Font != "" {
		fmt.Fprintf(&b, "font:  %s\n", report.Font)
	}
	if report.DryRun {
		b.WriteString("dry run: no files were changed\n")
	}

	for _, phase := range []string{setup.PhaseInstall, setup.PhaseSettings, setup.PhaseProfile, setup.PhaseVerify} {
		steps := report.PhaseSteps(phase)
		if len(steps) == 0 {
			continue
		}
		b.WriteString("\n" + d.Heading(phase) + "\n")
		for _, s := range steps {
			line := fmt.Sprintf("  %s %-15s %s", s.Status.Symbol(), s.Name, s.Detail)
			b.WriteString(d.Status(s.Status, strings.TrimRight(line, " ")))
			if s.Path != "" {
				b.WriteString(" " + d.Muted(s.Path))
			}
			b.WriteString("\n")
			if s.BackupPath != "" {
				b.WriteString("    " + d.Muted("backup: "+s.BackupPath) + "\n")
			}
		}
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n" + d.Heading("warnings") + "\n")
		for _, warning := range report.Warnings {
			b.WriteString("  ! " + warning + "\n")
		}
	}

	if report.Aborted {
		b.WriteString("\nrun aborted\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteThemeList writes one theme per line, marking the default
func WriteThemeList(w io.Writer, list *ThemeList, d Decorator) error {
	var b strings.Builder
	for _, name := range list.Themes {
		if name == list.Default {
			fmt.Fprintf(&b, "%s %s\n", name, d.Muted("(default)"))
			continue
		}
		b.WriteString(name + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
