package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/themeup/pkg/setup"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/pterm/pterm"
)

var phaseBadges = map[string]*pterm.Style{
	setup.PhaseInstall:  pterm.NewStyle(pterm.BgGreen, pterm.FgBlack, pterm.Bold),
	setup.PhaseSettings: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold),
	setup.PhaseProfile:  pterm.NewStyle(pterm.BgMagenta, pterm.FgBlack, pterm.Bold),
	setup.PhaseVerify:   pterm.NewStyle(pterm.BgYellow, pterm.FgBlack, pterm.Bold),
}

// Progress prints run events as they happen. It implements setup.Progress.
type Progress struct {
	out io.Writer
}

// NewProgress creates a progress printer writing to out
func NewProgress(out io.Writer) *Progress {
	return &Progress{out: out}
}

// Phase prints a phase header
func (p *Progress) Phase(name string) {
	badge, ok := phaseBadges[name]
	if !ok {
		badge = pterm.NewStyle(pterm.Bold)
	}
	_, _ = fmt.Fprintf(p.out, "\n%s\n", badge.Sprint(" "+strings.ToUpper(name)+" "))
}

// Step prints one step outcome
func (p *Progress) Step(result setup.StepResult) {
	label := fmt.Sprintf("%-15s", result.Name)
	detail := result.Detail
	if result.Path != "" {
		detail = strings.TrimSpace(detail + " " + pterm.NewStyle(pterm.FgGray).Sprint(result.Path))
	}

	var line string
	switch result.Status {
	case types.StatusStateSuccess:
		line = pterm.Success.Sprint(label + detail)
	case types.StatusStateError:
		line = pterm.Error.Sprint(label + detail)
	case types.StatusStateDryRun:
		line = pterm.Info.Sprint(label + detail)
	default:
		line = pterm.Description.Sprint(label + detail)
	}
	_, _ = fmt.Fprintln(p.out, line)
}

// Warn prints a warning
func (p *Progress) Warn(message string) {
	_, _ = fmt.Fprintln(p.out, pterm.Warning.Sprint(message))
}

var _ setup.Progress = (*Progress)(nil)
