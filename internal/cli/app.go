// Package cli holds the state shared by the themeup commands: global flag
// values, config loading, renderer selection and the wiring of the setup
// orchestrator to the real host.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/install"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/paths"
	"github.com/arthur-debert/themeup/pkg/privilege"
	"github.com/arthur-debert/themeup/pkg/setup"
	"github.com/arthur-debert/themeup/pkg/style"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/arthur-debert/themeup/pkg/ui"
	"github.com/arthur-debert/themeup/pkg/ui/confirmations"
)

// App carries global options and host collaborators. Nil collaborators are
// replaced with the real system when a run starts.
type App struct {
	Verbosity  int
	Format     string
	ConfigFile string

	Stdout io.Writer
	Stderr io.Writer

	FS         types.FS
	Paths      *paths.Resolver
	Runner     install.Runner
	Prompter   types.Prompter
	IsElevated func() bool
	Getenv     func(string) string
}

// NewApp creates an App bound to the process streams
func NewApp() *App {
	return &App{Stdout: os.Stdout, Stderr: os.Stderr}
}

// LoadConfig builds the effective config with flag overrides on top
func (a *App) LoadConfig(overrides map[string]interface{}) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		ConfigFile: a.ConfigFile,
		Overrides:  overrides,
	})
}

// OutputFormat resolves --format. Auto detection only applies when stdout is
// a file; any other writer gets plain text.
func (a *App) OutputFormat() (ui.Format, error) {
	format, err := ui.ParseFormat(a.Format)
	if err != nil {
		return format, err
	}
	if file, ok := a.Stdout.(*os.File); ok {
		return format.Resolve(file), nil
	}
	if format == ui.FormatAuto {
		return ui.FormatText, nil
	}
	return format, nil
}

// Render writes a result to stdout in the selected format
func (a *App) Render(result interface{}) error {
	format, err := a.OutputFormat()
	if err != nil {
		return err
	}
	return a.renderAs(format, result)
}

// Message writes a one-line notice to stdout in the selected format
func (a *App) Message(msg string) error {
	format, err := a.OutputFormat()
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, a.Stdout)
	if err != nil {
		return err
	}
	return renderer.RenderMessage(msg)
}

func (a *App) renderAs(format ui.Format, result interface{}) error {
	renderer, err := ui.NewRenderer(format, a.Stdout)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// Setup runs the selected phases and renders the report. The report is
// rendered even when the run is aborted; the abort error is returned after.
func (a *App) Setup(ctx context.Context, cfg *config.Config, phases setup.Phases) (*setup.Report, error) {
	logger := logging.GetLogger("cli")

	format, err := a.OutputFormat()
	if err != nil {
		return nil, err
	}
	orchestrator, err := a.orchestrator(format)
	if err != nil {
		return nil, err
	}

	report, runErr := orchestrator.Run(ctx, cfg, phases)
	if report != nil {
		if err := a.renderAs(format, report); err != nil {
			logger.Error().Err(err).Msg("Failed to render report")
			if runErr == nil {
				runErr = err
			}
		}
	}
	return report, runErr
}

func (a *App) orchestrator(format ui.Format) (*setup.Orchestrator, error) {
	resolver := a.Paths
	if resolver == nil {
		var err error
		if resolver, err = paths.New(); err != nil {
			return nil, err
		}
	}

	// Structured output owns stdout, so everything else goes to stderr
	chatter := a.Stdout
	if format.Structured() {
		chatter = a.Stderr
	}

	o := &setup.Orchestrator{
		FS:         a.FS,
		Paths:      resolver,
		Runner:     a.Runner,
		Prompter:   a.Prompter,
		IsElevated: a.IsElevated,
		Getenv:     a.Getenv,
		DiffOut:    chatter,
	}
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Runner == nil {
		runner := install.NewExecRunner()
		runner.Stdout = chatter
		runner.Stderr = a.Stderr
		o.Runner = runner
	}
	if o.Prompter == nil {
		o.Prompter = confirmations.NewConsoleDialog()
	}
	if o.IsElevated == nil {
		o.IsElevated = privilege.IsElevated
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if format == ui.FormatTerminal {
		o.Progress = style.NewProgress(a.Stdout)
	}
	return o, nil
}
