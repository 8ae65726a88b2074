// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/themeup/pkg/setup"
	"github.com/arthur-debert/themeup/pkg/style"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/arthur-debert/themeup/pkg/ui/display"
)

// Renderer provides rich terminal output. Run reports are assumed to have
// been streamed through style.Progress, so only the summary box is drawn.
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *setup.Report:
		_, err := fmt.Fprintf(r.output, "\n%s\n", style.RenderSummary(v))
		return err
	case *display.ThemeList:
		return display.WriteThemeList(r.output, v, decorator{})
	case *display.Text:
		if v.Title != "" {
			if _, err := fmt.Fprintln(r.output, style.TitleStyle.Render(v.Title)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(r.output, v.Content)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.ErrorStyle.Render("Error:")+" "+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}

type decorator struct{}

func (decorator) Heading(s string) string {
	return style.TitleStyle.Render(s)
}

func (decorator) Status(state types.StatusState, s string) string {
	return style.StatusStyle(state).Render(s)
}

func (decorator) Muted(s string) string {
	return style.MutedStyle.Render(s)
}
