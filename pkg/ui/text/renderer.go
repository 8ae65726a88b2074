// Package text writes reports and lists without colors, for pipes, logs
// and NO_COLOR terminals.
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/themeup/pkg/setup"
	"github.com/arthur-debert/themeup/pkg/style"
	"github.com/arthur-debert/themeup/pkg/ui/display"
)

// Renderer writes plain text
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult lays out known result types with display.Plain; anything
// else is printed with %+v
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *setup.Report:
		return display.WriteReport(r.output, v, display.Plain{})
	case *display.ThemeList:
		return display.WriteThemeList(r.output, v, display.Plain{})
	case *display.Text:
		_, err := io.WriteString(r.output, v.Content)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage writes msg with any style markup removed
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Strip(msg))
	return err
}
