// Package ui turns command results into output. Terminal output is styled
// for people, text output is plain, and JSON/YAML output is for scripts.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/ui/structured"
	"github.com/arthur-debert/themeup/pkg/ui/terminal"
	"github.com/arthur-debert/themeup/pkg/ui/text"
)

// Renderer is implemented by every output format
type Renderer interface {
	// RenderResult renders a *setup.Report, *display.ThemeList or *display.Text
	RenderResult(result interface{}) error

	RenderError(err error) error

	// RenderMessage renders a one-line notice
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format. FormatAuto is resolved
// against output when it is a file and falls back to terminal otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = FormatTerminal
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return structured.NewJSON(output), nil
	case FormatYAML:
		return structured.NewYAML(output), nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
}
