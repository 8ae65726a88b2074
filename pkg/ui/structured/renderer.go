// Package structured renders results as JSON or YAML documents for scripts.
// Results are encoded as they are; errors and messages get a small wrapper.
package structured

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/themeup/pkg/ui/display"
	"gopkg.in/yaml.v3"
)

// Renderer encodes one document per call
type Renderer struct {
	encode func(v interface{}) error
}

// NewJSON returns a renderer writing indented JSON
func NewJSON(output io.Writer) *Renderer {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return &Renderer{encode: enc.Encode}
}

// NewYAML returns a renderer writing one YAML stream per call
func NewYAML(output io.Writer) *Renderer {
	return &Renderer{encode: func(v interface{}) error {
		enc := yaml.NewEncoder(output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}}
}

// RenderResult encodes result
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError encodes err as {error, code, details}
func (r *Renderer) RenderError(err error) error {
	return r.encode(display.NewErrorResult(err))
}

// RenderMessage encodes msg as {message}
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
