// Package display holds the result shapes commands hand to the renderers and
// the plain text layout shared by the text and terminal renderers.
package display

import (
	stderrors "errors"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/themes"
)

// ThemeList is the result of the themes command
type ThemeList struct {
	Default string   `json:"default" yaml:"default"`
	Themes  []string `json:"themes" yaml:"themes"`
}

// NewThemeList lists the catalog
func NewThemeList() *ThemeList {
	names := themes.Names()
	list := &ThemeList{Default: string(themes.DefaultTheme), Themes: make([]string, len(names))}
	for i, n := range names {
		list.Themes[i] = string(n)
	}
	return list
}

// Text is a block of preformatted output, such as a generated config file
type Text struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Content string `json:"content" yaml:"content"`
}

// ErrorResult is the structured form of an error
type ErrorResult struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    string                 `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// NewErrorResult converts err
func NewErrorResult(err error) ErrorResult {
	result := ErrorResult{Error: err.Error(), Code: string(errors.GetErrorCode(err))}
	var te *errors.ThemeupError
	if stderrors.As(err, &te) && len(te.Details) > 0 {
		result.Details = te.Details
	}
	return result
}
