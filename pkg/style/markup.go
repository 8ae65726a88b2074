package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup used in help and messages
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a parser with the default tags
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{patterns: map[string]*regexp.Regexp{}}
	for tag, style := range map[string]lipgloss.Style{
		"title":   TitleStyle,
		"success": SuccessStyle,
		"error":   ErrorStyle,
		"warning": WarningStyle,
		"info":    InfoStyle,
		"code":    CodeStyle,
		"path":    PathStyle,
		"muted":   MutedStyle,
		"bold":    lipgloss.NewStyle().Bold(true),
		"theme":   PhaseStyle("profile"),
		"font":    PhaseStyle("settings"),
	} {
		p.AddStyle(tag, style)
	}
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	if p.styles == nil {
		p.styles = map[string]lipgloss.Style{}
	}
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Render replaces known tags with styled text. Nested tags are handled by
// repeating until nothing changes; unknown tags are left as they are.
func (p *MarkupParser) Render(text string) string {
	return p.apply(text, func(style lipgloss.Style, content string) string {
		return style.Render(content)
	})
}

// Strip removes known tags and keeps their content
func (p *MarkupParser) Strip(text string) string {
	return p.apply(text, func(_ lipgloss.Style, content string) string {
		return content
	})
}

func (p *MarkupParser) apply(text string, fn func(lipgloss.Style, string) string) string {
	for {
		next := text
		for tag, pattern := range p.patterns {
			style := p.styles[tag]
			next = pattern.ReplaceAllStringFunc(next, func(match string) string {
				return fn(style, pattern.FindStringSubmatch(match)[1])
			})
		}
		if next == text {
			return next
		}
		text = next
	}
}

// RenderTemplate substitutes {{key}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}

var defaultParser = NewMarkupParser()

// Render uses the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip uses the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
